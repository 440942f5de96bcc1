package auth

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"
	firebaseapp "canteen/internal/infra/firebase"
)

// IdentityParams holds dependencies for the identity provider, injected by Fx.
type IdentityParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.AppProvider
	Hasher   service.PasswordHasher
	Tokens   service.TokenService `optional:"true"`
}

// NewIdentityProvider creates the identity provider named by auth.provider.
func NewIdentityProvider(params IdentityParams) (service.IdentityProvider, error) {
	provider := constants.AuthProviderLocal
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	switch provider {
	case constants.AuthProviderLocal:
		if params.Tokens == nil {
			return nil, errors.New("token service is required for local provider")
		}
		params.Logger.Info("Using local identity provider")

		return NewLocalIdentityProvider(params.Hasher, params.Tokens, params.Config.Auth.TrustLocalEmails), nil

	case constants.AuthProviderFirebase:
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseIdentityProvider(params.Ctx, params.Firebase)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}

// newOptionalJWTService only requires a secret when the local provider is selected.
func newOptionalJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth != nil && cfg.Auth.Provider == constants.AuthProviderFirebase && cfg.Auth.TokenSecret == "" {
		return nil, nil
	}

	return NewJWTService(cfg)
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBcryptHasher,
		newOptionalJWTService,
		NewIdentityProvider,
	),
)
