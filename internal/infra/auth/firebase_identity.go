package auth

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"
	firebaseapp "canteen/internal/infra/firebase"
)

// firebaseIdentityProvider verifies Firebase ID tokens and manages Firebase accounts.
// Clients sign in against Firebase directly, so SignIn is not offered.
type firebaseIdentityProvider struct {
	client *auth.Client
}

// NewFirebaseIdentityProvider opens the Firebase Auth client.
func NewFirebaseIdentityProvider(ctx context.Context, apps *firebaseapp.AppProvider) (service.IdentityProvider, error) {
	app, err := apps.App()
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Firebase Auth client")
	}

	return &firebaseIdentityProvider{client: client}, nil
}

// VerifyIDToken validates the token and rejects tokens revoked by SignOut.
func (p *firebaseIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error) {
	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	principal := &entity.Principal{ID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		principal.EmailVerified = verified
	}

	return principal, nil
}

// SignUp creates a Firebase account.
func (p *firebaseIdentityProvider) SignUp(ctx context.Context, email, password string) (*entity.Principal, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrAccountExists
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return &entity.Principal{ID: record.UID, Email: record.Email, EmailVerified: record.EmailVerified}, nil
}

// SignIn is performed by clients against Firebase directly.
func (p *firebaseIdentityProvider) SignIn(context.Context, string, string) (*service.Session, error) {
	return nil, domainerrors.ErrUnsupported.WithDetails("sign in with the Firebase client SDK")
}

// SignOut revokes the refresh tokens of uid.
func (p *firebaseIdentityProvider) SignOut(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return nil
}
