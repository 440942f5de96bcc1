package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity service.IdentityProvider
	profiles repository.ProfileRepository
	clock    service.Clock
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	identity service.IdentityProvider,
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identity: identity,
		profiles: profiles,
		clock:    clock,
		logger:   logger,
	}
}

// SignUp creates an account and links it to a profile.
func (srv *sessionService) SignUp(ctx context.Context, input *usecase.CredentialsInput) (*entity.Actor, error) {
	principal, err := srv.identity.SignUp(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign up")
	}

	profile, err := srv.link(ctx, *principal, true)
	if err != nil {
		return nil, err
	}

	actor := entity.NewActor(*principal, profile)

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Account registered",
		slog.String("uid", principal.ID),
		slog.Bool("linked", profile != nil),
		slog.String("role", actor.Role.String()),
	)

	return &actor, nil
}

// SignIn exchanges credentials for an ID token.
func (srv *sessionService) SignIn(ctx context.Context, input *usecase.CredentialsInput) (*service.Session, error) {
	session, err := srv.identity.SignIn(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	return session, nil
}

// SignOut revokes the caller's tokens.
func (srv *sessionService) SignOut(ctx context.Context, actor entity.Actor) error {
	if err := srv.identity.SignOut(ctx, actor.Principal.ID); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Signed out", slog.String("uid", actor.Principal.ID))

	return nil
}

// Resolve verifies an ID token and resolves the caller. Accounts created directly
// against the identity provider are linked on first use.
func (srv *sessionService) Resolve(ctx context.Context, idToken string) (*entity.Actor, error) {
	principal, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	profile, err := srv.link(ctx, *principal, false)
	if err != nil {
		return nil, err
	}

	actor := entity.NewActor(*principal, profile)

	return &actor, nil
}

// link finds the profile bound to principal. Failing that it binds the unbound
// profile provisioned for the same email, provided the identity provider verified
// that email, and when create is set it creates an employee profile. A profile
// already bound to another identity is never rebound.
func (srv *sessionService) link(ctx context.Context, principal entity.Principal, create bool) (*entity.UserProfile, error) {
	profile, err := srv.profiles.FindByUID(ctx, principal.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	if principal.Email != "" {
		profile, err = srv.profiles.FindByEmail(ctx, principal.Email)
		switch {
		case err == nil && !profile.IsBound() && !principal.EmailVerified:
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Refusing to link provisioned profile to unverified email",
				slog.String("uid", principal.ID),
				slog.String("profile_id", profile.ID),
			)

			return nil, nil
		case err == nil && !profile.IsBound():
			if err := srv.profiles.BindUID(ctx, profile.ID, principal.ID); err != nil {
				return nil, errors.Wrap(err, "failed to link profile")
			}
			profile.UID = principal.ID

			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Linked provisioned profile",
				slog.String("uid", principal.ID),
				slog.String("profile_id", profile.ID),
			)

			return profile, nil
		case err == nil:
			return nil, nil
		case !errors.Is(err, repository.ErrProfileNotFound):
			return nil, errors.Wrap(err, "failed to find profile")
		}
	}

	if !create {
		return nil, nil
	}

	now := srv.clock.Now()
	profile = &entity.UserProfile{
		Role:      entity.RoleEmployee,
		Email:     strings.ToLower(principal.Email),
		UID:       principal.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.profiles.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}
