package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profiles repository.ProfileRepository
	clock    service.Clock
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profiles: profiles,
		clock:    clock,
		logger:   logger,
	}
}

// Provision creates an unbound profile that a later sign-up with the same email claims.
func (srv *profileService) Provision(ctx context.Context, actor entity.Actor, input *usecase.ProvisionProfileInput) (*entity.UserProfile, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := srv.profiles.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrProfileAlreadyExists
	case !errors.Is(err, repository.ErrProfileNotFound):
		return nil, errors.Wrap(err, "failed to check existing profile")
	}

	now := srv.clock.Now()
	profile := &entity.UserProfile{
		Role:       entity.ParseRole(input.Role),
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		VendorID:   strings.TrimSpace(input.VendorID),
		Email:      email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.profiles.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Profile provisioned",
		slog.String("profile_id", profile.ID),
		slog.String("role", profile.Role.String()),
	)

	return profile, nil
}

// List returns every profile.
func (srv *profileService) List(ctx context.Context, actor entity.Actor) ([]*entity.UserProfile, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	profiles, err := srv.profiles.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}
