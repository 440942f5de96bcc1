package impl

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository) {
	profiles := mockRepo.NewMockProfileRepository(t)

	return NewProfileService(profiles, fixedClock(t, lunchTime), discardLogger()), profiles
}

func TestProfileService_Provision(t *testing.T) {
	svc, profiles := createTestProfileService(t)
	ctx := context.Background()

	profiles.EXPECT().FindByEmail(ctx, "vendor@corp.example").Return(nil, repository.ErrProfileNotFound)
	profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.Email == "vendor@corp.example" && p.Role == entity.RoleVendor && !p.IsBound()
	})).Return(nil)

	profile, err := svc.Provision(ctx, admin, &usecase.ProvisionProfileInput{
		Email:    " Vendor@Corp.example ",
		Role:     "vendor",
		VendorID: "V-7",
	})

	require.NoError(t, err)
	assert.Equal(t, "V-7", profile.VendorID)
	assert.Equal(t, lunchTime, profile.CreatedAt)
}

func TestProfileService_Provision_Duplicate(t *testing.T) {
	svc, profiles := createTestProfileService(t)
	ctx := context.Background()

	profiles.EXPECT().FindByEmail(ctx, "e@corp.example").Return(&entity.UserProfile{ID: "p1"}, nil)

	_, err := svc.Provision(ctx, admin, &usecase.ProvisionProfileInput{Email: "e@corp.example", Role: "employee"})
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_AdminOnly(t *testing.T) {
	svc, _ := createTestProfileService(t)
	ctx := context.Background()

	_, err := svc.Provision(ctx, vendor, &usecase.ProvisionProfileInput{Email: "e@corp.example", Role: "employee"})
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotPermitted))

	_, err = svc.List(ctx, employee)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotPermitted))
}

func TestProfileService_List(t *testing.T) {
	svc, profiles := createTestProfileService(t)
	ctx := context.Background()

	profiles.EXPECT().FindAll(ctx).Return([]*entity.UserProfile{{ID: "p1"}, {ID: "p2"}}, nil)

	list, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
