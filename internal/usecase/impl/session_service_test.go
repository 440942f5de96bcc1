package impl

import (
	"context"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	mockRepo "canteen/internal/mocks/repository"
	mockService "canteen/internal/mocks/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	identity *mockService.MockIdentityProvider
	profiles *mockRepo.MockProfileRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	f := sessionServiceFixtures{
		identity: mockService.NewMockIdentityProvider(t),
		profiles: mockRepo.NewMockProfileRepository(t),
	}
	f.service = NewSessionService(f.identity, f.profiles, fixedClock(t, lunchTime), discardLogger())

	return f
}

var asha = entity.Principal{ID: "uid-1", Email: "asha@corp.example", EmailVerified: true}

func TestSessionService_SignUp_CreatesEmployeeProfile(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.identity.EXPECT().SignUp(ctx, "asha@corp.example", "password123").Return(&asha, nil)
	f.profiles.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrProfileNotFound)
	f.profiles.EXPECT().FindByEmail(ctx, "asha@corp.example").Return(nil, repository.ErrProfileNotFound)
	f.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.UID == "uid-1" && p.Role == entity.RoleEmployee
	})).Return(nil)

	actor, err := f.service.SignUp(ctx, &usecase.CredentialsInput{Email: " asha@corp.example ", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, actor.Role)
	assert.Equal(t, "asha@corp.example", actor.UserKey)
}

func TestSessionService_SignUp_BindsProvisionedProfile(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	provisioned := &entity.UserProfile{ID: "p1", Role: entity.RoleVendor, VendorID: "V-7", Email: "asha@corp.example"}

	f.identity.EXPECT().SignUp(ctx, "asha@corp.example", "password123").Return(&asha, nil)
	f.profiles.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrProfileNotFound)
	f.profiles.EXPECT().FindByEmail(ctx, "asha@corp.example").Return(provisioned, nil)
	f.profiles.EXPECT().BindUID(ctx, "p1", "uid-1").Return(nil)

	actor, err := f.service.SignUp(ctx, &usecase.CredentialsInput{Email: "asha@corp.example", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, actor.Role)
	assert.Equal(t, "uid-1", actor.Profile.UID)
}

func TestSessionService_SignUp_AccountExists(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.identity.EXPECT().SignUp(ctx, "asha@corp.example", "password123").Return(nil, domainerrors.ErrAccountExists)

	_, err := f.service.SignUp(ctx, &usecase.CredentialsInput{Email: "asha@corp.example", Password: "password123"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountExists))
}

func TestSessionService_Resolve(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.identity.EXPECT().VerifyIDToken(ctx, "token").Return(&asha, nil)
	f.profiles.EXPECT().FindByUID(ctx, "uid-1").Return(&entity.UserProfile{ID: "p1", Role: entity.RoleEmployee, EmployeeID: "E-42", UID: "uid-1"}, nil)

	actor, err := f.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, "E-42", actor.UserKey)
}

func TestSessionService_Resolve_NeverRebindsOrCreates(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.identity.EXPECT().VerifyIDToken(ctx, "token").Return(&asha, nil)
	f.profiles.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrProfileNotFound)
	f.profiles.EXPECT().FindByEmail(ctx, "asha@corp.example").Return(&entity.UserProfile{ID: "p1", Role: entity.RoleAdmin, UID: "someone-else"}, nil)

	actor, err := f.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Nil(t, actor.Profile)
	assert.Equal(t, entity.RoleEmployee, actor.Role)
}

func TestSessionService_Resolve_UnverifiedEmailNeverClaimsProvisionedProfile(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	impostor := entity.Principal{ID: "uid-2", Email: "boss@corp.example", EmailVerified: false}

	f.identity.EXPECT().VerifyIDToken(ctx, "token").Return(&impostor, nil)
	f.profiles.EXPECT().FindByUID(ctx, "uid-2").Return(nil, repository.ErrProfileNotFound)
	f.profiles.EXPECT().FindByEmail(ctx, "boss@corp.example").Return(&entity.UserProfile{ID: "p1", Role: entity.RoleAdmin, Email: "boss@corp.example"}, nil)

	actor, err := f.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Nil(t, actor.Profile)
	assert.Equal(t, entity.RoleEmployee, actor.Role)
	f.profiles.AssertNotCalled(t, "BindUID", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_SignUp_UnverifiedEmailNeverClaimsProvisionedProfile(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	impostor := entity.Principal{ID: "uid-2", Email: "boss@corp.example"}

	f.identity.EXPECT().SignUp(ctx, "boss@corp.example", "password123").Return(&impostor, nil)
	f.profiles.EXPECT().FindByUID(ctx, "uid-2").Return(nil, repository.ErrProfileNotFound)
	f.profiles.EXPECT().FindByEmail(ctx, "boss@corp.example").Return(&entity.UserProfile{ID: "p1", Role: entity.RoleAdmin, Email: "boss@corp.example"}, nil)

	actor, err := f.service.SignUp(ctx, &usecase.CredentialsInput{Email: "boss@corp.example", Password: "password123"})

	require.NoError(t, err)
	assert.Nil(t, actor.Profile)
	assert.Equal(t, entity.RoleEmployee, actor.Role)
	f.profiles.AssertNotCalled(t, "BindUID", mock.Anything, mock.Anything, mock.Anything)
	f.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionService_Resolve_InvalidToken(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.identity.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, domainerrors.ErrUnauthenticated)

	_, err := f.service.Resolve(ctx, "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestSessionService_SignInAndOut(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	session := &service.Session{IDToken: "tok", ExpiresAt: lunchTime.Add(time.Hour), Principal: asha}
	f.identity.EXPECT().SignIn(ctx, "asha@corp.example", "password123").Return(session, nil)
	f.identity.EXPECT().SignOut(ctx, "uid-1").Return(nil)

	got, err := f.service.SignIn(ctx, &usecase.CredentialsInput{Email: "asha@corp.example", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "tok", got.IDToken)

	require.NoError(t, f.service.SignOut(ctx, entity.Actor{Principal: asha}))
}
