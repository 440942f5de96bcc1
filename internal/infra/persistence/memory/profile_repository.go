package memory

import (
	"context"
	"strings"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	coll *collection
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{coll: store.profiles}
}

// Create persists a new profile and assigns its ID. Emails are stored lower-cased.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	doc := model.FromProfile(profile)
	doc.ID = uuid.NewString()
	doc.Email = strings.ToLower(doc.Email)

	if err := repo.coll.docs.Create(ctx, doc); err != nil {
		return domainerrors.NewStoreError(err, "failed to create profile")
	}

	profile.ID = doc.ID
	profile.Email = doc.Email
	repo.coll.changes.broadcast()

	return nil
}

// FindByID retrieves a profile by document ID.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	doc := &model.ProfileDocument{ID: id}
	if err := repo.coll.docs.Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find profile")
	}

	return doc.ToProfile(), nil
}

// FindByUID retrieves the profile bound to an identity.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	return repo.first(ctx, repo.coll.docs.Query().Where("uid", "=", uid))
}

// FindByEmail retrieves a profile by email, case-insensitively.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	return repo.first(ctx, repo.coll.docs.Query().Where("email", "=", strings.ToLower(email)))
}

// FindAll retrieves every profile.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := collect(ctx, repo.coll.docs.Query(), (*model.ProfileDocument).ToProfile)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query profiles")
	}

	return profiles, nil
}

// BindUID links a profile to an identity.
func (repo *profileRepository) BindUID(ctx context.Context, id, uid string) error {
	mods := docstore.Mods{
		"uid":       uid,
		"updatedAt": time.Now(),
	}
	if err := repo.coll.docs.Update(ctx, &model.ProfileDocument{ID: id}, mods); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewStoreError(err, "failed to bind profile")
	}

	repo.coll.changes.broadcast()

	return nil
}

func (repo *profileRepository) first(ctx context.Context, q *docstore.Query) (*entity.UserProfile, error) {
	profiles, err := collect(ctx, q.Limit(1), (*model.ProfileDocument).ToProfile)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query profiles")
	}
	if len(profiles) == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return profiles[0], nil
}
