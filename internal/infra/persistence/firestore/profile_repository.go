package firestore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"canteen/internal/domain/constants"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	coll   *firestore.CollectionRef
	logger *slog.Logger
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{coll: client.Collection(constants.CollectionProfiles), logger: logger}
}

func toProfile(id string, doc *model.ProfileDocument) *entity.UserProfile {
	doc.ID = id

	return doc.ToProfile()
}

// Create persists a new profile and assigns its ID. Emails are stored lower-cased.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profile.Email = strings.ToLower(profile.Email)

	ref, _, err := repo.coll.Add(ctx, model.FromProfile(profile))
	if err != nil {
		return domainerrors.NewStoreError(err, "failed to create profile")
	}

	profile.ID = ref.ID

	return nil
}

// FindByID retrieves a profile by document ID.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	snap, err := repo.coll.Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find profile")
	}

	var doc model.ProfileDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to decode profile")
	}

	return toProfile(snap.Ref.ID, &doc), nil
}

// FindByUID retrieves the profile bound to an identity.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	return repo.first(ctx, repo.coll.Where("uid", "==", uid))
}

// FindByEmail retrieves a profile by email, case-insensitively.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	return repo.first(ctx, repo.coll.Where("email", "==", strings.ToLower(email)))
}

// FindAll retrieves every profile.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := readAll(ctx, repo.logger, repo.coll.Query, toProfile)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query profiles")
	}

	return profiles, nil
}

// BindUID links a profile to an identity.
func (repo *profileRepository) BindUID(ctx context.Context, id, uid string) error {
	_, err := repo.coll.Doc(id).Update(ctx, []firestore.Update{
		{Path: "uid", Value: uid},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewStoreError(err, "failed to bind profile")
	}

	return nil
}

func (repo *profileRepository) first(ctx context.Context, q firestore.Query) (*entity.UserProfile, error) {
	profiles, err := readAll(ctx, repo.logger, q.Limit(1), toProfile)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query profiles")
	}
	if len(profiles) == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return profiles[0], nil
}
