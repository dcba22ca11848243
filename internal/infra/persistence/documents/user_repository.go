package documents

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/docstore"
)

type userRepository struct {
	coll *docstore.Collection
}

// NewUserRepository opens the users collection.
func NewUserRepository(ctx context.Context, cols *Collections, url string) (repository.UserRepository, error) {
	coll, err := cols.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return &userRepository{coll: coll}, nil
}

func (repo *userRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	doc := &userDoc{
		ID:        profile.ID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		CreatedAt: profile.CreatedAt,
	}
	if err := repo.coll.Put(ctx, doc); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save profile")
	}

	return nil
}

func (repo *userRepository) FindProfile(ctx context.Context, id string) (*entity.UserProfile, error) {
	doc := &userDoc{ID: id}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.IsNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get profile")
	}

	return toProfile(doc), nil
}

func (repo *userRepository) ListProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	docs, err := collect[userDoc](ctx, repo.coll.Query().Get(ctx))
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list profiles")
	}

	profiles := make([]*entity.UserProfile, len(docs))
	for i, doc := range docs {
		profiles[i] = toProfile(doc)
	}
	slices.SortFunc(profiles, func(a, b *entity.UserProfile) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)),
			strings.Compare(a.ID, b.ID),
		)
	})

	return profiles, nil
}

func toProfile(doc *userDoc) *entity.UserProfile {
	return &entity.UserProfile{
		ID:        doc.ID,
		Email:     doc.Email,
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		CreatedAt: doc.CreatedAt,
	}
}

type credentialRepository struct {
	coll *docstore.Collection
}

// NewCredentialRepository opens the credentials collection, keyed by email.
func NewCredentialRepository(ctx context.Context, cols *Collections, url string) (repository.CredentialRepository, error) {
	coll, err := cols.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return &credentialRepository{coll: coll}, nil
}

func (repo *credentialRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	doc := &credentialDoc{
		Email:        normalizeEmail(credential.Email),
		UID:          credential.UID,
		PasswordHash: credential.PasswordHash,
		DisplayName:  credential.DisplayName,
		Roles:        credential.Roles.ToStrings(),
		CreatedAt:    credential.CreatedAt,
	}
	if err := repo.coll.Create(ctx, doc); err != nil {
		if errors.IsAlreadyExists(err) {
			return repository.ErrDuplicateCredential
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create credential")
	}

	return nil
}

func (repo *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	doc := &credentialDoc{Email: normalizeEmail(email)}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.IsNotFound(err) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get credential")
	}

	return toCredential(doc), nil
}

func (repo *credentialRepository) FindCredentialByUID(ctx context.Context, uid string) (*entity.Credential, error) {
	docs, err := collect[credentialDoc](ctx, repo.coll.Query().Where("uid", "=", uid).Limit(1).Get(ctx))
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to find credential")
	}
	if len(docs) == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	return toCredential(docs[0]), nil
}

func (repo *credentialRepository) UpdateCredentialRoles(ctx context.Context, email string, roles entity.Roles) error {
	err := repo.coll.Update(ctx, &credentialDoc{Email: normalizeEmail(email)}, docstore.Mods{"roles": roles.ToStrings()})
	if err != nil {
		if errors.IsNotFound(err) {
			return repository.ErrCredentialNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update roles")
	}

	return nil
}

func toCredential(doc *credentialDoc) *entity.Credential {
	return &entity.Credential{
		UID:          doc.UID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		DisplayName:  doc.DisplayName,
		Roles:        entity.RolesFromStrings(doc.Roles),
		CreatedAt:    doc.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
