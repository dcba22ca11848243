package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a profile is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCredentialNotFound is returned when no login exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateCredential is returned when an email is already registered.
	ErrDuplicateCredential = errors.New("credential already exists")
)

// UserRepository stores customer profiles.
type UserRepository interface {
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error

	FindProfile(ctx context.Context, id string) (*entity.UserProfile, error)

	// ListProfiles returns all profiles sorted by first name.
	ListProfiles(ctx context.Context) ([]*entity.UserProfile, error)
}

// CredentialRepository stores email/password logins for the local identity provider.
type CredentialRepository interface {
	// CreateCredential fails with ErrDuplicateCredential when the email exists.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	FindCredentialByUID(ctx context.Context, uid string) (*entity.Credential, error)

	UpdateCredentialRoles(ctx context.Context, email string, roles entity.Roles) error
}
