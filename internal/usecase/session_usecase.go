// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// SessionUsecase resolves and manages caller identities.
type SessionUsecase interface {
	// StartGuestSession provisions an anonymous identity.
	StartGuestSession(ctx context.Context) (*entity.Session, error)

	// SignUp creates a customer account and its profile.
	SignUp(ctx context.Context, input service.SignUpInput) (*entity.Session, error)

	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut drops the caller's in-memory cart and, where supported,
	// revokes outstanding sessions.
	SignOut(ctx context.Context, identity *entity.Identity) error

	Authenticate(ctx context.Context, token string) (*entity.Identity, error)

	GrantRole(ctx context.Context, uid string, role entity.Role) error

	Profile(ctx context.Context, uid string) (*entity.UserProfile, error)
}
