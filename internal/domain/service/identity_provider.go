package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignUpInput is what a new customer submits.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// IdentityProvider resolves and manages caller identities. Implementations
// back onto Firebase Authentication or a local credential store.
type IdentityProvider interface {
	// VerifyToken resolves a bearer token to an identity.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)

	// ProvisionGuest creates an anonymous identity and a token for it.
	ProvisionGuest(ctx context.Context) (*entity.Session, error)

	// SignUp creates a customer identity.
	SignUp(ctx context.Context, input SignUpInput) (*entity.Session, error)

	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut invalidates outstanding sessions where the provider supports it.
	SignOut(ctx context.Context, uid string) error

	// GrantRole adds a role claim to an identity.
	GrantRole(ctx context.Context, uid string, role entity.Role) error
}
