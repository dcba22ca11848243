package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

const guestUIDPrefix = "guest-"

// LocalOptions tunes the local identity provider.
type LocalOptions struct {
	AccessTokenTTL time.Duration
	GuestTokenTTL  time.Duration
	MinPassword    int
}

// localProvider keeps email/password credentials in the document store and
// issues its own JWTs.
type localProvider struct {
	tokens      service.TokenService
	hasher      service.PasswordHasher
	credentials repository.CredentialRepository
	opts        LocalOptions
	now         func() time.Time
	newUID      func() string
}

// NewLocalProvider is the constructor for localProvider.
func NewLocalProvider(tokens service.TokenService, hasher service.PasswordHasher, credentials repository.CredentialRepository, opts LocalOptions) service.IdentityProvider {
	return &localProvider{
		tokens:      tokens,
		hasher:      hasher,
		credentials: credentials,
		opts:        opts,
		now:         time.Now,
		newUID:      uuid.NewString,
	}
}

func (p *localProvider) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	identity, err := p.tokens.ParseToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	return identity, nil
}

func (p *localProvider) ProvisionGuest(_ context.Context) (*entity.Session, error) {
	return p.session(&entity.Identity{
		UID:       guestUIDPrefix + p.newUID(),
		Anonymous: true,
		Roles:     entity.Roles{},
	}, p.opts.GuestTokenTTL)
}

func (p *localProvider) SignUp(ctx context.Context, input service.SignUpInput) (*entity.Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}
	if len(input.Password) < p.opts.MinPassword {
		return nil, domainerrors.ErrPasswordTooShort
	}

	hash, err := p.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	credential := &entity.Credential{
		UID:          p.newUID(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(input.FirstName + " " + input.LastName),
		Roles:        entity.Roles{entity.RoleCustomer},
		CreatedAt:    p.now().UTC(),
	}
	if err := p.credentials.CreateCredential(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, err
	}

	return p.session(credentialIdentity(credential), p.opts.AccessTokenTTL)
}

func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	credential, err := p.credentials.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}
	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return p.session(credentialIdentity(credential), p.opts.AccessTokenTTL)
}

// SignOut is a no-op: local tokens are stateless and simply expire.
func (p *localProvider) SignOut(context.Context, string) error {
	return nil
}

func (p *localProvider) GrantRole(ctx context.Context, uid string, role entity.Role) error {
	credential, err := p.credentials.FindCredentialByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	return p.credentials.UpdateCredentialRoles(ctx, credential.Email, credential.Roles.With(role))
}

func (p *localProvider) session(identity *entity.Identity, ttl time.Duration) (*entity.Session, error) {
	token, expiresAt, err := p.tokens.IssueToken(identity, ttl)
	if err != nil {
		return nil, err
	}

	return &entity.Session{
		Identity:  identity,
		Token:     token,
		TokenType: entity.TokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

func credentialIdentity(credential *entity.Credential) *entity.Identity {
	return &entity.Identity{
		UID:         credential.UID,
		Email:       credential.Email,
		DisplayName: credential.DisplayName,
		Roles:       credential.Roles,
	}
}
