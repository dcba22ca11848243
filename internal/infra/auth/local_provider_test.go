package auth

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type localFixtures struct {
	provider    *localProvider
	credentials *mockRepo.MockCredentialRepository
	hasher      service.PasswordHasher
}

func newLocalFixtures(t *testing.T) localFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "local-provider-test-secret"
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	credentials := mockRepo.NewMockCredentialRepository(t)
	hasher := NewBcryptHasher(bcrypt.MinCost)
	provider := NewLocalProvider(tokens, hasher, credentials, LocalOptions{
		AccessTokenTTL: time.Hour,
		GuestTokenTTL:  24 * time.Hour,
		MinPassword:    6,
	}).(*localProvider)
	provider.newUID = func() string { return "uid-1" }

	return localFixtures{provider: provider, credentials: credentials, hasher: hasher}
}

func TestLocalProvider_GuestRoundTrip(t *testing.T) {
	fx := newLocalFixtures(t)
	ctx := context.Background()

	session, err := fx.provider.ProvisionGuest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "guest-uid-1", session.Identity.UID)
	assert.True(t, session.Identity.Anonymous)
	assert.Equal(t, entity.TokenTypeBearer, session.TokenType)

	identity, err := fx.provider.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "guest-uid-1", identity.UID)
	assert.True(t, identity.Anonymous)
}

func TestLocalProvider_SignUp(t *testing.T) {
	fx := newLocalFixtures(t)
	ctx := context.Background()

	fx.credentials.EXPECT().
		CreateCredential(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Email == "ada@example.com" && c.UID == "uid-1" && c.Roles.Contains(entity.RoleCustomer) &&
				fx.hasher.Check("secret1", c.PasswordHash)
		})).
		Return(nil)

	session, err := fx.provider.SignUp(ctx, service.SignUpInput{Email: " Ada@Example.com ", Password: "secret1", FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", session.Identity.DisplayName)
	assert.False(t, session.Identity.Anonymous)

	identity, err := fx.provider.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, identity.HasRole(entity.RoleCustomer))
}

func TestLocalProvider_SignUpValidation(t *testing.T) {
	fx := newLocalFixtures(t)
	ctx := context.Background()

	_, err := fx.provider.SignUp(ctx, service.SignUpInput{Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.provider.SignUp(ctx, service.SignUpInput{Email: "a@b.co", Password: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)

	fx.credentials.EXPECT().CreateCredential(ctx, mock.Anything).Return(repository.ErrDuplicateCredential)
	_, err = fx.provider.SignUp(ctx, service.SignUpInput{Email: "a@b.co", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestLocalProvider_SignIn(t *testing.T) {
	fx := newLocalFixtures(t)
	ctx := context.Background()

	hash, err := fx.hasher.Hash("secret1")
	require.NoError(t, err)
	credential := &entity.Credential{UID: "u1", Email: "ada@example.com", PasswordHash: hash, Roles: entity.Roles{entity.RoleCustomer, entity.RoleAdmin}}

	fx.credentials.EXPECT().FindCredentialByEmail(ctx, "ada@example.com").Return(credential, nil)
	fx.credentials.EXPECT().FindCredentialByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrCredentialNotFound)

	session, err := fx.provider.SignIn(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.True(t, session.Identity.HasRole(entity.RoleAdmin))

	_, err = fx.provider.SignIn(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.provider.SignIn(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalProvider_VerifyRejectsGarbage(t *testing.T) {
	fx := newLocalFixtures(t)

	_, err := fx.provider.VerifyToken(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestLocalProvider_GrantRole(t *testing.T) {
	fx := newLocalFixtures(t)
	ctx := context.Background()

	credential := &entity.Credential{UID: "u1", Email: "ada@example.com", Roles: entity.Roles{entity.RoleCustomer}}
	fx.credentials.EXPECT().FindCredentialByUID(ctx, "u1").Return(credential, nil)
	fx.credentials.EXPECT().
		UpdateCredentialRoles(ctx, "ada@example.com", entity.Roles{entity.RoleCustomer, entity.RoleAdmin}).
		Return(nil)
	fx.credentials.EXPECT().FindCredentialByUID(ctx, "guest-1").Return(nil, repository.ErrCredentialNotFound)

	require.NoError(t, fx.provider.GrantRole(ctx, "u1", entity.RoleAdmin))
	assert.ErrorIs(t, fx.provider.GrantRole(ctx, "guest-1", entity.RoleAdmin), domainerrors.ErrUserNotFound)
}
