package auth

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFirebaseAuth struct {
	tokens     map[string]*auth.Token
	users      map[string]*auth.UserRecord
	claims     map[string]map[string]interface{}
	revoked    []string
	createErr  error
	nextUID    string
	lastCustom map[string]interface{}
}

func (f *fakeFirebaseAuth) VerifyIDTokenAndCheckRevoked(_ context.Context, idToken string) (*auth.Token, error) {
	if tok, ok := f.tokens[idToken]; ok {
		return tok, nil
	}

	return nil, errors.New("invalid id token")
}

func (f *fakeFirebaseAuth) CreateUser(context.Context, *auth.UserToCreate) (*auth.UserRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: f.nextUID}}, nil
}

func (f *fakeFirebaseAuth) CustomTokenWithClaims(_ context.Context, uid string, claims map[string]interface{}) (string, error) {
	f.lastCustom = claims

	return "custom-" + uid, nil
}

func (f *fakeFirebaseAuth) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)

	return nil
}

func (f *fakeFirebaseAuth) SetCustomUserClaims(_ context.Context, uid string, claims map[string]interface{}) error {
	if f.claims == nil {
		f.claims = map[string]map[string]interface{}{}
	}
	f.claims[uid] = claims

	return nil
}

func (f *fakeFirebaseAuth) GetUser(_ context.Context, uid string) (*auth.UserRecord, error) {
	if user, ok := f.users[uid]; ok {
		return user, nil
	}

	return nil, errors.New("no user")
}

func TestFirebaseProvider_VerifyToken(t *testing.T) {
	client := &fakeFirebaseAuth{tokens: map[string]*auth.Token{
		"admin": {
			UID:    "u1",
			Claims: map[string]interface{}{"roles": []interface{}{"customer", "admin"}, "email": "ada@example.com"},
		},
		"anon": {
			UID:      "u2",
			Firebase: auth.FirebaseInfo{SignInProvider: "anonymous"},
		},
		"guest": {
			UID:    "u3",
			Claims: map[string]interface{}{"guest": true},
		},
	}}
	provider := NewFirebaseProvider(client, 6)
	ctx := context.Background()

	identity, err := provider.VerifyToken(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, identity.HasRole(entity.RoleAdmin))
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.False(t, identity.Anonymous)

	identity, err = provider.VerifyToken(ctx, "anon")
	require.NoError(t, err)
	assert.True(t, identity.Anonymous)

	identity, err = provider.VerifyToken(ctx, "guest")
	require.NoError(t, err)
	assert.True(t, identity.Anonymous)

	_, err = provider.VerifyToken(ctx, "forged")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestFirebaseProvider_ProvisionGuestAndSignUp(t *testing.T) {
	client := &fakeFirebaseAuth{nextUID: "fb-1"}
	provider := NewFirebaseProvider(client, 6)
	ctx := context.Background()

	session, err := provider.ProvisionGuest(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenTypeCustom, session.TokenType)
	assert.Equal(t, "custom-fb-1", session.Token)
	assert.Equal(t, true, client.lastCustom["guest"])

	session, err = provider.SignUp(ctx, service.SignUpInput{Email: "ada@example.com", Password: "secret1", FirstName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.Identity.DisplayName)
	assert.Equal(t, []string{"customer"}, client.claims["fb-1"]["roles"])
}

func TestFirebaseProvider_Unsupported(t *testing.T) {
	provider := NewFirebaseProvider(&fakeFirebaseAuth{}, 6)

	_, err := provider.SignIn(context.Background(), "a@b.co", "secret1")
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedByProvider)
}

func TestFirebaseProvider_SignOutAndGrantRole(t *testing.T) {
	client := &fakeFirebaseAuth{users: map[string]*auth.UserRecord{
		"u1": {UserInfo: &auth.UserInfo{UID: "u1"}, CustomClaims: map[string]interface{}{"roles": []interface{}{"customer"}, "tier": "gold"}},
	}}
	provider := NewFirebaseProvider(client, 6)
	ctx := context.Background()

	require.NoError(t, provider.SignOut(ctx, "u1"))
	assert.Equal(t, []string{"u1"}, client.revoked)

	require.NoError(t, provider.GrantRole(ctx, "u1", entity.RoleAdmin))
	assert.Equal(t, []string{"customer", "admin"}, client.claims["u1"]["roles"])
	assert.Equal(t, "gold", client.claims["u1"]["tier"])

	assert.Error(t, provider.GrantRole(ctx, "missing", entity.RoleAdmin))
}
