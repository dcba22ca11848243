package auth

import (
	"context"
	"net/mail"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"firebase.google.com/go/v4/auth"
)

const (
	claimRoles          = "roles"
	claimGuest          = "guest"
	anonymousSignInName = "anonymous"
)

// firebaseAuthClient is the subset of *auth.Client the provider calls.
type firebaseAuthClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	CustomTokenWithClaims(ctx context.Context, uid string, devClaims map[string]interface{}) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

// firebaseProvider verifies Firebase ID tokens. Sessions it creates carry
// custom tokens the client exchanges for an ID token with the Firebase SDK.
type firebaseProvider struct {
	client      firebaseAuthClient
	minPassword int
}

// NewFirebaseProvider is the constructor for firebaseProvider.
func NewFirebaseProvider(client firebaseAuthClient, minPassword int) service.IdentityProvider {
	return &firebaseProvider{client: client, minPassword: minPassword}
}

func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	verified, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	identity := &entity.Identity{
		UID:       verified.UID,
		Anonymous: verified.Firebase.SignInProvider == anonymousSignInName,
		Roles:     rolesFromClaims(verified.Claims),
	}
	if guest, ok := verified.Claims[claimGuest].(bool); ok && guest {
		identity.Anonymous = true
	}
	if email, ok := verified.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := verified.Claims["name"].(string); ok {
		identity.DisplayName = name
	}

	return identity, nil
}

// ProvisionGuest creates a user without credentials. The guest claim marks
// it anonymous once the client signs in with the custom token.
func (p *firebaseProvider) ProvisionGuest(ctx context.Context) (*entity.Session, error) {
	record, err := p.client.CreateUser(ctx, &auth.UserToCreate{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create guest user")
	}

	identity := &entity.Identity{UID: record.UID, Anonymous: true, Roles: entity.Roles{}}

	return p.customSession(ctx, identity, map[string]interface{}{claimGuest: true})
}

func (p *firebaseProvider) SignUp(ctx context.Context, input service.SignUpInput) (*entity.Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}
	if len(input.Password) < p.minPassword {
		return nil, domainerrors.ErrPasswordTooShort
	}

	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)
	user := (&auth.UserToCreate{}).Email(email).Password(input.Password)
	if displayName != "" {
		user = user.DisplayName(displayName)
	}

	record, err := p.client.CreateUser(ctx, user)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	roles := entity.Roles{entity.RoleCustomer}
	claims := map[string]interface{}{claimRoles: roles.ToStrings()}
	if err := p.client.SetCustomUserClaims(ctx, record.UID, claims); err != nil {
		return nil, errors.Wrap(err, "failed to set role claims")
	}

	identity := &entity.Identity{
		UID:         record.UID,
		Email:       email,
		DisplayName: displayName,
		Roles:       roles,
	}

	return p.customSession(ctx, identity, claims)
}

// SignIn is done by the client against Firebase directly.
func (p *firebaseProvider) SignIn(context.Context, string, string) (*entity.Session, error) {
	return nil, domainerrors.ErrUnsupportedByProvider
}

func (p *firebaseProvider) SignOut(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke tokens")
	}

	return nil
}

func (p *firebaseProvider) GrantRole(ctx context.Context, uid string, role entity.Role) error {
	record, err := p.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to get user")
	}

	claims := make(map[string]interface{}, len(record.CustomClaims)+1)
	for k, v := range record.CustomClaims {
		claims[k] = v
	}
	claims[claimRoles] = rolesFromClaims(record.CustomClaims).With(role).ToStrings()

	if err := p.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return errors.Wrap(err, "failed to set role claims")
	}

	return nil
}

func (p *firebaseProvider) customSession(ctx context.Context, identity *entity.Identity, claims map[string]interface{}) (*entity.Session, error) {
	token, err := p.client.CustomTokenWithClaims(ctx, identity.UID, claims)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint custom token")
	}

	return &entity.Session{
		Identity:  identity,
		Token:     token,
		TokenType: entity.TokenTypeCustom,
	}, nil
}

func rolesFromClaims(claims map[string]interface{}) entity.Roles {
	raw, ok := claims[claimRoles].([]interface{})
	if !ok {
		if strs, ok := claims[claimRoles].([]string); ok {
			return entity.RolesFromStrings(strs)
		}

		return entity.Roles{}
	}

	strs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			strs = append(strs, s)
		}
	}

	return entity.RolesFromStrings(strs)
}
