package entity

import "time"

// Identity is the caller as resolved by the identity provider. Anonymous
// identities are guests provisioned on first cart access.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Anonymous   bool   `json:"anonymous"`
	Roles       Roles  `json:"roles"`
}

// HasRole reports whether the identity carries role.
func (i *Identity) HasRole(role Role) bool {
	return i != nil && i.Roles.Contains(role)
}

// Session is an identity plus the bearer token the client should send back.
// TokenType is "Bearer" for tokens the API accepts directly, or "custom"
// for Firebase custom tokens the client exchanges for an ID token.
type Session struct {
	Identity  *Identity `json:"identity"`
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

const (
	TokenTypeBearer = "Bearer"
	TokenTypeCustom = "custom"
)

// UserProfile is the customer record kept in the users collection.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName joins first and last name.
func (p *UserProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
