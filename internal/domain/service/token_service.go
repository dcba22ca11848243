package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims issued by the local identity provider.
type Claims struct {
	Email     string   `json:"email,omitempty"`
	Name      string   `json:"name,omitempty"`
	Anonymous bool     `json:"anon"`
	Roles     []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens for the local identity provider.
type TokenService interface {
	// IssueToken signs a token for identity valid for ttl.
	IssueToken(identity *entity.Identity, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// ParseToken verifies a token and returns the identity it carries.
	ParseToken(token string) (*entity.Identity, error)
}
