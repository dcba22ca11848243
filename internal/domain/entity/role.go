// Package entity contains the core business objects of the storefront.
package entity

import "slices"

// Role is a claim attached to an identity.
type Role string

const (
	// RoleCustomer is granted to every signed-up account.
	RoleCustomer Role = "customer"
	// RoleAdmin unlocks catalog, order and customer management.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// With returns rs plus role, without duplicates.
func (rs Roles) With(role Role) Roles {
	if rs.Contains(role) {
		return slices.Clone(rs)
	}

	return append(slices.Clone(rs), role)
}

// ToStrings converts Roles to []string for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
