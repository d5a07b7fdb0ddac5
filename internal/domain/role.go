package domain

import "fmt"

// Role is the closed set of account roles. Every account has exactly one.
type Role string

const (
	RoleUser      Role = "user"
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDecorator, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps a wire-level role string onto the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// RoleSet is an unordered set of roles, used as a route's allowed list.
// A nil set carries no restriction of its own.
type RoleSet map[Role]struct{}

// Roles builds a set from the given roles.
func Roles(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// AllRoles is the set admitting every known role.
func AllRoles() RoleSet {
	return Roles(RoleUser, RoleDecorator, RoleAdmin)
}

// Contains reports whether r is in the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// SubsetOf reports whether every role in s is also in other.
func (s RoleSet) SubsetOf(other RoleSet) bool {
	for r := range s {
		if !other.Contains(r) {
			return false
		}
	}
	return true
}

// Intersect returns the roles present in both sets.
func (s RoleSet) Intersect(other RoleSet) RoleSet {
	out := make(RoleSet)
	for r := range s {
		if other.Contains(r) {
			out[r] = struct{}{}
		}
	}
	return out
}
