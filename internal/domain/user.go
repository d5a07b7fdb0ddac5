package domain

import "time"

// UserStatus enumerates account activation states.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents an authenticated account as resolved from the API.
type User struct {
	ID            string
	Name          string
	Email         string
	PhotoURL      string
	Role          Role
	Status        UserStatus
	DecoratorInfo *DecoratorInfo
	CreatedAt     time.Time
}

// DecoratorInfo carries the extra profile fields a decorator account has.
type DecoratorInfo struct {
	Specialization string
	Rating         float64
	ProjectsDone   int
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsDecorator reports whether the user holds the decorator role.
func (u User) IsDecorator() bool {
	return u.Role == RoleDecorator
}
