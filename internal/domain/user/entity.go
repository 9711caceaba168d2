package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role decides which dashboard and data scope a user sees.
type Role string

const (
	RoleSupervisor Role = "supervisor"
	RoleEmployee   Role = "employee"
)

// ParseRole validates a role read from storage or a query string.
// Unknown values come back as (nil, false) rather than an error, so stale
// or hand-edited metadata degrades to "no role chosen".
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.TrimSpace(raw)) {
	case RoleSupervisor:
		return RoleSupervisor, true
	case RoleEmployee:
		return RoleEmployee, true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	PasswordHash string
	Role         *Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is what the dashboards greet the user with.
func (u User) DisplayName(fallback string) string {
	if strings.TrimSpace(u.FirstName) != "" {
		return u.FirstName
	}
	return fallback
}

// HasRole reports whether the persisted role matches want.
func (u User) HasRole(want Role) bool {
	return u.Role != nil && *u.Role == want
}
