package domain

import "time"

// UserRole distinguishes citizens from portal administrators.
type UserRole string

const (
	RoleCitizen UserRole = "citizen"
	RoleAdmin   UserRole = "admin"
)

// User is the domain model for accounts that submit or triage complaints.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Address      *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
