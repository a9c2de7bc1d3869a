package dto

import "github.com/spec-kit/complaint-portal/internal/domain"

// RegisterRequest payload.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest payload.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UserResponse is the public account view.
type UserResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   *string         `json:"phone,omitempty"`
	Address *string         `json:"address,omitempty"`
	Role    domain.UserRole `json:"role"`
}

// AuthResponse bundles the account with its token.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
