package user

import (
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

type SignupRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    kernel.Email `json:"email" validate:"required"`
	Password string       `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    kernel.Email `json:"email" validate:"required"`
	Password string       `json:"password" validate:"required"`
}

type UserResponse struct {
	ID             kernel.UserID `json:"id"`
	Name           string        `json:"name"`
	Email          kernel.Email  `json:"email"`
	IsActive       bool          `json:"is_active"`
	ProfilePicture *string       `json:"profile_picture,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
