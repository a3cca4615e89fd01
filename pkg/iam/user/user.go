package user

import (
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

type User struct {
	ID             kernel.UserID `db:"id" json:"id"`
	Name           string        `db:"name" json:"name"`
	Email          kernel.Email  `db:"email" json:"email"`
	PasswordHash   string        `db:"password_hash" json:"-"`
	IsActive       bool          `db:"is_active" json:"is_active"`
	ProfilePicture *string       `db:"profile_picture" json:"profile_picture,omitempty"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// CanLogin reports whether the account may authenticate
func (u *User) CanLogin() bool {
	return u != nil && u.IsActive
}

// ToResponse strips credentials and internal fields
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		IsActive:       u.IsActive,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}
