package user

import (
	"context"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

type Repository interface {
	// Create inserts a new user. A duplicate email yields ErrEmailAlreadyExists.
	Create(ctx context.Context, u *User) error

	// GetByID returns ErrUserNotFound when missing
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail returns ErrUserNotFound when missing
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)

	// Ping checks the backing store is reachable
	Ping(ctx context.Context) error
}
