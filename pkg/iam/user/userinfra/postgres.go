package userinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/iam/user"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) user.Repository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, is_active, profile_picture, created_at, updated_at`

// Create inserts a new user
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, name, email, password_hash, is_active,
			profile_picture, created_at, updated_at
		) VALUES (
			:id, :name, :email, :password_hash, :is_active,
			:profile_picture, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, u)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return user.ErrEmailAlreadyExists().WithDetail("email", u.Email.String())
		}
		return errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u user.User
	err := r.db.GetContext(ctx, &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound().WithDetail("user_id", id.String())
	}
	if err != nil {
		return nil, errx.Wrap(err, "failed to get user", errx.TypeInternal)
	}
	return &u, nil
}

// GetByEmail retrieves a user by normalized email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var u user.User
	err := r.db.GetContext(ctx, &u, query, email.Normalize())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound()
	}
	if err != nil {
		return nil, errx.Wrap(err, "failed to get user by email", errx.TypeInternal)
	}
	return &u, nil
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email.Normalize())
	if err != nil {
		return false, errx.Wrap(err, "failed to check email", errx.TypeInternal)
	}
	return exists, nil
}

func (r *PostgresUserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
