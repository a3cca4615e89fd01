package usersrv

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/Abraxas-365/pathway/pkg/iam/user"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/google/uuid"
)

// StatsInitializer creates the per-user activity counters
type StatsInitializer interface {
	Ensure(ctx context.Context, userID kernel.UserID) error
}

type UserService struct {
	repo      user.Repository
	passwords auth.PasswordService
	tokens    auth.TokenService
	stats     StatsInitializer
	now       func() time.Time
}

func NewUserService(
	repo user.Repository,
	passwords auth.PasswordService,
	tokens auth.TokenService,
	stats StatsInitializer,
) *UserService {
	return &UserService{
		repo:      repo,
		passwords: passwords,
		tokens:    tokens,
		stats:     stats,
		now:       time.Now,
	}
}

// Signup registers a new account and returns an access token for it
func (s *UserService) Signup(ctx context.Context, req user.SignupRequest) (*user.AuthResponse, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return nil, user.ErrRegistry.NewWithCause(user.CodeDatabaseUnavailable, err)
	}

	name := strings.TrimSpace(req.Name)
	email := req.Email.Normalize()
	if name == "" || email == "" || req.Password == "" {
		return nil, user.ErrSignupFieldsMissing()
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, user.ErrRegistry.NewWithCause(user.CodeDatabaseUnavailable, err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists().WithDetail("email", email.String())
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, user.ErrRegistry.NewWithCause(user.CodeSignupFailed, err)
	}

	now := s.now()
	u := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errx.IsType(err, errx.TypeConflict) {
			return nil, err
		}
		return nil, user.ErrRegistry.NewWithCause(user.CodeDatabaseUnavailable, err)
	}

	// the account exists at this point, so a stats failure is only logged
	if err := s.stats.Ensure(ctx, u.ID); err != nil {
		logx.Errorf("Failed to create user stats for %s: %v", u.ID, err)
	}

	token, err := s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, err
	}

	logx.Infof("User registered: %s", u.ID)
	return &user.AuthResponse{
		Success:     true,
		Message:     "User registered successfully",
		AccessToken: token,
		User:        u.ToResponse(),
	}, nil
}

// Login verifies credentials and issues a token
func (s *UserService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return nil, user.ErrRegistry.NewWithCause(user.CodeDatabaseUnavailable, err)
	}

	email := req.Email.Normalize()
	if email == "" || req.Password == "" {
		return nil, user.ErrLoginFieldsMissing()
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, user.ErrInvalidCredentials()
		}
		return nil, user.ErrRegistry.NewWithCause(user.CodeLoginFailed, err)
	}

	if !u.CanLogin() {
		return nil, user.ErrUserInactive()
	}

	if !s.passwords.Compare(u.PasswordHash, req.Password) {
		return nil, user.ErrInvalidCredentials()
	}

	token, err := s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		Success:     true,
		Message:     "Login successful",
		AccessToken: token,
		User:        u.ToResponse(),
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}
