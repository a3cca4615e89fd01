package auth

import (
	"context"
	"strings"

	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/iam/user"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

const (
	localsUser   = "auth_user"
	localsUserID = "auth_user_id"
)

// UserLoader is the slice of the user repository the middleware needs
type UserLoader interface {
	GetByID(ctx context.Context, id kernel.UserID) (*user.User, error)
}

type TokenMiddleware struct {
	tokens TokenService
	users  UserLoader
}

func NewAuthMiddleware(tokens TokenService, users UserLoader) *TokenMiddleware {
	return &TokenMiddleware{tokens: tokens, users: users}
}

// Authenticate rejects requests without a valid bearer token for an active user
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return ErrMissingToken()
		}

		u, err := m.resolve(c.UserContext(), token)
		if err != nil {
			return err
		}

		setUser(c, u)
		return c.Next()
	}
}

// Optional attaches the user when a valid token is present and continues anonymously otherwise
func (m *TokenMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		u, err := m.resolve(c.UserContext(), token)
		if errx.IsType(err, errx.TypeInternal) {
			return err
		}
		if err != nil {
			logx.Debugf("optional auth ignored token: %v", err)
			return c.Next()
		}

		setUser(c, u)
		return c.Next()
	}
}

func (m *TokenMiddleware) resolve(ctx context.Context, token string) (*user.User, error) {
	claims, err := m.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	u, err := m.users.GetByID(ctx, claims.UserID)
	if errx.IsType(err, errx.TypeNotFound) {
		return nil, ErrUserNotFound().WithCause(err)
	}
	if err != nil {
		return nil, ErrUserLookupFailed(err)
	}
	if !u.CanLogin() {
		return nil, ErrUserInactive()
	}
	return u, nil
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func setUser(c *fiber.Ctx, u *user.User) {
	c.Locals(localsUser, u)
	c.Locals(localsUserID, u.ID)
}

// GetUser returns the authenticated user, if any
func GetUser(c *fiber.Ctx) (*user.User, bool) {
	u, ok := c.Locals(localsUser).(*user.User)
	return u, ok && u != nil
}

// GetUserID returns the authenticated user's ID, if any
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	id, ok := c.Locals(localsUserID).(kernel.UserID)
	return id, ok && !id.IsEmpty()
}
