package userapi

import (
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/Abraxas-365/pathway/pkg/iam/user"
	"github.com/Abraxas-365/pathway/pkg/iam/user/usersrv"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *usersrv.UserService
}

func NewHandlers(service *usersrv.UserService) *Handlers {
	return &Handlers{service: service}
}

// Signup registers a new user
// POST /api/auth/signup
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req user.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrSignupFieldsMissing().WithCause(err)
	}

	resp, err := h.service.Signup(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates with email and password
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrLoginFieldsMissing().WithCause(err)
	}

	resp, err := h.service.Login(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me returns the authenticated user's profile
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	u, ok := auth.GetUser(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    u.ToResponse(),
	})
}

// RegisterRoutes registers the auth routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/auth")

	api.Post("/signup", handlers.Signup)
	api.Post("/login", handlers.Login)

	api.Get("/me", authMiddleware.Authenticate(), handlers.Me)
}
