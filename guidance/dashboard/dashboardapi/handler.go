package dashboardapi

import (
	"github.com/Abraxas-365/pathway/guidance/dashboard/dashboardsrv"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *dashboardsrv.DashboardService
}

func NewHandlers(service *dashboardsrv.DashboardService) *Handlers {
	return &Handlers{service: service}
}

// Get returns the caller's dashboard
// GET /api/dashboard
func (h *Handlers) Get(c *fiber.Ctx) error {
	u, ok := auth.GetUser(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	d, err := h.service.Build(c.UserContext(), u)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Get("/api/dashboard", authMiddleware.Authenticate(), handlers.Get)
}
