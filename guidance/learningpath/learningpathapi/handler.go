package learningpathapi

import (
	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/guidance/learningpath/learningpathsrv"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/Abraxas-365/pathway/pkg/validatex"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *learningpathsrv.LearningPathService
}

func NewHandlers(service *learningpathsrv.LearningPathService) *Handlers {
	return &Handlers{service: service}
}

// Generate builds a learning plan for a career
// POST /api/generate-path
func (h *Handlers) Generate(c *fiber.Ctx) error {
	var req learningpath.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return learningpath.ErrGenerateFieldsMissing().WithCause(err)
	}
	if err := validatex.Struct(req); err != nil {
		return learningpath.ErrGenerateFieldsMissing().WithDetails(validatex.Fields(err))
	}

	plan := h.service.Generate(c.UserContext(), req)

	return c.JSON(generateResponse{
		Success: true,
		Plan:    *plan,
	})
}

type generateResponse struct {
	Success bool `json:"success"`
	learningpath.Plan
}

// AIStatus reports whether the OpenAI generator works
// GET /api/ai/status
func (h *Handlers) AIStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.AIStatus(c.UserContext()))
}

// Save stores a generated plan for the caller
// POST /api/save-learning-path
func (h *Handlers) Save(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req learningpath.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return learningpath.ErrSaveFieldsMissing().WithCause(err)
	}
	if err := validatex.Struct(req); err != nil {
		return learningpath.ErrSaveFieldsMissing().WithDetails(validatex.Fields(err))
	}

	resp, err := h.service.Save(c.UserContext(), userID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// History lists the caller's saved paths
// GET /api/learning-path-history
func (h *Handlers) History(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	items, err := h.service.History(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"paths":   items,
	})
}

// Delete removes one of the caller's saved paths
// DELETE /api/learning-path-history/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.NewLearningPathID(c.Params("id"))
	if err := h.service.Delete(c.UserContext(), userID, id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Learning path deleted successfully",
	})
}

// UpdateProgress marks phases of a saved path as completed
// PUT /api/learning-path-history/:id/progress
func (h *Handlers) UpdateProgress(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req learningpath.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return learningpath.ErrInvalidProgress().WithCause(err)
	}
	if err := validatex.Struct(req); err != nil {
		return learningpath.ErrInvalidProgress().WithDetails(validatex.Fields(err))
	}

	id := kernel.NewLearningPathID(c.Params("id"))
	lp, err := h.service.UpdateProgress(c.UserContext(), userID, id, req.CompletedPhases)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"message":          "Progress updated successfully",
		"progress":         lp.Progress,
		"completed_phases": lp.CompletedPhases,
	})
}

// RegisterRoutes registers the learning path routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api")

	api.Post("/generate-path", handlers.Generate)
	api.Get("/ai/status", handlers.AIStatus)

	api.Post("/save-learning-path", authMiddleware.Authenticate(), handlers.Save)
	api.Get("/learning-path-history", authMiddleware.Authenticate(), handlers.History)
	api.Delete("/learning-path-history/:id", authMiddleware.Authenticate(), handlers.Delete)
	api.Put("/learning-path-history/:id/progress", authMiddleware.Authenticate(), handlers.UpdateProgress)
}
