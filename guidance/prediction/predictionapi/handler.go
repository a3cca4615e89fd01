package predictionapi

import (
	"net/url"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/guidance/prediction/predictionsrv"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/Abraxas-365/pathway/pkg/validatex"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *predictionsrv.PredictionService
}

func NewHandlers(service *predictionsrv.PredictionService) *Handlers {
	return &Handlers{service: service}
}

// Careers lists the careers known to the prediction service
// GET /api/careers
func (h *Handlers) Careers(c *fiber.Ctx) error {
	return c.JSON(h.service.Careers(c.UserContext()))
}

// Predict scores a candidate profile. Authenticated calls are saved to history.
// POST /api/predict
func (h *Handlers) Predict(c *fiber.Ctx) error {
	var req prediction.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return prediction.ErrFieldsMissing().WithCause(err)
	}
	if err := validatex.Struct(req); err != nil {
		return prediction.ErrFieldsMissing().WithDetails(validatex.Fields(err))
	}

	userID, _ := auth.GetUserID(c)
	result, err := h.service.Predict(c.UserContext(), userID, req.Profile())
	if err != nil {
		return err
	}

	return c.JSON(prediction.PredictResponse{
		Success:          true,
		CareerPrediction: *result,
	})
}

// History lists the caller's past predictions, newest first
// GET /api/career-history
func (h *Handlers) History(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	items, err := h.service.History(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(prediction.HistoryResponse{
		Success: true,
		History: items,
	})
}

// DeleteHistory removes one of the caller's predictions
// DELETE /api/career-history/:id
func (h *Handlers) DeleteHistory(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.NewCareerHistoryID(c.Params("id"))
	if err := h.service.DeleteHistory(c.UserContext(), userID, id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Career history deleted successfully",
	})
}

// CareerInfo returns the information card for a career
// GET /api/career-info/:name
func (h *Handlers) CareerInfo(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}

	card, err := h.service.CareerInfo(name)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(card)
}

// RegisterRoutes registers the prediction routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api")

	api.Get("/careers", handlers.Careers)
	api.Get("/career-info/:name", handlers.CareerInfo)
	api.Post("/predict", authMiddleware.Optional(), handlers.Predict)

	api.Get("/career-history", authMiddleware.Authenticate(), handlers.History)
	api.Delete("/career-history/:id", authMiddleware.Authenticate(), handlers.DeleteHistory)
}
