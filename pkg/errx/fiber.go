package errx

import (
	"errors"

	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// FiberErrorHandler converts errors returned by handlers into JSON responses
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	if e, ok := As(err); ok {
		status := e.HTTPStatus
		if status == 0 {
			status = e.Type.defaultStatus()
		}
		if status >= fiber.StatusInternalServerError {
			logx.Errorf("%s %s failed: %v", c.Method(), c.Path(), e)
		}
		return c.Status(status).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "An unexpected error occurred",
		"error": fiber.Map{
			"type": TypeInternal,
			"code": "INTERNAL_ERROR",
		},
	})
}
