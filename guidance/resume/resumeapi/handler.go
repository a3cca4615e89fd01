package resumeapi

import (
	"io"

	"github.com/Abraxas-365/pathway/guidance/resume"
	"github.com/Abraxas-365/pathway/guidance/resume/resumesrv"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/gofiber/fiber/v2"
)

// BodyLimit is the request size the server must accept for uploads
const BodyLimit = resume.MaxFileSize + 1024*1024

type Handlers struct {
	service *resumesrv.ResumeService
}

func NewHandlers(service *resumesrv.ResumeService) *Handlers {
	return &Handlers{service: service}
}

// PredictFromResume predicts a career from an uploaded PDF resume
// POST /api/predict-from-resume
func (h *Handlers) PredictFromResume(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	file, err := c.FormFile("file")
	if err != nil {
		return resume.ErrFileRequired().WithCause(err)
	}
	if !resumesrv.IsPDF(file.Filename) {
		return resume.ErrPDFOnly().WithDetail("file_name", file.Filename)
	}
	if file.Size > resume.MaxFileSize {
		return resume.ErrFileTooLarge(file.Size)
	}

	f, err := file.Open()
	if err != nil {
		return errx.Wrap(err, "failed to open uploaded file", errx.TypeInternal)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, resume.MaxFileSize+1))
	if err != nil {
		return errx.Wrap(err, "failed to read uploaded file", errx.TypeInternal)
	}

	resp, err := h.service.PredictFromResume(c.UserContext(), userID, resume.Upload{
		FileName: file.Filename,
		Data:     data,
	})
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Post("/api/predict-from-resume", authMiddleware.Authenticate(), handlers.PredictFromResume)
}
