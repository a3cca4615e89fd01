package resume

import (
	"net/http"

	"github.com/Abraxas-365/pathway/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeFileRequired = ErrRegistry.Register("FILE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Please upload a resume file")
	CodePDFOnly      = ErrRegistry.Register("PDF_ONLY", errx.TypeValidation, http.StatusBadRequest, "Only PDF files are supported")
	CodeFileTooLarge = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File exceeds the 10MB limit")
	CodeUnreadable   = ErrRegistry.Register("UNREADABLE", errx.TypeValidation, http.StatusBadRequest, "Could not read the PDF file")
	CodeUploadFailed = ErrRegistry.Register("UPLOAD_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store resume file")
	CodeSaveFailed   = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save resume")
)

func ErrFileRequired() *errx.Error {
	return ErrRegistry.New(CodeFileRequired)
}

func ErrPDFOnly() *errx.Error {
	return ErrRegistry.New(CodePDFOnly)
}

func ErrFileTooLarge(size int64) *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge).
		WithDetail("max_size", "10MB").
		WithDetail("size", size)
}

func ErrUnreadable(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeUnreadable, cause)
}
