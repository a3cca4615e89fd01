package learningpath

import (
	"net/http"

	"github.com/Abraxas-365/pathway/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("LEARNING_PATH")

var (
	CodeNotFound              = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Learning path not found")
	CodeGenerateFieldsMissing = ErrRegistry.Register("GENERATE_FIELDS_MISSING", errx.TypeValidation, http.StatusBadRequest, "Please provide career_path, current_skills, experience_level, and time_commitment")
	CodeSaveFieldsMissing     = ErrRegistry.Register("SAVE_FIELDS_MISSING", errx.TypeValidation, http.StatusBadRequest, "Please provide career_path and learning_path_data")
	CodeInvalidProgress       = ErrRegistry.Register("INVALID_PROGRESS", errx.TypeValidation, http.StatusBadRequest, "Please provide completed_phases")
	CodeUnknownPhase          = ErrRegistry.Register("UNKNOWN_PHASE", errx.TypeValidation, http.StatusBadRequest, "Phase is not part of this learning path")
	CodeGenerationFailed      = ErrRegistry.Register("GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error generating learning path")
	CodeSaveFailed            = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error saving learning path")
	CodeFetchFailed           = ErrRegistry.Register("FETCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error fetching learning path history")
	CodeDeleteFailed          = ErrRegistry.Register("DELETE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error deleting learning path")
)

func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrGenerateFieldsMissing() *errx.Error {
	return ErrRegistry.New(CodeGenerateFieldsMissing)
}

func ErrSaveFieldsMissing() *errx.Error {
	return ErrRegistry.New(CodeSaveFieldsMissing)
}

func ErrInvalidProgress() *errx.Error {
	return ErrRegistry.New(CodeInvalidProgress)
}

func ErrUnknownPhase() *errx.Error {
	return ErrRegistry.New(CodeUnknownPhase)
}
