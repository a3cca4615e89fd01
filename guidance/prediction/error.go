package prediction

import (
	"net/http"

	"github.com/Abraxas-365/pathway/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("PREDICTION")

var (
	CodeFieldsMissing     = ErrRegistry.Register("FIELDS_MISSING", errx.TypeValidation, http.StatusBadRequest, "Please provide education, years_experience, skills, and interests")
	CodeHistoryNotFound   = ErrRegistry.Register("HISTORY_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Career history not found")
	CodeCareerInfoMissing = ErrRegistry.Register("CAREER_INFO_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Career not found")
	CodePredictionFailed  = ErrRegistry.Register("PREDICTION_FAILED", errx.TypeExternal, http.StatusInternalServerError, "Prediction failed")
	CodeServiceFailed     = ErrRegistry.Register("SERVICE_FAILED", errx.TypeExternal, http.StatusInternalServerError, "Failed to get prediction from ML service")
	CodeSaveFailed        = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error predicting career")
	CodeHistoryFailed     = ErrRegistry.Register("HISTORY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error fetching career history")
)

func ErrFieldsMissing() *errx.Error {
	return ErrRegistry.New(CodeFieldsMissing)
}

func ErrHistoryNotFound() *errx.Error {
	return ErrRegistry.New(CodeHistoryNotFound)
}

func ErrCareerInfoNotFound() *errx.Error {
	return ErrRegistry.New(CodeCareerInfoMissing)
}

// ErrPredictionFailed carries the message the prediction service answered with
func ErrPredictionFailed(message string) *errx.Error {
	e := ErrRegistry.New(CodePredictionFailed)
	if message != "" {
		e.WithMessage(message)
	}
	return e
}

func ErrServiceFailed() *errx.Error {
	return ErrRegistry.New(CodeServiceFailed)
}
