package resume

import (
	"context"
	"time"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, r *Resume) error
}

type TextExtractor interface {
	ExtractText(pdfData []byte) (string, error)
}

// Predictor runs the regular prediction flow, storing history for userID
type Predictor interface {
	Predict(ctx context.Context, userID kernel.UserID, profile prediction.CandidateProfile) (*prediction.CareerPrediction, error)
}

type ActivityRecorder interface {
	RecordResumeUpload(ctx context.Context, userID kernel.UserID, at time.Time) error
}
