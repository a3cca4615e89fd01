package prediction

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

// ErrServiceUnavailable is returned by a Predictor that could not reach its backend
// (connection refused or timed out). Only this failure triggers the local fallback.
var ErrServiceUnavailable = errors.New("prediction service unavailable")

// ServiceError is an error answer from a reachable prediction service
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return "prediction service error"
	}
	return e.Message
}

type Repository interface {
	Create(ctx context.Context, h *CareerHistory) error

	// ListByUser returns the newest entries first
	ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]*CareerHistory, error)

	// Delete returns ErrHistoryNotFound unless the entry belongs to userID
	Delete(ctx context.Context, id kernel.CareerHistoryID, userID kernel.UserID) error
}

// Predictor is the remote prediction service
type Predictor interface {
	Predict(ctx context.Context, profile CandidateProfile) (*CareerPrediction, error)
	Careers(ctx context.Context) (*Catalog, error)
}

type CatalogCache interface {
	// Get returns (nil, nil) on a miss
	Get(ctx context.Context) (*Catalog, error)
	Set(ctx context.Context, catalog *Catalog, ttl time.Duration) error
}

// ActivityRecorder bumps per-user counters after a prediction is stored
type ActivityRecorder interface {
	RecordAssessment(ctx context.Context, userID kernel.UserID, at time.Time) error
}
