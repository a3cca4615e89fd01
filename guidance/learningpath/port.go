package learningpath

import (
	"context"
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, lp *LearningPath) error

	// GetByID returns ErrNotFound unless the path exists and belongs to userID
	GetByID(ctx context.Context, id kernel.LearningPathID, userID kernel.UserID) (*LearningPath, error)

	// ListByUser returns the newest paths first
	ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]*LearningPath, error)

	UpdateProgress(ctx context.Context, lp *LearningPath) error

	// Delete returns ErrNotFound unless the path belongs to userID
	Delete(ctx context.Context, id kernel.LearningPathID, userID kernel.UserID) error
}

// PlanGenerator is a remote source of learning plans
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req GenerateRequest) (*Plan, error)
}

// AIGenerator is the LLM-backed generator, which can also report its health
type AIGenerator interface {
	PlanGenerator
	Configured() bool
	Status(ctx context.Context) AIStatus
}

// ActivityRecorder bumps per-user counters after a path is saved
type ActivityRecorder interface {
	RecordLearningPath(ctx context.Context, userID kernel.UserID, at time.Time) error
}
