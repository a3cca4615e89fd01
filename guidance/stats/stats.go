// Package stats keeps per-user activity counters.
package stats

import (
	"context"
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

type UserStats struct {
	UserID                      kernel.UserID `db:"user_id" json:"-"`
	TotalAssessments            int           `db:"total_assessments" json:"total_assessments"`
	TotalLearningPathsGenerated int           `db:"total_learning_paths_generated" json:"total_learning_paths_generated"`
	TotalResumesUploaded        int           `db:"total_resumes_uploaded" json:"total_resumes_uploaded"`
	LastAssessmentDate          *time.Time    `db:"last_assessment_date" json:"last_assessment_date"`
	LastLearningPathDate        *time.Time    `db:"last_learning_path_date" json:"last_learning_path_date"`
	LastResumeUploadDate        *time.Time    `db:"last_resume_upload_date" json:"last_resume_upload_date"`
	CreatedAt                   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt                   time.Time     `db:"updated_at" json:"updated_at"`
}

// Repository counters are upserted, so recording works even before Ensure ran
type Repository interface {
	// Ensure creates the zeroed row if it does not exist
	Ensure(ctx context.Context, userID kernel.UserID) error

	// GetOrCreate returns the row, creating it first when missing
	GetOrCreate(ctx context.Context, userID kernel.UserID) (*UserStats, error)

	RecordAssessment(ctx context.Context, userID kernel.UserID, at time.Time) error
	RecordLearningPath(ctx context.Context, userID kernel.UserID, at time.Time) error
	RecordResumeUpload(ctx context.Context, userID kernel.UserID, at time.Time) error
}
