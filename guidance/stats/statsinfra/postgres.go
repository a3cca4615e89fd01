package statsinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/pathway/guidance/stats"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresStatsRepository struct {
	db *sqlx.DB
}

func NewPostgresStatsRepository(db *sqlx.DB) stats.Repository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) Ensure(ctx context.Context, userID kernel.UserID) error {
	query := `
		INSERT INTO user_stats (user_id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return errx.Wrap(err, "failed to create user stats", errx.TypeInternal)
	}
	return nil
}

func (r *PostgresStatsRepository) GetOrCreate(ctx context.Context, userID kernel.UserID) (*stats.UserStats, error) {
	if err := r.Ensure(ctx, userID); err != nil {
		return nil, err
	}

	query := `
		SELECT
			user_id, total_assessments, total_learning_paths_generated,
			total_resumes_uploaded, last_assessment_date, last_learning_path_date,
			last_resume_upload_date, created_at, updated_at
		FROM user_stats
		WHERE user_id = $1
	`
	var s stats.UserStats
	if err := r.db.GetContext(ctx, &s, query, userID); err != nil {
		return nil, errx.Wrap(err, "failed to get user stats", errx.TypeInternal)
	}
	return &s, nil
}

func (r *PostgresStatsRepository) RecordAssessment(ctx context.Context, userID kernel.UserID, at time.Time) error {
	return r.bump(ctx, userID, "total_assessments", "last_assessment_date", at)
}

func (r *PostgresStatsRepository) RecordLearningPath(ctx context.Context, userID kernel.UserID, at time.Time) error {
	return r.bump(ctx, userID, "total_learning_paths_generated", "last_learning_path_date", at)
}

func (r *PostgresStatsRepository) RecordResumeUpload(ctx context.Context, userID kernel.UserID, at time.Time) error {
	return r.bump(ctx, userID, "total_resumes_uploaded", "last_resume_upload_date", at)
}

// bump increments a counter and stamps its date in one upsert.
// Column names are fixed by the callers above, never taken from input.
func (r *PostgresStatsRepository) bump(ctx context.Context, userID kernel.UserID, counter, dateCol string, at time.Time) error {
	query := fmt.Sprintf(`
		INSERT INTO user_stats (user_id, %[1]s, %[2]s, created_at, updated_at)
		VALUES ($1, 1, $2, $2, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET %[1]s = user_stats.%[1]s + 1,
			%[2]s = EXCLUDED.%[2]s,
			updated_at = EXCLUDED.updated_at
	`, counter, dateCol)

	if _, err := r.db.ExecContext(ctx, query, userID, at); err != nil {
		return errx.Wrap(err, "failed to update user stats", errx.TypeInternal)
	}
	return nil
}
