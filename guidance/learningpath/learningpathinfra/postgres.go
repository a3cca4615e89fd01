package learningpathinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresLearningPathRepository struct {
	db *sqlx.DB
}

func NewPostgresLearningPathRepository(db *sqlx.DB) learningpath.Repository {
	return &PostgresLearningPathRepository{db: db}
}

const pathColumns = `
	id, user_id, career_path, learning_path_data, input_data,
	progress, completed_phases, created_at, updated_at
`

// Create inserts a saved learning path
func (r *PostgresLearningPathRepository) Create(ctx context.Context, lp *learningpath.LearningPath) error {
	row, err := toRow(lp)
	if err != nil {
		return errx.Wrap(err, "failed to encode learning path", errx.TypeInternal)
	}

	query := `
		INSERT INTO learning_paths (` + pathColumns + `) VALUES (
			:id, :user_id, :career_path, :learning_path_data, :input_data,
			:progress, :completed_phases, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return errx.Wrap(err, "failed to create learning path", errx.TypeInternal)
	}
	return nil
}

// GetByID retrieves a path owned by userID
func (r *PostgresLearningPathRepository) GetByID(ctx context.Context, id kernel.LearningPathID, userID kernel.UserID) (*learningpath.LearningPath, error) {
	query := `SELECT ` + pathColumns + ` FROM learning_paths WHERE id = $1 AND user_id = $2`

	var row pathRow
	err := r.db.GetContext(ctx, &row, query, id.String(), userID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, learningpath.ErrNotFound().WithDetail("id", id.String())
	}
	if err != nil {
		return nil, errx.Wrap(err, "failed to get learning path", errx.TypeInternal)
	}

	lp, err := row.ToDomain()
	if err != nil {
		return nil, errx.Wrap(err, "failed to decode learning path", errx.TypeInternal)
	}
	return lp, nil
}

// ListByUser returns the newest paths of a user
func (r *PostgresLearningPathRepository) ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]*learningpath.LearningPath, error) {
	query := `
		SELECT ` + pathColumns + `
		FROM learning_paths
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []pathRow
	if err := r.db.SelectContext(ctx, &rows, query, userID.String(), limit); err != nil {
		return nil, errx.Wrap(err, "failed to list learning paths", errx.TypeInternal)
	}

	paths := make([]*learningpath.LearningPath, 0, len(rows))
	for i := range rows {
		lp, err := rows[i].ToDomain()
		if err != nil {
			return nil, errx.Wrap(err, "failed to decode learning path", errx.TypeInternal)
		}
		paths = append(paths, lp)
	}
	return paths, nil
}

// UpdateProgress writes progress and completed phases
func (r *PostgresLearningPathRepository) UpdateProgress(ctx context.Context, lp *learningpath.LearningPath) error {
	row, err := toRow(lp)
	if err != nil {
		return errx.Wrap(err, "failed to encode learning path", errx.TypeInternal)
	}

	query := `
		UPDATE learning_paths SET
			progress = :progress,
			completed_phases = :completed_phases,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return errx.Wrap(err, "failed to update learning path progress", errx.TypeInternal)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to update learning path progress", errx.TypeInternal)
	}
	if n == 0 {
		return learningpath.ErrNotFound().WithDetail("id", lp.ID.String())
	}
	return nil
}

// Delete removes a path owned by userID
func (r *PostgresLearningPathRepository) Delete(ctx context.Context, id kernel.LearningPathID, userID kernel.UserID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM learning_paths WHERE id = $1 AND user_id = $2`,
		id.String(), userID.String(),
	)
	if err != nil {
		return errx.Wrap(err, "failed to delete learning path", errx.TypeInternal)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to delete learning path", errx.TypeInternal)
	}
	if n == 0 {
		return learningpath.ErrNotFound().WithDetail("id", id.String())
	}
	return nil
}
