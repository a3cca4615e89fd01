package predictioninfra

import (
	"context"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresHistoryRepository struct {
	db *sqlx.DB
}

func NewPostgresHistoryRepository(db *sqlx.DB) prediction.Repository {
	return &PostgresHistoryRepository{db: db}
}

// Create inserts a prediction into career_history
func (r *PostgresHistoryRepository) Create(ctx context.Context, h *prediction.CareerHistory) error {
	row, err := toRow(h)
	if err != nil {
		return errx.Wrap(err, "failed to encode career history", errx.TypeInternal)
	}

	query := `
		INSERT INTO career_history (
			id, user_id, input_data, predicted_career, confidence,
			alternative_careers, recommendations, skills_match, created_at
		) VALUES (
			:id, :user_id, :input_data, :predicted_career, :confidence,
			:alternative_careers, :recommendations, :skills_match, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return errx.Wrap(err, "failed to create career history", errx.TypeInternal)
	}
	return nil
}

// ListByUser returns the newest predictions of a user
func (r *PostgresHistoryRepository) ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]*prediction.CareerHistory, error) {
	query := `
		SELECT
			id, user_id, input_data, predicted_career, confidence,
			alternative_careers, recommendations, skills_match, created_at
		FROM career_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []historyRow
	if err := r.db.SelectContext(ctx, &rows, query, userID.String(), limit); err != nil {
		return nil, errx.Wrap(err, "failed to list career history", errx.TypeInternal)
	}

	items := make([]*prediction.CareerHistory, 0, len(rows))
	for i := range rows {
		h, err := rows[i].ToDomain()
		if err != nil {
			return nil, errx.Wrap(err, "failed to decode career history", errx.TypeInternal)
		}
		items = append(items, h)
	}
	return items, nil
}

// Delete removes a prediction owned by userID
func (r *PostgresHistoryRepository) Delete(ctx context.Context, id kernel.CareerHistoryID, userID kernel.UserID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM career_history WHERE id = $1 AND user_id = $2`,
		id.String(), userID.String(),
	)
	if err != nil {
		return errx.Wrap(err, "failed to delete career history", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to delete career history", errx.TypeInternal)
	}
	if rows == 0 {
		return prediction.ErrHistoryNotFound().WithDetail("id", id.String())
	}
	return nil
}
