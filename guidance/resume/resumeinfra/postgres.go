package resumeinfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/pathway/guidance/resume"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/jmoiron/sqlx"
)

type PostgresResumeRepository struct {
	db *sqlx.DB
}

func NewPostgresResumeRepository(db *sqlx.DB) resume.Repository {
	return &PostgresResumeRepository{db: db}
}

// resumeRow represents a row from the resumes table
type resumeRow struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	FileName      string    `db:"file_name"`
	FilePath      string    `db:"file_path"`
	FileSize      int64     `db:"file_size"`
	ExtractedText string    `db:"extracted_text"`
	ParsedData    []byte    `db:"parsed_data"`
	CreatedAt     time.Time `db:"created_at"`
}

// Create inserts an uploaded resume
func (r *PostgresResumeRepository) Create(ctx context.Context, res *resume.Resume) error {
	parsed, err := json.Marshal(res.ParsedData)
	if err != nil {
		return errx.Wrap(err, "failed to encode parsed_data", errx.TypeInternal)
	}

	row := resumeRow{
		ID:            res.ID.String(),
		UserID:        res.UserID.String(),
		FileName:      res.FileName,
		FilePath:      res.FilePath,
		FileSize:      res.FileSize,
		ExtractedText: res.ExtractedText,
		ParsedData:    parsed,
		CreatedAt:     res.CreatedAt,
	}

	query := `
		INSERT INTO resumes (
			id, user_id, file_name, file_path, file_size,
			extracted_text, parsed_data, created_at
		) VALUES (
			:id, :user_id, :file_name, :file_path, :file_size,
			:extracted_text, :parsed_data, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return errx.Wrap(err, "failed to create resume", errx.TypeInternal)
	}
	return nil
}
