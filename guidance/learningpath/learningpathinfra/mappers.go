package learningpathinfra

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/pkg/kernel"
)

// pathRow represents a row from the learning_paths table
type pathRow struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	CareerPath       string    `db:"career_path"`
	LearningPathData []byte    `db:"learning_path_data"`
	InputData        []byte    `db:"input_data"`
	Progress         int       `db:"progress"`
	CompletedPhases  []byte    `db:"completed_phases"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func toRow(lp *learningpath.LearningPath) (*pathRow, error) {
	plan, err := json.Marshal(lp.Plan)
	if err != nil {
		return nil, fmt.Errorf("marshal learning_path_data: %w", err)
	}
	completed := lp.CompletedPhases
	if completed == nil {
		completed = []string{}
	}
	phases, err := json.Marshal(completed)
	if err != nil {
		return nil, fmt.Errorf("marshal completed_phases: %w", err)
	}

	var input []byte
	if len(lp.InputData) > 0 {
		input = lp.InputData
	}

	return &pathRow{
		ID:               lp.ID.String(),
		UserID:           lp.UserID.String(),
		CareerPath:       lp.CareerPath,
		LearningPathData: plan,
		InputData:        input,
		Progress:         lp.Progress,
		CompletedPhases:  phases,
		CreatedAt:        lp.CreatedAt,
		UpdatedAt:        lp.UpdatedAt,
	}, nil
}

// ToDomain converts a pathRow to a learningpath.LearningPath
func (r *pathRow) ToDomain() (*learningpath.LearningPath, error) {
	lp := &learningpath.LearningPath{
		ID:              kernel.NewLearningPathID(r.ID),
		UserID:          kernel.NewUserID(r.UserID),
		CareerPath:      r.CareerPath,
		Progress:        r.Progress,
		CompletedPhases: []string{},
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if err := json.Unmarshal(r.LearningPathData, &lp.Plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal learning_path_data: %w", err)
	}
	if len(r.CompletedPhases) > 0 {
		if err := json.Unmarshal(r.CompletedPhases, &lp.CompletedPhases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal completed_phases: %w", err)
		}
	}
	if len(r.InputData) > 0 {
		lp.InputData = json.RawMessage(r.InputData)
	}
	return lp, nil
}
