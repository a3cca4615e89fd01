package predictioninfra

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/pkg/kernel"
)

// historyRow represents a row from the career_history table
type historyRow struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	InputData          []byte    `db:"input_data"`
	PredictedCareer    string    `db:"predicted_career"`
	Confidence         float64   `db:"confidence"`
	AlternativeCareers []byte    `db:"alternative_careers"`
	Recommendations    []byte    `db:"recommendations"`
	SkillsMatch        int       `db:"skills_match"`
	CreatedAt          time.Time `db:"created_at"`
}

func toRow(h *prediction.CareerHistory) (*historyRow, error) {
	input, err := json.Marshal(h.InputData)
	if err != nil {
		return nil, fmt.Errorf("marshal input_data: %w", err)
	}
	alternatives, err := json.Marshal(h.AlternativeCareers)
	if err != nil {
		return nil, fmt.Errorf("marshal alternative_careers: %w", err)
	}
	recommendations, err := json.Marshal(h.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendations: %w", err)
	}

	return &historyRow{
		ID:                 h.ID.String(),
		UserID:             h.UserID.String(),
		InputData:          input,
		PredictedCareer:    h.PredictedCareer,
		Confidence:         h.Confidence,
		AlternativeCareers: alternatives,
		Recommendations:    recommendations,
		SkillsMatch:        h.SkillsMatch,
		CreatedAt:          h.CreatedAt,
	}, nil
}

// ToDomain converts a historyRow to a prediction.CareerHistory
func (r *historyRow) ToDomain() (*prediction.CareerHistory, error) {
	h := &prediction.CareerHistory{
		ID:              kernel.NewCareerHistoryID(r.ID),
		UserID:          kernel.NewUserID(r.UserID),
		PredictedCareer: r.PredictedCareer,
		Confidence:      r.Confidence,
		SkillsMatch:     r.SkillsMatch,
		CreatedAt:       r.CreatedAt,
	}

	if err := unmarshalJSONB(r.InputData, &h.InputData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal input_data: %w", err)
	}
	if err := unmarshalJSONB(r.AlternativeCareers, &h.AlternativeCareers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alternative_careers: %w", err)
	}
	if err := unmarshalJSONB(r.Recommendations, &h.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}

	if h.AlternativeCareers == nil {
		h.AlternativeCareers = []prediction.AlternativeCareer{}
	}
	if h.Recommendations == nil {
		h.Recommendations = []string{}
	}
	return h, nil
}

// unmarshalJSONB treats NULL columns as empty values
func unmarshalJSONB(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
