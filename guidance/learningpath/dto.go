package learningpath

import (
	"encoding/json"
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

const DefaultLearningStyle = "online"

type GenerateRequest struct {
	CareerPath      string            `json:"career_path" validate:"required"`
	CurrentSkills   kernel.StringList `json:"current_skills" validate:"required"`
	ExperienceLevel string            `json:"experience_level" validate:"required"`
	TimeCommitment  kernel.FlexString `json:"time_commitment" validate:"required,notzero"`
	LearningStyle   string            `json:"learning_style,omitempty"`
}

// WithDefaults fills optional fields and never returns a nil skills list
func (r GenerateRequest) WithDefaults() GenerateRequest {
	if r.LearningStyle == "" {
		r.LearningStyle = DefaultLearningStyle
	}
	r.CurrentSkills = r.CurrentSkills.Strings()
	return r
}

type SaveRequest struct {
	CareerPath       string          `json:"career_path" validate:"required"`
	LearningPathData *Plan           `json:"learning_path_data" validate:"required"`
	InputData        json.RawMessage `json:"input_data,omitempty"`
}

type UpdateProgressRequest struct {
	CompletedPhases []string `json:"completed_phases" validate:"required"`
}

type SavedSummary struct {
	ID         kernel.LearningPathID `json:"id"`
	CareerPath string                `json:"career_path"`
	Progress   int                   `json:"progress"`
	CreatedAt  time.Time             `json:"created_at"`
}

type SaveResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	PathID       kernel.LearningPathID `json:"path_id"`
	LearningPath SavedSummary          `json:"learning_path"`
}

// HistoryItem is a saved path as listed in the history view
type HistoryItem struct {
	ID              kernel.LearningPathID `json:"id"`
	CareerPath      string                `json:"career_path"`
	Progress        int                   `json:"progress"`
	CompletedPhases []string              `json:"completed_phases"`
	LearningPhases  []Phase               `json:"learning_phases"`
	Overview        string                `json:"overview,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

func (lp *LearningPath) ToHistoryItem() HistoryItem {
	phases := lp.Plan.LearningPhases
	if phases == nil {
		phases = []Phase{}
	}
	completed := lp.CompletedPhases
	if completed == nil {
		completed = []string{}
	}
	return HistoryItem{
		ID:              lp.ID,
		CareerPath:      lp.CareerPath,
		Progress:        lp.Progress,
		CompletedPhases: completed,
		LearningPhases:  phases,
		Overview:        lp.Plan.Overview,
		CreatedAt:       lp.CreatedAt,
	}
}

// AIStatus reports whether the LLM generator is usable
type AIStatus struct {
	Configured bool   `json:"configured"`
	Working    bool   `json:"working"`
	Model      string `json:"model,omitempty"`
	Message    string `json:"message"`
}
