package learningpath

import (
	"encoding/json"
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

type Phase struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Topics   []string `json:"topics"`
}

type SalaryInsights struct {
	Entry  string `json:"entry"`
	Mid    string `json:"mid"`
	Senior string `json:"senior"`
}

type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

type Milestone struct {
	Title       string `json:"title"`
	Timeframe   string `json:"timeframe"`
	Description string `json:"description,omitempty"`
}

// Plan is a generated learning path. The optional fields are only filled by the LLM generator.
type Plan struct {
	CareerPath           string         `json:"career_path"`
	Overview             string         `json:"overview"`
	LearningPhases       []Phase        `json:"learning_phases"`
	SkillsToAcquire      []string       `json:"skills_to_acquire"`
	Certifications       []string       `json:"certifications"`
	JobSearchTips        []string       `json:"job_search_tips"`
	SalaryInsights       SalaryInsights `json:"salary_insights"`
	RecommendedResources []Resource     `json:"recommended_resources,omitempty"`
	Milestones           []Milestone    `json:"milestones,omitempty"`
	GeneratedBy          string         `json:"generated_by,omitempty"`
	GeneratedAt          *time.Time     `json:"generated_at,omitempty"`
}

// PhaseNames lists the plan's phase names in order
func (p Plan) PhaseNames() []string {
	names := make([]string, 0, len(p.LearningPhases))
	for _, ph := range p.LearningPhases {
		names = append(names, ph.Phase)
	}
	return names
}

// LearningPath is a plan a user saved
type LearningPath struct {
	ID              kernel.LearningPathID `json:"id"`
	UserID          kernel.UserID         `json:"-"`
	CareerPath      string                `json:"career_path"`
	Plan            Plan                  `json:"learning_path_data"`
	InputData       json.RawMessage       `json:"input_data,omitempty"`
	Progress        int                   `json:"progress"`
	CompletedPhases []string              `json:"completed_phases"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// SetCompletedPhases records the finished phases and recomputes progress.
// Names must belong to the plan; duplicates count once.
func (lp *LearningPath) SetCompletedPhases(names []string) error {
	known := make(map[string]bool, len(lp.Plan.LearningPhases))
	for _, n := range lp.Plan.PhaseNames() {
		known[n] = true
	}

	seen := make(map[string]bool, len(names))
	completed := make([]string, 0, len(names))
	for _, n := range names {
		if !known[n] {
			return ErrUnknownPhase().WithDetail("phase", n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		completed = append(completed, n)
	}

	lp.CompletedPhases = completed
	lp.Progress = progressOf(len(completed), len(known))
	return nil
}

func progressOf(done, total int) int {
	if total == 0 {
		return 0
	}
	// integer round-half-up of 100*done/total
	p := (200*done + total) / (2 * total)
	return min(max(p, 0), 100)
}
