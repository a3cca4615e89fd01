package prediction

import (
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
)

// CandidateProfile is what the matcher and the ML service score
type CandidateProfile struct {
	Education         string   `json:"education"`
	YearsExperience   int      `json:"years_experience"`
	Skills            []string `json:"skills"`
	Interests         []string `json:"interests"`
	Certifications    []string `json:"certifications,omitempty"`
	PreferredIndustry string   `json:"preferred_industry,omitempty"`
}

type AlternativeCareer struct {
	Career     string  `json:"career"`
	Confidence float64 `json:"confidence"`
}

// CareerPrediction is the normalized prediction, whichever source produced it
type CareerPrediction struct {
	PrimaryCareer      string              `json:"primary_career"`
	Confidence         float64             `json:"confidence"`
	AlternativeCareers []AlternativeCareer `json:"alternative_careers"`
	SkillsMatch        int                 `json:"skills_match"`
	Recommendations    []string            `json:"recommendations"`
	Note               string              `json:"note,omitempty"`
}

// CareerHistory is a stored prediction for a signed-in user
type CareerHistory struct {
	ID                 kernel.CareerHistoryID `json:"id"`
	UserID             kernel.UserID          `json:"-"`
	InputData          CandidateProfile       `json:"input_data"`
	PredictedCareer    string                 `json:"career_path"`
	Confidence         float64                `json:"confidence"`
	AlternativeCareers []AlternativeCareer    `json:"alternative_careers"`
	Recommendations    []string               `json:"recommendations"`
	SkillsMatch        int                    `json:"skills_match"`
	CreatedAt          time.Time              `json:"created_at"`
}

// Catalog is the list of careers the prediction service knows about
type Catalog struct {
	Careers []string `json:"careers"`
}

// CareerInfo is the static description card served per career
type CareerInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	AvgSalary      string   `json:"avg_salary"`
	GrowthRate     string   `json:"growth_rate"`
	RequiredSkills []string `json:"required_skills"`
	Education      string   `json:"education"`
}
