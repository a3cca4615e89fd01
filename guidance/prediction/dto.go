package prediction

import (
	"github.com/Abraxas-365/pathway/pkg/kernel"
)

// PredictRequest accepts skills and interests as a list or a single string
type PredictRequest struct {
	Education         string             `json:"education" validate:"required"`
	YearsExperience   *kernel.FlexNumber `json:"years_experience" validate:"required,gte=0"`
	Skills            kernel.StringList  `json:"skills" validate:"required"`
	Interests         kernel.StringList  `json:"interests" validate:"required"`
	Certifications    kernel.StringList  `json:"certifications,omitempty"`
	PreferredIndustry string             `json:"preferred_industry,omitempty"`
}

// Profile normalizes the request into the shape the predictors score
func (r PredictRequest) Profile() CandidateProfile {
	years := 0
	if r.YearsExperience != nil {
		years = r.YearsExperience.Int()
	}
	return CandidateProfile{
		Education:         r.Education,
		YearsExperience:   years,
		Skills:            r.Skills.Strings(),
		Interests:         r.Interests.Strings(),
		Certifications:    r.Certifications.Strings(),
		PreferredIndustry: r.PreferredIndustry,
	}
}

// PredictResponse is the prediction envelope; ResumeID is set for resume based predictions
type PredictResponse struct {
	Success bool `json:"success"`
	CareerPrediction
	ResumeID kernel.ResumeID `json:"resume_id,omitempty"`
}

type HistoryResponse struct {
	Success bool             `json:"success"`
	History []*CareerHistory `json:"history"`
}
