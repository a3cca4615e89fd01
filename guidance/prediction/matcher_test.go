package prediction

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAIScenario(t *testing.T) {
	got := Match(CandidateProfile{
		Education:       "Bachelor",
		YearsExperience: 6,
		Skills:          []string{"Python"},
		Interests:       []string{"AI"},
	})

	assert.Equal(t, "AI Engineer", got.PrimaryCareer)
	assert.Equal(t, 0.90, got.Confidence)
	assert.Equal(t, 90, got.SkillsMatch)
	assert.Equal(t, []AlternativeCareer{
		{Career: "Machine Learning Engineer", Confidence: 0.75},
		{Career: "NLP Engineer", Confidence: 0.65},
		{Career: "Computer Vision Engineer", Confidence: 0.55},
	}, got.AlternativeCareers)
	assert.Equal(t, FallbackNote, got.Note)
	require.Len(t, got.Recommendations, 5)
	assert.Equal(t, "Build a strong portfolio showcasing AI Engineer projects", got.Recommendations[0])
	assert.Equal(t, "Network with professionals in the AI Engineer field", got.Recommendations[2])
}

func TestMatchDefaultsWithoutKeywords(t *testing.T) {
	profiles := []CandidateProfile{
		{},
		{Skills: []string{"Cooking"}, Interests: []string{"Gardening"}},
		{Skills: []string{}, Interests: nil},
		{Skills: []string{"Excel", "Writing"}},
	}

	for _, p := range profiles {
		got := Match(p)
		assert.Equal(t, "Software Engineer", got.PrimaryCareer)
		assert.Equal(t, []AlternativeCareer{
			{Career: "Data Analyst", Confidence: 0.75},
			{Career: "Product Manager", Confidence: 0.65},
			{Career: "UX/UI Designer", Confidence: 0.55},
		}, got.AlternativeCareers)
	}
}

func TestMatchSubstringOverlap(t *testing.T) {
	// "database" also contains "data", so the data careers come first and
	// Data Engineer appears once even though two categories list it
	got := Match(CandidateProfile{Skills: []string{"Database administration"}})

	assert.Equal(t, "Data Scientist", got.PrimaryCareer)
	assert.Equal(t, "Data Analyst", got.AlternativeCareers[0].Career)
	assert.Equal(t, "Machine Learning Engineer", got.AlternativeCareers[1].Career)
	assert.Equal(t, "Data Engineer", got.AlternativeCareers[2].Career)
}

func TestMatchOrderFollowsTableNotInput(t *testing.T) {
	got := Match(CandidateProfile{
		Skills:    []string{"Web apps"},
		Interests: []string{"Software craftsmanship"},
	})
	assert.Equal(t, "Software Engineer", got.PrimaryCareer)
	assert.Equal(t, "Full Stack Developer", got.AlternativeCareers[0].Career)
}

func TestMatchShortList(t *testing.T) {
	// a single hit yields four unique careers, so three alternatives
	got := Match(CandidateProfile{Interests: []string{"MOBILE"}})
	assert.Equal(t, "Mobile Developer", got.PrimaryCareer)
	assert.Len(t, got.AlternativeCareers, 3)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		education string
		years     int
		want      float64
	}{
		{"High School", 0, 0.70},
		{"Bachelor", 0, 0.80},
		{"Master", 1, 0.80},
		{"PhD", 2, 0.85},
		{"bachelor", 2, 0.75},
		{"", 5, 0.80},
		{"Bachelor", 5, 0.90},
		{"PhD", 40, 0.90},
		{"Associate", 10, 0.80},
	}

	for _, tt := range tests {
		got := Match(CandidateProfile{Education: tt.education, YearsExperience: tt.years})
		assert.Equal(t, tt.want, got.Confidence, "%s/%d", tt.education, tt.years)
	}
}

func TestMatchProperties(t *testing.T) {
	skillSets := [][]string{
		nil,
		{"Go", "Kubernetes", "DevOps"},
		{"security", "web", "design", "ai", "data", "management"},
		{"Figma"},
		{"Swift", "mobile", "AI"},
	}
	educations := []string{"", "Bachelor", "Master", "PhD", "Bootcamp"}

	allowedAlt := map[float64]bool{0.75: true, 0.65: true, 0.55: true}

	for _, skills := range skillSets {
		for _, edu := range educations {
			for years := 0; years <= 8; years++ {
				p := CandidateProfile{Education: edu, YearsExperience: years, Skills: skills}
				got := Match(p)

				assert.LessOrEqual(t, len(got.AlternativeCareers), 3)
				for i, alt := range got.AlternativeCareers {
					assert.True(t, allowedAlt[alt.Confidence])
					if i > 0 {
						assert.Less(t, alt.Confidence, got.AlternativeCareers[i-1].Confidence)
					}
				}

				assert.GreaterOrEqual(t, got.Confidence, 0.70)
				assert.LessOrEqual(t, got.Confidence, 0.95)
				assert.Equal(t, got.Confidence, math.Round(got.Confidence*100)/100)
				assert.Equal(t, int(math.Floor(got.Confidence*100)), got.SkillsMatch)

				first, err := json.Marshal(got)
				require.NoError(t, err)
				second, err := json.Marshal(Match(p))
				require.NoError(t, err)
				assert.Equal(t, first, second)
			}
		}
	}
}

func TestMatchDoesNotMutateInput(t *testing.T) {
	skills := make([]string, 1, 4)
	skills[0] = "Data"
	interests := []string{"AI"}

	Match(CandidateProfile{Skills: skills, Interests: interests})

	assert.Equal(t, []string{"Data"}, skills)
	assert.Equal(t, "", skills[:2][1])
}
