package prediction

import (
	"strings"
)

// FallbackNote marks predictions produced by Match rather than the ML service
const FallbackNote = "Prediction generated using local fallback algorithm"

type careerCategory struct {
	keyword string
	careers [4]string
}

// categories is scanned in order; a keyword hit appends all four careers
var categories = [...]careerCategory{
	{"software", [4]string{"Software Engineer", "Full Stack Developer", "Backend Developer", "Frontend Developer"}},
	{"data", [4]string{"Data Scientist", "Data Analyst", "Machine Learning Engineer", "Data Engineer"}},
	{"design", [4]string{"UX/UI Designer", "Product Designer", "Graphic Designer", "Web Designer"}},
	{"management", [4]string{"Product Manager", "Project Manager", "Business Analyst", "Scrum Master"}},
	{"security", [4]string{"Cybersecurity Analyst", "Security Engineer", "Penetration Tester", "Security Consultant"}},
	{"devops", [4]string{"DevOps Engineer", "Cloud Engineer", "Site Reliability Engineer", "Infrastructure Engineer"}},
	{"mobile", [4]string{"Mobile Developer", "iOS Developer", "Android Developer", "React Native Developer"}},
	{"ai", [4]string{"AI Engineer", "Machine Learning Engineer", "NLP Engineer", "Computer Vision Engineer"}},
	{"web", [4]string{"Web Developer", "Frontend Developer", "Full Stack Developer", "Web Designer"}},
	{"database", [4]string{"Database Administrator", "Data Engineer", "Database Developer", "Data Architect"}},
}

var defaultCareers = [...]string{"Software Engineer", "Data Analyst", "Product Manager", "UX/UI Designer"}

var recommendedDegrees = map[string]bool{
	"Bachelor": true,
	"Master":   true,
	"PhD":      true,
}

// confidence arithmetic runs in hundredths so rounding stays exact
const (
	baseConfidence     = 70
	degreeBonus        = 10
	experienceBonus    = 5
	maxConfidence      = 95
	maxAlternatives    = 3
	firstAltConfidence = 75
	altConfidenceStep  = 10
	minAltConfidence   = 55
	midCareerYears     = 2
	experiencedYears   = 5
	percent            = 100.0
)

// Match scores a profile by keyword containment. It never fails: a profile
// that hits no keyword gets the default careers.
//
// Containment is a plain substring test over the joined text, so
// "database" also hits "data" and careers may repeat across categories
// before de-duplication.
func Match(profile CandidateProfile) CareerPrediction {
	text := strings.ToLower(strings.Join(append(append([]string{}, profile.Skills...), profile.Interests...), " "))

	var matched []string
	for _, cat := range categories {
		if strings.Contains(text, cat.keyword) {
			matched = append(matched, cat.careers[:]...)
		}
	}
	if len(matched) == 0 {
		matched = append(matched, defaultCareers[:]...)
	}
	matched = dedupe(matched)

	primary := matched[0]

	rest := matched[1:]
	if len(rest) > maxAlternatives {
		rest = rest[:maxAlternatives]
	}
	alternatives := make([]AlternativeCareer, 0, len(rest))
	for i, career := range rest {
		alternatives = append(alternatives, AlternativeCareer{
			Career:     career,
			Confidence: float64(max(firstAltConfidence-altConfidenceStep*i, minAltConfidence)) / percent,
		})
	}

	score := confidenceScore(profile.Education, profile.YearsExperience)

	return CareerPrediction{
		PrimaryCareer:      primary,
		Confidence:         float64(score) / percent,
		AlternativeCareers: alternatives,
		SkillsMatch:        score,
		Recommendations:    recommendationsFor(primary),
		Note:               FallbackNote,
	}
}

// confidenceScore returns the primary confidence in hundredths
func confidenceScore(education string, years int) int {
	score := baseConfidence
	if recommendedDegrees[education] {
		score += degreeBonus
	}
	if years >= midCareerYears {
		score += experienceBonus
	}
	if years >= experiencedYears {
		score += experienceBonus
	}
	return min(score, maxConfidence)
}

func recommendationsFor(career string) []string {
	return []string{
		"Build a strong portfolio showcasing " + career + " projects",
		"Gain hands-on experience with industry-standard tools and technologies",
		"Network with professionals in the " + career + " field",
		"Consider obtaining relevant certifications to boost your credentials",
		"Stay updated with latest trends and best practices in the industry",
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
