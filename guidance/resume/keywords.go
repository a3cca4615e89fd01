package resume

import "strings"

var knownSkills = []string{"Python", "Java", "JavaScript", "SQL", "React", "AWS", "Docker", "Machine Learning"}

var (
	defaultSkills    = []string{"Programming", "Problem Solving"}
	defaultInterests = []string{"Technology", "Innovation"}
)

// ExtractKeywords detects known skills by case-insensitive substring.
// "Java" also matches any text containing "JavaScript".
func ExtractKeywords(text string) ParsedData {
	lower := strings.ToLower(text)

	var skills []string
	for _, skill := range knownSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	if len(skills) == 0 {
		skills = append([]string(nil), defaultSkills...)
	}

	return ParsedData{
		Skills:    skills,
		Interests: append([]string(nil), defaultInterests...),
	}
}
