package pathgen

import (
	"fmt"
	"strings"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
)

const systemPrompt = `You are an expert career coach specializing in creating personalized learning paths. You provide detailed, actionable guidance in valid JSON format only.`

const planSchema = `{
  "overview": "A brief overview of the learning path (2-3 sentences)",
  "learning_phases": [
    {
      "phase": "Phase name (e.g., Foundation, Intermediate, Advanced)",
      "duration": "Estimated duration (e.g., 2-3 months)",
      "topics": ["Topic 1", "Topic 2", "Topic 3"]
    }
  ],
  "skills_to_acquire": ["Skill 1", "Skill 2", "Skill 3", "Skill 4", "Skill 5"],
  "certifications": ["Relevant certification 1", "Relevant certification 2"],
  "recommended_resources": [
    {
      "title": "Resource name",
      "type": "Book/Course/Tutorial/Documentation",
      "url": "URL if available or 'Search online'",
      "description": "Brief description"
    }
  ],
  "job_search_tips": ["Tip 1", "Tip 2", "Tip 3", "Tip 4"],
  "salary_insights": {
    "entry": "Entry level salary range",
    "mid": "Mid level salary range",
    "senior": "Senior level salary range"
  },
  "milestones": [
    {
      "title": "Milestone name",
      "timeframe": "When to achieve this",
      "description": "What you should accomplish"
    }
  ]
}`

func userPrompt(req learningpath.GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a comprehensive, personalized learning path for someone who wants to pursue a career as a %s.\n\n", req.CareerPath)
	b.WriteString("Here are the person's details:\n")
	fmt.Fprintf(&b, "- Career Goal: %s\n", req.CareerPath)
	fmt.Fprintf(&b, "- Current Skills: %s\n", strings.Join(req.CurrentSkills, ", "))
	fmt.Fprintf(&b, "- Experience Level: %s\n", req.ExperienceLevel)
	fmt.Fprintf(&b, "- Time Commitment: %s hours per week\n", req.TimeCommitment)
	fmt.Fprintf(&b, "- Learning Style: %s\n\n", req.LearningStyle)
	b.WriteString("Respond with a detailed learning path in the following JSON format:\n")
	b.WriteString(planSchema)
	b.WriteString("\n\nMatch the depth to their experience level and time commitment: beginners need more foundational topics, ")
	b.WriteString("more weekly hours allow a more intensive plan. Tailor resource suggestions to their learning style.\n\n")
	b.WriteString("Return ONLY valid JSON, no additional text.")
	return b.String()
}
