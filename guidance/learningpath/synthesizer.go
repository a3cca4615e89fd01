package learningpath

import "github.com/Abraxas-365/pathway/pkg/kernel"

var (
	beginnerPhases = []Phase{
		{Phase: "Foundation", Duration: "2-3 months", Topics: []string{"Basic concepts", "Fundamentals", "Introduction to tools"}},
		{Phase: "Intermediate", Duration: "3-4 months", Topics: []string{"Advanced concepts", "Practical projects", "Best practices"}},
		{Phase: "Advanced", Duration: "2-3 months", Topics: []string{"Expert-level skills", "Real-world projects", "Industry standards"}},
	}
	intermediatePhases = []Phase{
		{Phase: "Advanced Skills", Duration: "2-3 months", Topics: []string{"Advanced techniques", "Complex projects", "Industry best practices"}},
		{Phase: "Specialization", Duration: "3-4 months", Topics: []string{"Specialized knowledge", "Expert-level projects", "Leadership skills"}},
	}
	expertPhases = []Phase{
		{Phase: "Expert Level", Duration: "2-3 months", Topics: []string{"Master-level concepts", "Complex projects", "Mentoring others"}},
	}

	skillsToAcquire = []string{"Technical expertise", "Problem-solving", "Communication", "Team collaboration"}
	certifications  = []string{"Industry-recognized certification", "Advanced specialization certificate"}
	jobSearchTips   = []string{
		"Build a strong portfolio",
		"Network with industry professionals",
		"Prepare for technical interviews",
		"Stay updated with industry trends",
	}
	salaryInsights = SalaryInsights{
		Entry:  "$50,000 - $70,000",
		Mid:    "$70,000 - $100,000",
		Senior: "$100,000 - $150,000+",
	}
)

// Synthesize builds a template plan from the experience level alone.
// Only "beginner" and "intermediate" are recognized; anything else gets the
// expert track. Current skills, time commitment and learning style are not used.
func Synthesize(req GenerateRequest) Plan {
	var phases []Phase
	switch kernel.ExperienceLevel(req.ExperienceLevel) {
	case kernel.ExperienceBeginner:
		phases = beginnerPhases
	case kernel.ExperienceIntermediate:
		phases = intermediatePhases
	default:
		phases = expertPhases
	}

	return Plan{
		CareerPath: req.CareerPath,
		Overview: "A comprehensive learning path for " + req.CareerPath + " designed for " + req.ExperienceLevel +
			" level learners. This path will help you build the necessary skills and knowledge to succeed in this field.",
		LearningPhases:  clonePhases(phases),
		SkillsToAcquire: clone(skillsToAcquire),
		Certifications:  clone(certifications),
		JobSearchTips:   clone(jobSearchTips),
		SalaryInsights:  salaryInsights,
	}
}

func clonePhases(in []Phase) []Phase {
	out := make([]Phase, len(in))
	for i, p := range in {
		out[i] = Phase{Phase: p.Phase, Duration: p.Duration, Topics: clone(p.Topics)}
	}
	return out
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}
