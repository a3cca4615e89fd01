package prediction

import (
	"encoding/json"
	"fmt"
	"strings"
)

var fallbackCareers = []string{
	"Software Engineer",
	"Data Scientist",
	"Product Manager",
	"UX/UI Designer",
	"DevOps Engineer",
	"Cybersecurity Analyst",
}

// FallbackCatalog is served when the prediction service cannot list its careers
func FallbackCatalog() *Catalog {
	return &Catalog{Careers: append([]string(nil), fallbackCareers...)}
}

// InfoFor returns the generic information card for a career
func InfoFor(name string) (CareerInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CareerInfo{}, ErrCareerInfoNotFound()
	}
	return CareerInfo{
		Name:           name,
		Description:    "Explore exciting opportunities in " + name + ".",
		AvgSalary:      "$60,000 - $120,000",
		GrowthRate:     "10-15% annually",
		RequiredSkills: []string{"Communication", "Problem Solving", "Technical Skills"},
		Education:      "Bachelor's degree preferred",
	}, nil
}

// InfoDirectory holds curated career cards keyed by exact career name.
// Cards are served as stored.
type InfoDirectory map[string]json.RawMessage

// ParseInfoDirectory decodes a JSON object mapping career names to cards
func ParseInfoDirectory(data []byte) (InfoDirectory, error) {
	var d InfoDirectory
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse career info: %w", err)
	}
	return d, nil
}

// Card returns the curated card for name, or the generic card when none is stored
func (d InfoDirectory) Card(name string) (json.RawMessage, error) {
	if card, ok := d[name]; ok {
		return card, nil
	}
	info, err := InfoFor(name)
	if err != nil {
		return nil, err
	}
	return json.Marshal(info)
}
