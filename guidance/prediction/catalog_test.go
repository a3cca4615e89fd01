package prediction

import (
	"encoding/json"
	"testing"

	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCatalogIsACopy(t *testing.T) {
	c := FallbackCatalog()
	require.Len(t, c.Careers, 6)
	c.Careers[0] = "mutated"
	assert.Equal(t, "Software Engineer", FallbackCatalog().Careers[0])
}

func TestInfoFor(t *testing.T) {
	info, err := InfoFor("Data Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", info.Name)
	assert.Equal(t, "Explore exciting opportunities in Data Engineer.", info.Description)
	assert.Len(t, info.RequiredSkills, 3)

	_, err = InfoFor("  ")
	assert.ErrorIs(t, err, ErrCareerInfoNotFound())
}

func TestInfoDirectoryCard(t *testing.T) {
	dir, err := ParseInfoDirectory([]byte(`{"Data Scientist":{"name":"Data Scientist","growth_rate":"35% annually"}}`))
	require.NoError(t, err)

	card, err := dir.Card("Data Scientist")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Data Scientist","growth_rate":"35% annually"}`, string(card))

	card, err = dir.Card("Web Developer")
	require.NoError(t, err)
	var generic CareerInfo
	require.NoError(t, json.Unmarshal(card, &generic))
	assert.Equal(t, "Explore exciting opportunities in Web Developer.", generic.Description)

	var empty InfoDirectory
	_, err = empty.Card("")
	assert.ErrorIs(t, err, ErrCareerInfoNotFound())

	_, err = ParseInfoDirectory([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestPredictRequestProfile(t *testing.T) {
	years := kernel.FlexNumber(3.9)
	req := PredictRequest{
		Education:       "Master",
		YearsExperience: &years,
		Skills:          []string{"Go"},
		Interests:       []string{"Cloud"},
	}
	p := req.Profile()
	assert.Equal(t, 3, p.YearsExperience)
	assert.Equal(t, []string{"Go"}, p.Skills)
	assert.NotNil(t, p.Certifications)
}
