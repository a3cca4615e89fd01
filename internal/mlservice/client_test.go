package mlservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var in prediction.CandidateProfile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{"Python"}, in.Skills)

		_, _ = w.Write([]byte(`{
			"primary_career": "Software Developer",
			"alternative_careers": [{"career": "Data Scientist", "confidence": 0.75}],
			"confidence": 0.85,
			"skills_match": 0.8,
			"recommendations": ["Get AWS or Azure certification"]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	got, err := c.Predict(context.Background(), prediction.CandidateProfile{
		Education: "Bachelor",
		Skills:    []string{"Python"},
		Interests: []string{"AI"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Software Developer", got.PrimaryCareer)
	assert.Equal(t, 0.85, got.Confidence)
	assert.Equal(t, 80, got.SkillsMatch)
	assert.Len(t, got.AlternativeCareers, 1)
	assert.Empty(t, got.Note)
}

func TestServiceErrorCarriesDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail", `{"detail":"Model not trained"}`, "Model not trained"},
		{"message", `{"message":"bad input"}`, "bad input"},
		{"empty", `oops`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).Predict(context.Background(), prediction.CandidateProfile{})
			var se *prediction.ServiceError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, http.StatusUnprocessableEntity, se.StatusCode)
			assert.Equal(t, tt.want, se.Message)
			assert.NotErrorIs(t, err, prediction.ErrServiceUnavailable)
		})
	}
}

func TestUnreachable(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewClient(url, time.Second).Predict(context.Background(), prediction.CandidateProfile{})
		assert.ErrorIs(t, err, prediction.ErrServiceUnavailable)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		_, err := NewClient(srv.URL, 50*time.Millisecond).Careers(context.Background())
		assert.ErrorIs(t, err, prediction.ErrServiceUnavailable)
	})
}

func TestCareersAndGeneratePlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/careers":
			_, _ = w.Write([]byte(`{"careers":["Software Developer","Data Scientist"]}`))
		case "/generate-path":
			var in learningpath.GenerateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(learningpath.Plan{
				CareerPath: in.CareerPath,
				Overview:   "remote",
				LearningPhases: []learningpath.Phase{
					{Phase: "One", Duration: "1 month", Topics: []string{"a"}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	catalog, err := c.Careers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Software Developer", "Data Scientist"}, catalog.Careers)

	plan, err := c.GeneratePlan(context.Background(), learningpath.GenerateRequest{CareerPath: "Data Scientist"})
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", plan.CareerPath)
	assert.Equal(t, []string{"One"}, plan.PhaseNames())

	var se *prediction.ServiceError
	assert.ErrorAs(t, c.Ping(context.Background()), &se)
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.8, 80},
		{1, 100},
		{0, 0},
		{1.5, 100},
		{1.9, 100},
		{2.0, 100},
		{2.5, 100},
		{3, 100},
		{-3, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, percentOf(tt.in), "percentOf(%v)", tt.in)
	}
}

func TestPredictSaturatesSkillsMatch(t *testing.T) {
	for _, score := range []float64{1.9, 2.0, 2.5} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"primary_career": "Software Developer",
				"confidence":     0.85,
				"skills_match":   score,
			})
		}))

		got, err := NewClient(srv.URL, time.Second).Predict(context.Background(), prediction.CandidateProfile{
			Education: "Bachelor",
			Skills:    []string{"Python"},
		})
		srv.Close()

		require.NoError(t, err)
		assert.Equal(t, 100, got.SkillsMatch, "skills_match %v", score)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL, time.Second).Ping(context.Background()))
}
