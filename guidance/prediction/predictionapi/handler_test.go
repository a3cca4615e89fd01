package predictionapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/guidance/prediction/predictionsrv"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/Abraxas-365/pathway/pkg/iam/user"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offlinePredictor struct{}

func (offlinePredictor) Predict(context.Context, prediction.CandidateProfile) (*prediction.CareerPrediction, error) {
	return nil, prediction.ErrServiceUnavailable
}

func (offlinePredictor) Careers(context.Context) (*prediction.Catalog, error) {
	return nil, prediction.ErrServiceUnavailable
}

type memHistory struct {
	items []*prediction.CareerHistory
}

func (m *memHistory) Create(_ context.Context, h *prediction.CareerHistory) error {
	m.items = append([]*prediction.CareerHistory{h}, m.items...)
	return nil
}

func (m *memHistory) ListByUser(_ context.Context, userID kernel.UserID, limit int) ([]*prediction.CareerHistory, error) {
	var out []*prediction.CareerHistory
	for _, h := range m.items {
		if h.UserID == userID && len(out) < limit {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memHistory) Delete(_ context.Context, id kernel.CareerHistoryID, userID kernel.UserID) error {
	for i, h := range m.items {
		if h.ID == id && h.UserID == userID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return prediction.ErrHistoryNotFound()
}

type noActivity struct{}

func (noActivity) RecordAssessment(context.Context, kernel.UserID, time.Time) error { return nil }

type users map[kernel.UserID]*user.User

func (u users) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	if found, ok := u[id]; ok {
		return found, nil
	}
	return nil, user.ErrUserNotFound()
}

type fixture struct {
	app     *fiber.App
	history *memHistory
	token   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens := auth.NewJWTService("secret", time.Hour, "pathway")
	known := users{"user-1": {ID: "user-1", Name: "Ada", Email: "ada@example.com", IsActive: true}}
	history := &memHistory{}
	svc := predictionsrv.NewPredictionService(history, offlinePredictor{}, nil, noActivity{}, time.Minute).
		WithInfoDirectory(prediction.InfoDirectory{
			"Data Engineer": json.RawMessage(`{"name":"Data Engineer","avg_salary":"$95,000 - $150,000","required_skills":["SQL","Spark"]}`),
		})

	app := fiber.New(fiber.Config{ErrorHandler: errx.FiberErrorHandler})
	RegisterRoutes(app, NewHandlers(svc), auth.NewAuthMiddleware(tokens, known))

	token, err := tokens.GenerateAccessToken("user-1")
	require.NoError(t, err)
	return &fixture{app: app, history: history, token: token}
}

func (f *fixture) do(t *testing.T, method, path, body string, authed bool) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if authed {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+f.token)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

const aiProfile = `{"education":"Bachelor","years_experience":6,"skills":["Python"],"interests":"AI"}`

func TestPredictAnonymous(t *testing.T) {
	f := newFixture(t)

	status, body := f.do(t, fiber.MethodPost, "/api/predict", aiProfile, false)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "AI Engineer", body["primary_career"])
	assert.Equal(t, 0.9, body["confidence"])
	assert.Equal(t, float64(90), body["skills_match"])
	assert.Len(t, body["alternative_careers"], 3)
	assert.Equal(t, prediction.FallbackNote, body["note"])
	assert.Empty(t, f.history.items)
}

func TestPredictAcceptsNumericStringYears(t *testing.T) {
	f := newFixture(t)

	payload := `{"education":"Bachelor","years_experience":"6","skills":["Python"],"interests":"AI"}`
	status, body := f.do(t, fiber.MethodPost, "/api/predict", payload, false)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "AI Engineer", body["primary_career"])
	assert.Equal(t, 0.9, body["confidence"])
}

func TestPredictValidation(t *testing.T) {
	f := newFixture(t)

	for name, payload := range map[string]string{
		"missing years":   `{"education":"Bachelor","skills":["Go"],"interests":["web"]}`,
		"negative years":  `{"education":"Bachelor","years_experience":-1,"skills":["Go"],"interests":["web"]}`,
		"non numeric":     `{"education":"Bachelor","years_experience":"lots","skills":["Go"],"interests":["web"]}`,
		"null years":      `{"education":"Bachelor","years_experience":null,"skills":["Go"],"interests":["web"]}`,
		"empty skills":    `{"education":"Bachelor","years_experience":1,"skills":"","interests":["web"]}`,
		"missing edu":     `{"years_experience":1,"skills":["Go"],"interests":["web"]}`,
		"malformed json":  `{"education":`,
		"wrong list type": `{"education":"Bachelor","years_experience":1,"skills":5,"interests":["web"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			status, body := f.do(t, fiber.MethodPost, "/api/predict", payload, false)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "Please provide education, years_experience, skills, and interests", body["message"])
		})
	}
}

func TestHistoryLifecycle(t *testing.T) {
	f := newFixture(t)

	status, _ := f.do(t, fiber.MethodGet, "/api/career-history", "", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = f.do(t, fiber.MethodPost, "/api/predict", aiProfile, true)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, f.history.items, 1)

	status, body := f.do(t, fiber.MethodGet, "/api/career-history", "", true)
	require.Equal(t, fiber.StatusOK, status)
	items := body["history"].([]any)
	require.Len(t, items, 1)
	entry := items[0].(map[string]any)
	assert.Equal(t, "AI Engineer", entry["career_path"])
	assert.NotContains(t, entry, "user_id")

	status, body = f.do(t, fiber.MethodDelete, "/api/career-history/missing", "", true)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Career history not found", body["message"])

	id := f.history.items[0].ID.String()
	status, body = f.do(t, fiber.MethodDelete, "/api/career-history/"+id, "", true)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Career history deleted successfully", body["message"])
	assert.Empty(t, f.history.items)
}

func TestCareersFallback(t *testing.T) {
	f := newFixture(t)

	status, body := f.do(t, fiber.MethodGet, "/api/careers", "", false)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["careers"], 6)
}

func TestCareerInfo(t *testing.T) {
	f := newFixture(t)

	status, body := f.do(t, fiber.MethodGet, "/api/career-info/Data%20Scientist", "", false)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Data Scientist", body["name"])
	assert.Equal(t, "Explore exciting opportunities in Data Scientist.", body["description"])
}

func TestCareerInfoPrefersCuratedCard(t *testing.T) {
	f := newFixture(t)

	status, body := f.do(t, fiber.MethodGet, "/api/career-info/Data%20Engineer", "", false)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "$95,000 - $150,000", body["avg_salary"])
	assert.Equal(t, []any{"SQL", "Spark"}, body["required_skills"])
	assert.NotContains(t, body, "description")
}
