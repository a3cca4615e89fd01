package learningpathapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/guidance/learningpath/learningpathsrv"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/Abraxas-365/pathway/pkg/iam/user"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	paths map[kernel.LearningPathID]*learningpath.LearningPath
	order []kernel.LearningPathID
}

func newMemRepo() *memRepo {
	return &memRepo{paths: map[kernel.LearningPathID]*learningpath.LearningPath{}}
}

func (m *memRepo) Create(_ context.Context, lp *learningpath.LearningPath) error {
	cp := *lp
	m.paths[lp.ID] = &cp
	m.order = append([]kernel.LearningPathID{lp.ID}, m.order...)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id kernel.LearningPathID, userID kernel.UserID) (*learningpath.LearningPath, error) {
	lp, ok := m.paths[id]
	if !ok || lp.UserID != userID {
		return nil, learningpath.ErrNotFound()
	}
	cp := *lp
	return &cp, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID kernel.UserID, limit int) ([]*learningpath.LearningPath, error) {
	var out []*learningpath.LearningPath
	for _, id := range m.order {
		if lp, ok := m.paths[id]; ok && lp.UserID == userID && len(out) < limit {
			out = append(out, lp)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateProgress(_ context.Context, lp *learningpath.LearningPath) error {
	cp := *lp
	m.paths[lp.ID] = &cp
	return nil
}

func (m *memRepo) Delete(_ context.Context, id kernel.LearningPathID, userID kernel.UserID) error {
	lp, ok := m.paths[id]
	if !ok || lp.UserID != userID {
		return learningpath.ErrNotFound()
	}
	delete(m.paths, id)
	return nil
}

type noActivity struct{}

func (noActivity) RecordLearningPath(context.Context, kernel.UserID, time.Time) error { return nil }

type users map[kernel.UserID]*user.User

func (u users) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	if found, ok := u[id]; ok {
		return found, nil
	}
	return nil, user.ErrUserNotFound()
}

type fixture struct {
	app   *fiber.App
	repo  *memRepo
	token string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens := auth.NewJWTService("secret", time.Hour, "pathway")
	known := users{"user-1": {ID: "user-1", Name: "Ada", Email: "ada@example.com", IsActive: true}}
	repo := newMemRepo()
	svc := learningpathsrv.NewLearningPathService(repo, nil, nil, noActivity{})

	app := fiber.New(fiber.Config{ErrorHandler: errx.FiberErrorHandler})
	RegisterRoutes(app, NewHandlers(svc), auth.NewAuthMiddleware(tokens, known))

	token, err := tokens.GenerateAccessToken("user-1")
	require.NoError(t, err)
	return &fixture{app: app, repo: repo, token: token}
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

func TestGeneratePath(t *testing.T) {
	f := newFixture(t)

	status, body := f.do(t, fiber.MethodPost, "/api/generate-path",
		`{"career_path":"Web Developer","current_skills":"HTML","experience_level":"intermediate","time_commitment":10}`, false)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Web Developer", body["career_path"])
	phases := body["learning_phases"].([]any)
	require.Len(t, phases, 2)
	assert.Equal(t, "Advanced Skills", phases[0].(map[string]any)["phase"])
	assert.NotContains(t, body, "generated_by")

	status, body = f.do(t, fiber.MethodPost, "/api/generate-path",
		`{"career_path":"Web Developer","experience_level":"beginner","time_commitment":"5"}`, false)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Please provide career_path, current_skills, experience_level, and time_commitment", body["message"])
}

func TestGeneratePathRejectsZeroCommitment(t *testing.T) {
	f := newFixture(t)

	for _, commitment := range []string{`0`, `"0"`, `""`} {
		payload := `{"career_path":"Web Developer","current_skills":"HTML","experience_level":"beginner","time_commitment":` + commitment + `}`
		status, body := f.do(t, fiber.MethodPost, "/api/generate-path", payload, false)
		assert.Equal(t, fiber.StatusBadRequest, status, commitment)
		assert.Equal(t, "Please provide career_path, current_skills, experience_level, and time_commitment", body["message"])
	}
}

func TestAIStatus(t *testing.T) {
	f := newFixture(t)

	status, body := f.do(t, fiber.MethodGet, "/api/ai/status", "", false)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["configured"])
	assert.Equal(t, false, body["working"])
}

func TestSavedPathLifecycle(t *testing.T) {
	f := newFixture(t)
	plan, err := json.Marshal(learningpath.Synthesize(learningpath.GenerateRequest{CareerPath: "Data Scientist", ExperienceLevel: "beginner"}))
	require.NoError(t, err)
	saveBody := `{"career_path":"Data Scientist","learning_path_data":` + string(plan) + `}`

	status, _ := f.do(t, fiber.MethodPost, "/api/save-learning-path", saveBody, false)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := f.do(t, fiber.MethodPost, "/api/save-learning-path", `{"career_path":"Data Scientist"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Please provide career_path and learning_path_data", body["message"])

	status, body = f.do(t, fiber.MethodPost, "/api/save-learning-path", saveBody, true)
	require.Equal(t, fiber.StatusCreated, status)
	id, _ := body["path_id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, float64(0), body["learning_path"].(map[string]any)["progress"])

	status, body = f.do(t, fiber.MethodPut, "/api/learning-path-history/"+id+"/progress",
		`{"completed_phases":["Foundation"]}`, true)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(33), body["progress"])

	status, body = f.do(t, fiber.MethodPut, "/api/learning-path-history/"+id+"/progress",
		`{"completed_phases":["Mastery"]}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, learningpath.CodeUnknownPhase, body["error"].(map[string]any)["code"])

	status, body = f.do(t, fiber.MethodGet, "/api/learning-path-history", "", true)
	require.Equal(t, fiber.StatusOK, status)
	paths := body["paths"].([]any)
	require.Len(t, paths, 1)
	item := paths[0].(map[string]any)
	assert.Equal(t, float64(33), item["progress"])
	assert.Equal(t, []any{"Foundation"}, item["completed_phases"])
	assert.Len(t, item["learning_phases"], 3)

	status, _ = f.do(t, fiber.MethodDelete, "/api/learning-path-history/unknown", "", true)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = f.do(t, fiber.MethodDelete, "/api/learning-path-history/"+id, "", true)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Learning path deleted successfully", body["message"])
	assert.Empty(t, f.repo.paths)
}
