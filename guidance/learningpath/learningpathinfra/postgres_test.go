package learningpathinfra

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/internal/pgtest"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePath(userID kernel.UserID, at time.Time) *learningpath.LearningPath {
	return &learningpath.LearningPath{
		ID:              kernel.NewLearningPathID(uuid.NewString()),
		UserID:          userID,
		CareerPath:      "Data Scientist",
		Plan:            learningpath.Synthesize(learningpath.GenerateRequest{CareerPath: "Data Scientist", ExperienceLevel: "beginner"}),
		InputData:       json.RawMessage(`{"experience_level":"beginner"}`),
		CompletedPhases: []string{},
		CreatedAt:       at,
		UpdatedAt:       at,
	}
}

func TestPathRowRoundTrip(t *testing.T) {
	lp := samplePath("u1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	lp.CompletedPhases = []string{"Foundation"}
	lp.Progress = 33

	row, err := toRow(lp)
	require.NoError(t, err)
	got, err := row.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, lp, got)
}

func TestPathRowWithoutInput(t *testing.T) {
	lp := samplePath("u1", time.Now().UTC())
	lp.InputData = nil
	lp.CompletedPhases = nil

	row, err := toRow(lp)
	require.NoError(t, err)
	assert.Nil(t, row.InputData)
	assert.JSONEq(t, `[]`, string(row.CompletedPhases))
}

func TestPostgresLearningPathRepository(t *testing.T) {
	db := pgtest.Open(t)
	owner := kernel.NewUserID(pgtest.User(t, db))
	other := kernel.NewUserID(pgtest.User(t, db))
	repo := NewPostgresLearningPathRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	first := samplePath(owner, base)
	second := samplePath(owner, base.Add(time.Second))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	paths, err := repo.ListByUser(ctx, owner, 50)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, second.ID, paths[0].ID)
	assert.Equal(t, first.Plan.LearningPhases, paths[1].Plan.LearningPhases)

	_, err = repo.GetByID(ctx, first.ID, other)
	assert.ErrorIs(t, err, learningpath.ErrNotFound())

	got, err := repo.GetByID(ctx, first.ID, owner)
	require.NoError(t, err)
	require.NoError(t, got.SetCompletedPhases([]string{"Foundation", "Advanced"}))
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.UpdateProgress(ctx, got))

	got, err = repo.GetByID(ctx, first.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, 67, got.Progress)
	assert.Equal(t, []string{"Foundation", "Advanced"}, got.CompletedPhases)

	assert.ErrorIs(t, repo.Delete(ctx, first.ID, other), learningpath.ErrNotFound())
	require.NoError(t, repo.Delete(ctx, first.ID, owner))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID, owner), learningpath.ErrNotFound())
}
