package migrations

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionsAreOrdered(t *testing.T) {
	versions, err := Versions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "0001_init.sql", versions[0])
}

func TestApplyIsIdempotent(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Apply(ctx, db))
	require.NoError(t, Apply(ctx, db))

	var tables int
	require.NoError(t, db.GetContext(ctx, &tables, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_name IN ('users','user_stats','career_history','learning_paths','resumes')
	`))
	assert.Equal(t, 5, tables)
}
