// Package pgtest opens the integration test database. Tests using it are
// skipped unless TEST_DATABASE_URL points at a disposable Postgres.
package pgtest

import (
	"context"
	"os"
	"testing"

	"github.com/Abraxas-365/pathway/migrations"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const envKey = "TEST_DATABASE_URL"

// Open connects, applies the schema and closes the pool when the test ends
func Open(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv(envKey)
	if dsn == "" {
		t.Skip(envKey + " not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Apply(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// User inserts a throwaway user row and returns its id
func User(t *testing.T, db *sqlx.DB) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
		id, "Test User", id+"@example.com", "x",
	)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	t.Cleanup(func() { _, _ = db.Exec(`DELETE FROM users WHERE id = $1`, id) })
	return id
}
