package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

// setupTestDB opens a migrated journal in a fresh temp directory. A real file
// is used so the WAL pragmas behave as they do in production.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "journal", "attempts.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := RunMigrations(db.Writer); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}
