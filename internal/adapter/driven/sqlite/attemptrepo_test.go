package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

func TestAttemptRepo_RecordAndRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttemptRepo(db)
	ctx := context.Background()

	at := time.Date(2026, 10, 19, 9, 0, 1, 500_000_000, time.UTC)
	err := repo.Record(ctx, model.AttemptRecord{
		Identifier: "&lt;script&gt;",
		Outcome:    model.AttemptOutcomeSucceeded,
		Remember:   true,
		OccurredAt: at,
	})
	require.NoError(t, err)

	records, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.NotZero(t, got.ID)
	assert.Equal(t, "&lt;script&gt;", got.Identifier)
	assert.Equal(t, model.AttemptOutcomeSucceeded, got.Outcome)
	assert.True(t, got.Remember)
	assert.Empty(t, got.Reason)
	assert.True(t, at.Equal(got.OccurredAt))
}

func TestAttemptRepo_RecentNewestFirstAndLimited(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttemptRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, repo.Record(ctx, model.AttemptRecord{
			Identifier: "faculty0" + string(rune('1'+i)),
			Outcome:    model.AttemptOutcomeFailed,
			Reason:     "identifier and password are required",
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "faculty05", records[0].Identifier)
	assert.Equal(t, "faculty04", records[1].Identifier)
	assert.Equal(t, "faculty03", records[2].Identifier)
	assert.Equal(t, "identifier and password are required", records[0].Reason)
	assert.False(t, records[0].Remember)
}

func TestAttemptRepo_RecentEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttemptRepo(db)

	records, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = repo.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttemptRepo_RecentForFiltersByIdentifier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttemptRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	entries := []string{"jdoe", "asmith", "jdoe", "asmith", "jdoe"}
	for i, identifier := range entries {
		require.NoError(t, repo.Record(ctx, model.AttemptRecord{
			Identifier: identifier,
			Outcome:    model.AttemptOutcomeSucceeded,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := repo.RecentFor(ctx, "jdoe", 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, "jdoe", rec.Identifier)
	}
	assert.True(t, records[0].OccurredAt.Equal(base.Add(4*time.Minute)))
	assert.True(t, records[2].OccurredAt.Equal(base))

	records, err = repo.RecentFor(ctx, "jdoe", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.RecentFor(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = repo.RecentFor(ctx, "jdoe", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttemptRepo_RejectsUnknownOutcome(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttemptRepo(db)

	err := repo.Record(context.Background(), model.AttemptRecord{
		Identifier: "x",
		Outcome:    model.AttemptOutcomeAbandoned,
		OccurredAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	// setupTestDB already migrated once.
	assert.NoError(t, RunMigrations(db.Writer))
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2026-10-19T09:00:00Z", want: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
		{in: "2026-10-19T09:00:00.25Z", want: time.Date(2026, 10, 19, 9, 0, 0, 250_000_000, time.UTC)},
		{in: "2026-10-19 09:00:00", want: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
		{in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestNewDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "attempts.db")

	db, err := NewDB(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, path, db.Path())
	assert.FileExists(t, path)
}
