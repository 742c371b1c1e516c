package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
)

// storedTimeLayout is fixed width so occurred_at sorts lexically.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Compile-time interface satisfaction check.
var _ driven.AttemptLog = (*AttemptRepo)(nil)

// AttemptRepo is the SQLite implementation of the AttemptLog port.
type AttemptRepo struct {
	db *DB
}

// NewAttemptRepo creates a new AttemptRepo.
func NewAttemptRepo(db *DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Record appends a resolved login attempt.
func (r *AttemptRepo) Record(ctx context.Context, rec model.AttemptRecord) error {
	const query = `
		INSERT INTO login_attempts (identifier, outcome, reason, remember, occurred_at)
		VALUES (?, ?, ?, ?, ?)`

	occurredAt := rec.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		rec.Identifier,
		string(rec.Outcome),
		rec.Reason,
		boolToInt(rec.Remember),
		occurredAt.UTC().Format(storedTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("record login attempt: %w", err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first.
func (r *AttemptRepo) Recent(ctx context.Context, limit int) ([]model.AttemptRecord, error) {
	if limit <= 0 {
		return []model.AttemptRecord{}, nil
	}

	const query = `
		SELECT id, identifier, outcome, reason, remember, occurred_at
		FROM login_attempts
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list login attempts: %w", err)
	}
	return scanAttempts(rows, limit)
}

// RecentFor returns up to limit attempts for one identifier, newest first.
func (r *AttemptRepo) RecentFor(ctx context.Context, identifier string, limit int) ([]model.AttemptRecord, error) {
	if limit <= 0 {
		return []model.AttemptRecord{}, nil
	}

	const query = `
		SELECT id, identifier, outcome, reason, remember, occurred_at
		FROM login_attempts
		WHERE identifier = ?
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, identifier, limit)
	if err != nil {
		return nil, fmt.Errorf("list login attempts for identifier: %w", err)
	}
	return scanAttempts(rows, limit)
}

func scanAttempts(rows *sql.Rows, limit int) ([]model.AttemptRecord, error) {
	defer rows.Close()

	records := make([]model.AttemptRecord, 0, limit)
	for rows.Next() {
		var (
			rec        model.AttemptRecord
			outcome    string
			remember   int
			occurredAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Identifier, &outcome, &rec.Reason, &remember, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan login attempt: %w", err)
		}

		rec.Outcome = model.AttemptOutcome(outcome)
		rec.Remember = remember != 0
		occurred, err := parseTime(occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse occurred_at for attempt %d: %w", rec.ID, err)
		}
		rec.OccurredAt = occurred

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate login attempts: %w", err)
	}

	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime tries the SQLite datetime formats the journal may contain.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
