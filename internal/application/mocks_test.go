package application_test

import (
	"context"
	"errors"
	"sync"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

// mockAttemptLog implements driven.AttemptLog in memory.
type mockAttemptLog struct {
	mu        sync.Mutex
	records   []model.AttemptRecord
	recordErr error
	recentErr error
}

func (m *mockAttemptLog) Record(_ context.Context, rec model.AttemptRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockAttemptLog) Recent(_ context.Context, limit int) ([]model.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	out := make([]model.AttemptRecord, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *mockAttemptLog) RecentFor(_ context.Context, identifier string, limit int) ([]model.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	out := make([]model.AttemptRecord, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		if m.records[i].Identifier == identifier {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *mockAttemptLog) snapshot() []model.AttemptRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.AttemptRecord(nil), m.records...)
}

var errJournalDown = errors.New("journal unavailable")
