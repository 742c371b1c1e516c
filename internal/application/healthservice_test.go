package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/smartcampus/internal/application"
	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

func TestHealthService_Check(t *testing.T) {
	clk := testclock.NewClock(time.Time{})
	rotator := application.NewQuoteRotator(testQuotes, clk, time.Second)
	shell := application.NewShell(clk, time.Hour)
	shell.MarkLoggedIn("visitor-1", "jdoe")

	tests := []struct {
		name        string
		journal     *mockAttemptLog
		wantStatus  model.HealthStatus
		wantJournal bool
		wantErr     bool
	}{
		{
			name:       "journal disabled",
			journal:    nil,
			wantStatus: model.HealthStatusOK,
		},
		{
			name:        "journal readable",
			journal:     &mockAttemptLog{},
			wantStatus:  model.HealthStatusOK,
			wantJournal: true,
		},
		{
			name:        "journal failing",
			journal:     &mockAttemptLog{recentErr: errJournalDown},
			wantStatus:  model.HealthStatusDegraded,
			wantJournal: true,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svc *application.HealthService
			if tt.journal != nil {
				svc = application.NewHealthService(tt.journal, rotator, shell)
			} else {
				svc = application.NewHealthService(nil, rotator, shell)
			}

			health, err := svc.Check(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Equal(t, tt.wantJournal, health.JournalEnabled)
			assert.Equal(t, len(testQuotes), health.QuoteCount)
			assert.Equal(t, 1, health.ActiveVisitors)
		})
	}
}

func TestHealthService_Check_WithoutShell(t *testing.T) {
	rotator := application.NewQuoteRotator(testQuotes, testclock.NewClock(time.Time{}), time.Second)
	svc := application.NewHealthService(nil, rotator, nil)

	health, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.Zero(t, health.ActiveVisitors)
}
