package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/smartcampus/internal/adapter/driving/http"
	"github.com/ericfisherdev/smartcampus/internal/application"
	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockAttemptLog struct {
	err error
}

func (m *mockAttemptLog) Record(_ context.Context, _ model.AttemptRecord) error { return m.err }
func (m *mockAttemptLog) Recent(_ context.Context, _ int) ([]model.AttemptRecord, error) {
	return nil, m.err
}
func (m *mockAttemptLog) RecentFor(_ context.Context, _ string, _ int) ([]model.AttemptRecord, error) {
	return nil, m.err
}

// --- Test helpers ---

var testQuotes = []model.Quote{
	{Text: "Learn every day.", Author: "A"},
	{Text: "Teach to learn twice.", Author: "B"},
}

func setupMux(journal driven.AttemptLog, loggedIn ...string) http.Handler {
	clk := testclock.NewClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	rotator := application.NewQuoteRotator(testQuotes, clk, application.DefaultQuoteInterval)
	shell := application.NewShell(clk, application.DefaultVisitorTTL)
	for _, visitorID := range loggedIn {
		shell.MarkLoggedIn(visitorID, "faculty")
	}
	healthSvc := application.NewHealthService(journal, rotator, shell)

	logger := slog.New(slog.DiscardHandler)
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(healthSvc, logger))
	return httphandler.ApplyMiddleware(mux, logger)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	err := json.NewDecoder(rec.Body).Decode(v)
	require.NoError(t, err)
}

// --- Tests ---

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		journal     driven.AttemptLog
		wantStatus  int
		wantBody    string
		wantJournal bool
	}{
		{name: "journal disabled", journal: nil, wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "journal healthy", journal: &mockAttemptLog{}, wantStatus: http.StatusOK, wantBody: "ok", wantJournal: true},
		{
			name:        "journal unreadable",
			journal:     &mockAttemptLog{err: errors.New("disk I/O error")},
			wantStatus:  http.StatusServiceUnavailable,
			wantBody:    "degraded",
			wantJournal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupMux(tt.journal)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]any
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.wantBody, resp["status"])
			assert.NotEmpty(t, resp["time"])
			assert.Equal(t, tt.wantJournal, resp["journal_enabled"])
			assert.InDelta(t, float64(len(testQuotes)), resp["quote_count"], 0)
			assert.InDelta(t, 0, resp["active_visitors"], 0)
		})
	}
}

func TestHealth_ActiveVisitors(t *testing.T) {
	mux := setupMux(nil, "visitor-a", "visitor-b")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	decodeJSON(t, rec, &resp)
	assert.InDelta(t, 2, resp["active_visitors"], 0)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantStatus    int
		wantSanitized string
		wantError     string
	}{
		{name: "markup", body: `{"value":"<script>"}`, wantStatus: http.StatusOK, wantSanitized: "&lt;script&gt;"},
		{name: "quotes", body: `{"value":"a\"b'c"}`, wantStatus: http.StatusOK, wantSanitized: "a&quot;b&#039;c"},
		{name: "ampersand first", body: `{"value":"&lt;"}`, wantStatus: http.StatusOK, wantSanitized: "&amp;lt;"},
		{name: "empty", body: `{"value":""}`, wantStatus: http.StatusOK, wantSanitized: ""},
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
		{name: "oversized", body: `{"value":"` + strings.Repeat("a", 70_000) + `"}`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupMux(nil)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sanitize", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]any
			decodeJSON(t, rec, &resp)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp["error"])
				return
			}
			assert.Equal(t, tt.wantSanitized, resp["sanitized"])
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := httphandler.ApplyMiddleware(mux, logger)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]any
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "internal server error", resp["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupMux(nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sanitize", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
