package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/juju/clock"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/smartcampus/internal/application"
	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
)

const (
	testVisitor = "6f1c2d4e-8a7b-4c3d-9e0f-1a2b3c4d5e6f"
	testCSRF    = "test-csrf-token"
)

var handlerQuotes = []model.Quote{
	{Text: "Learn **every** day.", Author: "First Author"},
	{Text: "Teach to learn twice.", Author: "Second Author"},
}

// memJournal implements driven.AttemptLog in memory.
type memJournal struct {
	mu      sync.Mutex
	records []model.AttemptRecord
}

func (m *memJournal) Record(_ context.Context, rec model.AttemptRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *memJournal) Recent(_ context.Context, limit int) ([]model.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.AttemptRecord, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *memJournal) RecentFor(_ context.Context, identifier string, limit int) ([]model.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.AttemptRecord, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		if m.records[i].Identifier == identifier {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *memJournal) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type testEnv struct {
	mux     *http.ServeMux
	shell   *application.Shell
	rotator *application.QuoteRotator
}

func newTestEnv(t *testing.T, journal driven.AttemptLog, opts Options) *testEnv {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	clk := testclock.NewClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

	shell := application.NewShell(clk, application.DefaultVisitorTTL)
	rotator := application.NewQuoteRotator(handlerQuotes, clk, application.DefaultQuoteInterval)
	// The login delay runs on the wall clock so requests resolve on their own.
	loginSvc := application.NewLoginService(clock.WallClock, time.Millisecond, journal, logger)

	h := NewHandler(shell, loginSvc, rotator, journal, clk, opts, logger)
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)

	return &testEnv{mux: mux, shell: shell, rotator: rotator}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func getRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: visitorCookieName, Value: testVisitor})
	return req
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: visitorCookieName, Value: testVisitor})
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: testCSRF})
	return req
}

func loginValues(identifier, secret string) url.Values {
	return url.Values{
		csrfFormField: {testCSRF},
		"identifier":  {identifier},
		"secret":      {secret},
		"remember":    {"on"},
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestPage_Landing(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome to Smart Campus")
	assert.Contains(t, body, `href="/faculty-login"`)
	assert.Contains(t, body, `href="/student-login"`)
	assert.Contains(t, body, "<p>Learn <strong>every</strong> day.</p>")
	assert.Contains(t, body, `data-ws="/ws/quotes"`)
	assert.Contains(t, body, "&copy; 2026")

	cookie := findCookie(rec, visitorCookieName)
	require.NotNil(t, cookie, "first visit issues a visitor cookie")
	assert.True(t, cookie.HttpOnly)
}

func TestPage_KeepsValidVisitorCookie(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	rec := env.do(getRequest("/"))

	assert.Nil(t, findCookie(rec, visitorCookieName))
}

func TestPage_FacultyLoginIssuesCSRFToken(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	rec := env.do(getRequest("/faculty-login"))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, csrfCookieName)
	require.NotNil(t, cookie)
	assert.Len(t, cookie.Value, csrfTokenBytes*2)
	assert.Contains(t, rec.Body.String(), `value="`+cookie.Value+`"`)
	assert.Contains(t, rec.Body.String(), `id="login-form"`)
	assert.Contains(t, rec.Body.String(), "Sign In")
}

func TestPage_DashboardRedirectsWhenLoggedOut(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	rec := env.do(getRequest("/faculty-dashboard"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/faculty-login", rec.Header().Get("Location"))
}

func TestPage_NotFound(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	for _, path := range []string{"/student-login", "/faculty-login/extra", "/nope"} {
		t.Run(path, func(t *testing.T) {
			rec := env.do(getRequest(path))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Page not found")
		})
	}
}

func TestSubmitLogin_SuccessRedirectsToDashboard(t *testing.T) {
	journal := &memJournal{}
	env := newTestEnv(t, journal, Options{})

	rec := env.do(postForm("/faculty-login", loginValues("<b>prof</b>", "pw")))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/faculty-dashboard", rec.Header().Get("Location"))
	assert.True(t, env.shell.LoggedIn(testVisitor))
	assert.Equal(t, "&lt;b&gt;prof&lt;/b&gt;", env.shell.Identifier(testVisitor))
	assert.Equal(t, 1, journal.len())

	dash := env.do(getRequest("/faculty-dashboard"))
	assert.Equal(t, http.StatusOK, dash.Code)
	body := dash.Body.String()
	assert.Contains(t, body, "Welcome, <strong>&lt;b&gt;prof&lt;/b&gt;</strong>")
	assert.NotContains(t, body, "<b>prof</b>")
	assert.NotContains(t, body, "&amp;lt;")
	assert.Contains(t, body, "Recent sign-in activity")
	assert.Contains(t, body, `action="/logout"`)
}

func TestDashboard_ListsOnlyOwnAttempts(t *testing.T) {
	journal := &memJournal{}
	env := newTestEnv(t, journal, Options{})

	require.NoError(t, journal.Record(context.Background(), model.AttemptRecord{
		Identifier: "intruder",
		Outcome:    model.AttemptOutcomeFailed,
		Reason:     "identifier and password are required",
		OccurredAt: time.Date(2026, 10, 19, 8, 59, 0, 0, time.UTC),
	}))

	rec := env.do(postForm("/faculty-login", loginValues("jdoe", "pw")))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	dash := env.do(getRequest("/faculty-dashboard"))
	require.Equal(t, http.StatusOK, dash.Code)
	body := dash.Body.String()
	assert.Contains(t, body, "<td>jdoe</td>")
	assert.NotContains(t, body, "intruder")
}

func TestSubmitLogin_MissingCredentialsStaysOnForm(t *testing.T) {
	journal := &memJournal{}
	env := newTestEnv(t, journal, Options{})

	rec := env.do(postForm("/faculty-login", loginValues("faculty01", "")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `id="login-form"`)
	assert.Contains(t, rec.Body.String(), `value="faculty01"`)
	assert.NotContains(t, rec.Body.String(), "form-error", "failure is silent by default")
	assert.False(t, env.shell.LoggedIn(testVisitor))
	assert.Equal(t, 1, journal.len())
}

func TestSubmitLogin_ShowsErrorWhenEnabled(t *testing.T) {
	env := newTestEnv(t, nil, Options{ShowLoginErrors: true})

	rec := env.do(postForm("/faculty-login", loginValues("", "")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), loginErrorMessage)
}

func TestSubmitLogin_RejectsBadCSRF(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	values := loginValues("faculty01", "pw")
	values.Set(csrfFormField, "forged")
	rec := env.do(postForm("/faculty-login", values))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, env.shell.LoggedIn(testVisitor))
}

func TestSubmitLogin_RejectsMissingCSRFCookie(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	req := httptest.NewRequest(http.MethodPost, "/faculty-login",
		strings.NewReader(loginValues("faculty01", "pw").Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := env.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitLogin_AbandonedWhenRequestCanceled(t *testing.T) {
	journal := &memJournal{}
	env := newTestEnv(t, journal, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := env.do(postForm("/faculty-login", loginValues("faculty01", "pw")).WithContext(ctx))

	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Location"))
	assert.False(t, env.shell.LoggedIn(testVisitor))
	assert.Zero(t, journal.len())
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, nil, Options{})
	env.shell.MarkLoggedIn(testVisitor, "faculty01")

	rec := env.do(postForm("/logout", url.Values{csrfFormField: {testCSRF}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.False(t, env.shell.LoggedIn(testVisitor))
}

func TestLogout_RejectsBadCSRF(t *testing.T) {
	env := newTestEnv(t, nil, Options{})
	env.shell.MarkLoggedIn(testVisitor, "faculty01")

	rec := env.do(postForm("/logout", url.Values{csrfFormField: {"forged"}}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, env.shell.LoggedIn(testVisitor))
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t, nil, Options{})

	for _, name := range []string{"portal.css", "login.js", "ticker.js"} {
		t.Run(name, func(t *testing.T) {
			rec := env.do(httptest.NewRequest(http.MethodGet, "/static/"+name, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Body.String())
		})
	}
}

func TestQuotes_StreamsRotations(t *testing.T) {
	env := newTestEnv(t, nil, Options{})
	srv := httptest.NewServer(env.mux)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + QuoteTickerPath
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var msg quoteMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "<p>Learn <strong>every</strong> day.</p>", msg.HTML)
	assert.Equal(t, "First Author", msg.Author)

	// The handler subscribes before sending the current quote.
	env.rotator.Advance()

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "<p>Teach to learn twice.</p>", msg.HTML)
	assert.Equal(t, "Second Author", msg.Author)
}

func TestQuotes_RejectsCrossOrigin(t *testing.T) {
	env := newTestEnv(t, nil, Options{})
	srv := httptest.NewServer(env.mux)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + QuoteTickerPath
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {"https://evil.example.com"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSameOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "no origin", origin: "", want: true},
		{name: "same host", origin: "http://campus.example.edu", want: true},
		{name: "same host https", origin: "https://campus.example.edu", want: true},
		{name: "other host", origin: "http://evil.example.com", want: false},
		{name: "other port", origin: "http://campus.example.edu:9000", want: false},
		{name: "unparseable", origin: "://bad", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://campus.example.edu/ws/quotes", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, sameOrigin(req))
		})
	}
}
