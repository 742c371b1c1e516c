package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/ericfisherdev/smartcampus/internal/adapter/driving/web/viewmodel"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestLanding(t *testing.T) {
	html := render(t, Landing(vm.LandingViewModel{
		Portals: []vm.PortalCardViewModel{
			{Title: "Faculty Portal", Href: "/faculty-login", Action: "Faculty Login", Primary: true},
			{Title: "Student Portal", Href: "/student-login", Action: "Student Login"},
		},
		Quote:    &vm.QuoteViewModel{HTML: "<p>Learn.</p>", Author: "Someone"},
		TickerWS: "/ws/quotes",
	}))

	assert.Contains(t, html, "Welcome to Smart Campus")
	assert.Contains(t, html, `<a href="/faculty-login" class="btn btn-primary btn-lg btn-block">Faculty Login</a>`)
	assert.Contains(t, html, `<a href="/student-login" class="btn btn-outline btn-lg btn-block">Student Login</a>`)
	assert.Contains(t, html, `id="quote-ticker"`)
	assert.Contains(t, html, "<svg")
}

func TestLanding_NoQuote(t *testing.T) {
	html := render(t, Landing(vm.LandingViewModel{}))

	assert.NotContains(t, html, "quote-ticker")
}

func TestFacultyLogin_Idle(t *testing.T) {
	html := render(t, FacultyLogin(vm.LoginViewModel{
		Action:       "/faculty-login",
		CSRFToken:    "tok",
		Identifier:   "<script>",
		Remember:     true,
		SubmitLabel:  "Sign In",
		LoadingLabel: "Signing In...",
	}))

	assert.Contains(t, html, `action="/faculty-login"`)
	assert.Contains(t, html, `name="csrf_token" value="tok"`)
	// The raw identifier is escaped exactly once by the attribute writer.
	assert.Contains(t, html, `value="&lt;script&gt;"`)
	assert.NotContains(t, html, "&amp;lt;")
	assert.Contains(t, html, " checked")
	assert.Contains(t, html, `data-loading-label="Signing In..."`)
	assert.Contains(t, html, ">Sign In</button>")
	assert.NotContains(t, html, "disabled")
	assert.NotContains(t, html, "form-error")
	assert.Contains(t, html, "Back to portal selection")
}

func TestFacultyLogin_PasswordNeverRendered(t *testing.T) {
	html := render(t, FacultyLogin(vm.LoginViewModel{SubmitLabel: "Sign In"}))

	assert.Contains(t, html, `<input type="password" id="secret" name="secret"`)
	assert.NotContains(t, html, `name="secret" class="input input-primary input-md" value=`)
}

func TestFacultyLogin_LoadingAndError(t *testing.T) {
	html := render(t, FacultyLogin(vm.LoginViewModel{
		Loading:     true,
		SubmitLabel: "Signing In...",
		Error:       "Please enter both your faculty ID and password.",
	}))

	assert.Contains(t, html, ">Signing In...</button>")
	assert.Contains(t, html, " disabled>")
	assert.Contains(t, html, `role="alert"`)
}

func TestFacultyDashboard(t *testing.T) {
	html := render(t, FacultyDashboard(vm.DashboardViewModel{
		Greeting:       "&lt;b&gt;prof",
		CSRFToken:      "tok",
		LogoutAction:   "/logout",
		JournalEnabled: true,
		Attempts: []vm.AttemptViewModel{
			{Identifier: "&lt;b&gt;prof", Outcome: "succeeded", Remember: true, OccurredAt: "2026-10-19T09:00:00Z"},
			{Identifier: "", Outcome: "failed", Reason: "identifier and password are required", OccurredAt: "2026-10-19T08:59:00Z"},
		},
	}))

	assert.Contains(t, html, "Welcome, <strong>&lt;b&gt;prof</strong>")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, `action="/logout"`)
	assert.Contains(t, html, `<td class="outcome-succeeded">succeeded</td>`)
	assert.Contains(t, html, `title="identifier and password are required"`)
	assert.Contains(t, html, "Log Out")
}

func TestFacultyDashboard_JournalDisabled(t *testing.T) {
	html := render(t, FacultyDashboard(vm.DashboardViewModel{Greeting: "prof"}))

	assert.NotContains(t, html, "Recent sign-in activity")
}

func TestFacultyDashboard_EmptyJournal(t *testing.T) {
	html := render(t, FacultyDashboard(vm.DashboardViewModel{Greeting: "prof", JournalEnabled: true}))

	assert.Contains(t, html, "No sign-in attempts recorded yet.")
}

func TestNotFound(t *testing.T) {
	html := render(t, NotFound())

	assert.Contains(t, html, "Page not found")
	assert.Contains(t, html, `href="/"`)
}
