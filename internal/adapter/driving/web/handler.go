// Package web implements the HTML portal driving adapter using templ components.
package web

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/websocket"
	"github.com/juju/clock"

	"github.com/ericfisherdev/smartcampus/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/smartcampus/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/smartcampus/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/smartcampus/internal/application"
	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
)

const (
	// QuoteTickerPath is the WebSocket endpoint streaming quote rotations.
	QuoteTickerPath = "/ws/quotes"

	logoutPath         = "/logout"
	recentAttemptLimit = 10
)

// Options holds the presentation switches of the web adapter.
type Options struct {
	// ShowLoginErrors displays a message on the form after a failed login.
	// When false a failed login is silent, as it is to the visitor.
	ShowLoginErrors bool
	// SecureCookies marks the visitor and CSRF cookies Secure.
	SecureCookies bool
}

// Handler is the web driving adapter that serves the portal pages.
type Handler struct {
	shell    *application.Shell
	loginSvc *application.LoginService
	rotator  *application.QuoteRotator
	journal  driven.AttemptLog
	clock    clock.Clock
	opts     Options
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. journal may be
// nil, in which case the dashboard shows no sign-in activity.
func NewHandler(
	shell *application.Shell,
	loginSvc *application.LoginService,
	rotator *application.QuoteRotator,
	journal driven.AttemptLog,
	clk clock.Clock,
	opts Options,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		shell:    shell,
		loginSvc: loginSvc,
		rotator:  rotator,
		journal:  journal,
		clock:    clk,
		opts:     opts,
		upgrader: websocket.Upgrader{CheckOrigin: sameOrigin},
		logger:   logger,
	}
}

// Page renders the view the shell resolves for the request path. A visitor
// who may not see the resolved view is redirected instead.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	visitor := visitorID(w, r, h.opts.SecureCookies)

	route, nav := h.shell.Navigate(visitor, r.URL.Path)
	if nav.Requested() {
		http.Redirect(w, r, nav.Target.Path(), http.StatusFound)
		return
	}

	loggedIn := h.shell.LoggedIn(visitor)

	switch route {
	case model.RouteHome:
		h.render(w, r, http.StatusOK, "Welcome", loggedIn, pages.Landing(h.landingViewModel()))
	case model.RouteFacultyLogin:
		csrf := csrfToken(w, r, h.opts.SecureCookies)
		snap := h.loginSvc.NewForm().Snapshot()
		h.render(w, r, http.StatusOK, "Faculty Login", loggedIn,
			pages.FacultyLogin(toLoginViewModel(snap, csrf, false)))
	case model.RouteFacultyDashboard:
		csrf := csrfToken(w, r, h.opts.SecureCookies)
		h.render(w, r, http.StatusOK, "Faculty Dashboard", loggedIn,
			pages.FacultyDashboard(h.dashboardViewModel(r.Context(), visitor, csrf)))
	default:
		h.render(w, r, http.StatusNotFound, "Page Not Found", loggedIn, pages.NotFound())
	}
}

// SubmitLogin runs one login submission for the posted form. On success the
// visitor is marked logged in and sent to the dashboard; on failure the form
// is shown again. If the request goes away during the simulated delay the
// submission is abandoned and nothing is written.
func (h *Handler) SubmitLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	visitor := visitorID(w, r, h.opts.SecureCookies)

	form := h.loginSvc.NewForm()
	form.SetIdentifier(r.PostFormValue("identifier"))
	form.SetSecret(r.PostFormValue("secret"))
	form.SetRemember(r.PostFormValue("remember") == "on")

	nav, err := form.Submit(r.Context())
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Debug("login request ended before submission resolved", "error", err)
		return
	case errors.Is(err, application.ErrMissingCredentials):
		csrf := csrfToken(w, r, h.opts.SecureCookies)
		h.render(w, r, http.StatusOK, "Faculty Login", h.shell.LoggedIn(visitor),
			pages.FacultyLogin(toLoginViewModel(form.Snapshot(), csrf, h.opts.ShowLoginErrors)))
		return
	case err != nil:
		h.logger.Error("login submission failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.shell.MarkLoggedIn(visitor, form.SanitizedIdentifier())
	http.Redirect(w, r, nav.Target.Path(), http.StatusSeeOther)
}

// Logout clears the visitor's logged-in flag and returns to the landing page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	h.shell.LogOut(visitorID(w, r, h.opts.SecureCookies))
	http.Redirect(w, r, model.RouteHome.Path(), http.StatusSeeOther)
}

func (h *Handler) landingViewModel() vm.LandingViewModel {
	data := vm.LandingViewModel{
		Portals:  portals,
		TickerWS: QuoteTickerPath,
	}
	if q, ok := h.rotator.Current(); ok {
		quote := toQuoteViewModel(q)
		data.Quote = &quote
	}
	return data
}

func (h *Handler) dashboardViewModel(ctx context.Context, visitor, csrf string) vm.DashboardViewModel {
	identifier := h.shell.Identifier(visitor)
	data := vm.DashboardViewModel{
		Greeting:       identifier,
		CSRFToken:      csrf,
		LogoutAction:   logoutPath,
		JournalEnabled: h.journal != nil,
	}
	if h.journal == nil {
		return data
	}

	// Only the signed-in visitor's own attempts are listed.
	records, err := h.journal.RecentFor(ctx, identifier, recentAttemptLimit)
	if err != nil {
		h.logger.Error("failed to load recent login attempts", "error", err)
		return data
	}
	data.Attempts = toAttemptViewModels(records)
	return data
}

// render writes body inside the page layout. The page is rendered to a buffer
// first so a template error can still produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, loggedIn bool, body templ.Component) {
	layout := templates.Layout(vm.LayoutViewModel{
		Title:    title,
		Year:     h.clock.Now().Year(),
		LoggedIn: loggedIn,
	}, body)

	var buf bytes.Buffer
	if err := layout.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", "title", title, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write page", "title", title, "error", err)
	}
}
