package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/juju/clock"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

// DefaultVisitorTTL is how long an idle visitor keeps its logged-in flag.
const DefaultVisitorTTL = 12 * time.Hour

// visitorState is the application state the shell tracks per visitor.
type visitorState struct {
	identifier string // sanitized
	lastSeen   time.Time
}

// Shell is the routing shell. It is the sole owner of the "is logged in"
// state, held per visitor in memory, and decides which page a request sees.
// State is lost on restart, the server-side equivalent of a page reload.
type Shell struct {
	mu       sync.RWMutex
	visitors map[string]*visitorState
	clock    clock.Clock
	ttl      time.Duration
}

// NewShell creates a Shell whose idle visitors expire after ttl.
func NewShell(clk clock.Clock, ttl time.Duration) *Shell {
	return &Shell{
		visitors: make(map[string]*visitorState),
		clock:    clk,
		ttl:      ttl,
	}
}

// Resolve maps a request path to the page view that renders it.
func (s *Shell) Resolve(path string) model.Route {
	switch model.Route(path) {
	case model.RouteHome, model.RouteFacultyLogin, model.RouteFacultyDashboard:
		return model.Route(path)
	default:
		return model.RouteNotFound
	}
}

// Navigate decides what visitorID sees for path. When the visitor may not see
// the resolved page, the returned Navigation names where to go instead.
func (s *Shell) Navigate(visitorID, path string) (model.Route, model.Navigation) {
	route := s.Resolve(path)
	if route == model.RouteFacultyDashboard && !s.LoggedIn(visitorID) {
		return route, model.NavigateTo(model.RouteFacultyLogin)
	}
	return route, model.Navigation{}
}

// LoggedIn reports whether visitorID has completed a login. Checking a
// logged-in visitor refreshes its idle timer.
func (s *Shell) LoggedIn(visitorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[visitorID]
	if !ok {
		return false
	}
	v.lastSeen = s.clock.Now()
	return true
}

// Identifier returns the sanitized identifier visitorID logged in with, or ""
// when the visitor is not logged in.
func (s *Shell) Identifier(visitorID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.visitors[visitorID]; ok {
		return v.identifier
	}
	return ""
}

// MarkLoggedIn sets the logged-in flag for visitorID.
func (s *Shell) MarkLoggedIn(visitorID, sanitizedIdentifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visitors[visitorID] = &visitorState{
		identifier: sanitizedIdentifier,
		lastSeen:   s.clock.Now(),
	}
}

// LogOut clears the logged-in flag for visitorID.
func (s *Shell) LogOut(visitorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.visitors, visitorID)
}

// Count returns the number of logged-in visitors.
func (s *Shell) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visitors)
}

// Sweep drops visitors idle for longer than the TTL and returns how many were
// removed.
func (s *Shell) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock.Now().Add(-s.ttl)
	removed := 0
	for id, v := range s.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(s.visitors, id)
			removed++
		}
	}
	return removed
}

// Start sweeps idle visitors once per TTL until ctx is canceled.
func (s *Shell) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("visitor sweeper stopped")
			return
		case <-s.clock.After(s.ttl):
			if n := s.Sweep(); n > 0 {
				slog.Info("expired idle visitors", "count", n)
			}
		}
	}
}
