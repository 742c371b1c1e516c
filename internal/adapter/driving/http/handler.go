package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/smartcampus/internal/application"
	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/sanitize"
)

const maxSanitizeBody = 64 << 10

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	healthSvc *application.HealthService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(healthSvc *application.HealthService, logger *slog.Logger) *Handler {
	return &Handler{
		healthSvc: healthSvc,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers the JSON API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("POST /api/v1/sanitize", h.Sanitize)
}

// ApplyMiddleware wraps handler with recovery and request logging.
func ApplyMiddleware(handler http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, handler)
	wrapped = loggingMiddleware(logger, wrapped)
	return wrapped
}

// Health reports the portal's runtime status. A degraded portal answers 503
// so container health checks fail.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.healthSvc.Check(r.Context())
	if err != nil {
		h.logger.Warn("health check degraded", "error", err)
	}

	status := http.StatusOK
	if health.Status != model.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:         string(health.Status),
		Time:           time.Now().UTC().Format(time.RFC3339),
		JournalEnabled: health.JournalEnabled,
		QuoteCount:     health.QuoteCount,
		ActiveVisitors: health.ActiveVisitors,
	})
}

// Sanitize escapes the posted value the same way the login form escapes its
// fields.
func (h *Handler) Sanitize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSanitizeBody)

	var req SanitizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, SanitizeResponse{Sanitized: sanitize.Escape(req.Value)})
}
