package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/juju/clock"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
	"github.com/ericfisherdev/smartcampus/internal/domain/sanitize"
)

// DefaultLoginDelay is the simulated network round trip of a login submission.
const DefaultLoginDelay = 1500 * time.Millisecond

var (
	// ErrMissingCredentials is the only recognized login failure: a required
	// field was empty at submission time.
	ErrMissingCredentials = errors.New("identifier and password are required")

	// ErrSubmitInProgress is returned when a form is submitted again before
	// its previous submission has resolved.
	ErrSubmitInProgress = errors.New("login submission already in progress")
)

// loginRequest is the sanitized submission checked by the required-field rule.
type loginRequest struct {
	Identifier string `validate:"required"`
	Secret     string `validate:"required"`
}

// LoginService creates login forms and holds the dependencies they share:
// the clock driving the simulated delay, the diagnostic sinks, and the
// required-field validator.
type LoginService struct {
	clock    clock.Clock
	delay    time.Duration
	journal  driven.AttemptLog
	validate *validator.Validate
	logger   *slog.Logger
}

// NewLoginService creates a LoginService. journal may be nil, in which case
// attempts are reported to the logger only.
func NewLoginService(clk clock.Clock, delay time.Duration, journal driven.AttemptLog, logger *slog.Logger) *LoginService {
	return &LoginService{
		clock:    clk,
		delay:    delay,
		journal:  journal,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// NewForm mounts an empty login form.
func (s *LoginService) NewForm() *LoginForm {
	return &LoginForm{
		svc:   s,
		state: model.LoginStateIdle,
	}
}

// LoginForm is the state of one faculty login form: the raw field values,
// the loading flag and the phase of the simulated login flow.
//
// All methods are safe for concurrent use.
type LoginForm struct {
	svc *LoginService

	mu          sync.Mutex
	attempt     model.CredentialAttempt
	state       model.LoginState
	loading     bool
	lastOutcome model.AttemptOutcome
	onLoading   []func(loading bool)
}

// SetIdentifier records the latest raw identifier.
func (f *LoginForm) SetIdentifier(raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempt.Identifier = raw
}

// SetSecret records the latest raw password.
func (f *LoginForm) SetSecret(raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempt.Secret = raw
}

// SetRemember records the remember-me checkbox.
func (f *LoginForm) SetRemember(remember bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempt.Remember = remember
}

// SanitizedIdentifier returns the escaped form of the latest raw identifier.
func (f *LoginForm) SanitizedIdentifier() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sanitize.Escape(f.attempt.Identifier)
}

// SanitizedSecret returns the escaped form of the latest raw password.
func (f *LoginForm) SanitizedSecret() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sanitize.Escape(f.attempt.Secret)
}

// Loading reports whether a submission is in flight.
func (f *LoginForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// State returns the current phase of the login flow.
func (f *LoginForm) State() model.LoginState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot returns a copy of the form state for rendering, without the secret.
func (f *LoginForm) Snapshot() model.LoginSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return model.LoginSnapshot{
		Identifier:          f.attempt.Identifier,
		SanitizedIdentifier: sanitize.Escape(f.attempt.Identifier),
		Remember:            f.attempt.Remember,
		Loading:             f.loading,
		State:               f.state,
		LastOutcome:         f.lastOutcome,
	}
}

// OnLoadingChange registers fn to be called on every loading flag
// transition. fn runs with the form locked and must not call back into it.
func (f *LoginForm) OnLoadingChange(fn func(loading bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onLoading = append(f.onLoading, fn)
}

// Submit runs the simulated login flow. Both fields are sanitized
// immediately and the loading flag is raised; after the service delay the
// submission succeeds when both sanitized fields are non-empty, returning a
// navigation to the faculty dashboard. Otherwise the failure goes to the
// diagnostic sinks and ErrMissingCredentials is returned with no navigation.
//
// If ctx is done before the delay elapses the submission is abandoned: no
// outcome is decided, nothing is recorded and ctx.Err() is returned. The
// loading flag is false when Submit returns, whatever the result.
func (f *LoginForm) Submit(ctx context.Context) (model.Navigation, error) {
	f.mu.Lock()
	if f.state == model.LoginStateSubmitting {
		f.mu.Unlock()
		return model.Navigation{}, ErrSubmitInProgress
	}
	req := loginRequest{
		Identifier: sanitize.Escape(f.attempt.Identifier),
		Secret:     sanitize.Escape(f.attempt.Secret),
	}
	remember := f.attempt.Remember
	f.state = model.LoginStateSubmitting
	f.setLoading(true)
	f.mu.Unlock()

	delayErr := Delay(ctx, f.svc.clock, f.svc.delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	defer func() {
		f.state = model.LoginStateIdle
		f.setLoading(false)
	}()

	if delayErr != nil {
		f.lastOutcome = model.AttemptOutcomeAbandoned
		f.svc.logger.Debug("login attempt abandoned", "error", delayErr)
		return model.Navigation{}, delayErr
	}

	rec := model.AttemptRecord{
		Identifier: req.Identifier,
		Remember:   remember,
		OccurredAt: f.svc.clock.Now().UTC(),
	}

	if err := f.svc.validate.Struct(req); err != nil {
		f.state = model.LoginStateFailed
		f.lastOutcome = model.AttemptOutcomeFailed
		rec.Outcome = model.AttemptOutcomeFailed
		rec.Reason = ErrMissingCredentials.Error()
		f.svc.logger.Warn("login attempt failed",
			"reason", rec.Reason,
			"missing", missingFields(err),
		)
		f.svc.record(ctx, rec)
		return model.Navigation{}, ErrMissingCredentials
	}

	f.state = model.LoginStateSucceeded
	f.lastOutcome = model.AttemptOutcomeSucceeded
	rec.Outcome = model.AttemptOutcomeSucceeded
	f.svc.logger.Info("login attempt succeeded", "identifier", req.Identifier, "remember", remember)
	f.svc.record(ctx, rec)

	return model.NavigateTo(model.RouteFacultyDashboard), nil
}

// setLoading updates the loading flag and notifies observers. Callers hold f.mu.
func (f *LoginForm) setLoading(loading bool) {
	if f.loading == loading {
		return
	}
	f.loading = loading
	for _, fn := range f.onLoading {
		fn(loading)
	}
}

// record writes rec to the journal, if one is configured. Journal errors are
// logged and otherwise ignored.
func (s *LoginService) record(ctx context.Context, rec model.AttemptRecord) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, rec); err != nil {
		s.logger.Error("failed to record login attempt", "outcome", rec.Outcome, "error", err)
	}
}

// missingFields lists the struct fields that failed the required rule.
func missingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
