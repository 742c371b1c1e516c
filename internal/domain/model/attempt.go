package model

import "time"

// CredentialAttempt holds the raw field values of one login form. Fields are
// overwritten on every change; sanitized values are derived on demand.
type CredentialAttempt struct {
	Identifier string
	Secret     string
	Remember   bool
}

// AttemptRecord is a diagnostic entry for a resolved login attempt.
// Identifier is the sanitized value; the secret is never recorded.
type AttemptRecord struct {
	ID         int64
	Identifier string
	Outcome    AttemptOutcome
	Reason     string
	Remember   bool
	OccurredAt time.Time
}

// LoginSnapshot is a point-in-time copy of a login form's state, used to
// render the form.
type LoginSnapshot struct {
	Identifier          string // raw, as last entered
	SanitizedIdentifier string
	Remember            bool
	Loading             bool
	State               LoginState
	LastOutcome         AttemptOutcome
}
