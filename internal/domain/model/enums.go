package model

// LoginState represents the phase of the simulated login flow.
type LoginState string

const (
	LoginStateIdle       LoginState = "idle"
	LoginStateSubmitting LoginState = "submitting"
	LoginStateSucceeded  LoginState = "succeeded"
	LoginStateFailed     LoginState = "failed"
)

// AttemptOutcome records how a submission ended.
type AttemptOutcome string

const (
	AttemptOutcomeNone      AttemptOutcome = ""
	AttemptOutcomeSucceeded AttemptOutcome = "succeeded"
	AttemptOutcomeFailed    AttemptOutcome = "failed"
	AttemptOutcomeAbandoned AttemptOutcome = "abandoned" // canceled before the delay elapsed
)

// HealthStatus is the overall health reported by the health endpoint.
type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
)
