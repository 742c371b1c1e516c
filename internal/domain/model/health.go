package model

// Health summarizes the portal's runtime status.
type Health struct {
	Status         HealthStatus
	JournalEnabled bool
	QuoteCount     int
	ActiveVisitors int // logged-in visitors held by the shell
}
