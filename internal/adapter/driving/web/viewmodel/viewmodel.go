// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// LayoutViewModel holds the data shared by every page shell.
type LayoutViewModel struct {
	Title    string
	Year     int
	LoggedIn bool
}

// PortalCardViewModel describes one entry on the portal chooser.
type PortalCardViewModel struct {
	Title       string
	Description string
	Href        string
	Action      string // button label
	Primary     bool
}

// QuoteViewModel holds a ticker quote. HTML is sanitized markup.
type QuoteViewModel struct {
	HTML   string
	Author string
}

// LandingViewModel holds presentation-ready data for the portal chooser.
type LandingViewModel struct {
	Portals  []PortalCardViewModel
	Quote    *QuoteViewModel // nil when no quotes are configured
	TickerWS string          // WebSocket path for live rotation
}

// LoginViewModel holds presentation-ready data for the faculty login form.
type LoginViewModel struct {
	Action       string
	CSRFToken    string
	Identifier   string // raw value, re-rendered through attribute escaping
	Remember     bool
	Loading      bool
	SubmitLabel  string
	LoadingLabel string
	Error        string // empty unless login errors are shown
}

// AttemptViewModel holds one journal entry for display.
type AttemptViewModel struct {
	Identifier string // already escaped; rendered as-is
	Outcome    string
	Reason     string
	Remember   bool
	OccurredAt string
}

// DashboardViewModel holds presentation-ready data for the faculty dashboard.
type DashboardViewModel struct {
	// Greeting is the sanitized identifier the visitor logged in with. It is
	// already escaped and is emitted without further escaping.
	Greeting       string
	CSRFToken      string
	LogoutAction   string
	JournalEnabled bool
	Attempts       []AttemptViewModel
}
