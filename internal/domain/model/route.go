package model

// Route identifies one of the portal's page views.
type Route string

const (
	RouteHome             Route = "/"
	RouteFacultyLogin     Route = "/faculty-login"
	RouteFacultyDashboard Route = "/faculty-dashboard"
	RouteNotFound         Route = "" // catch-all
)

// Path returns the URL path for the route. RouteNotFound has no path of its own.
func (r Route) Path() string {
	return string(r)
}

// Navigation is a request to move the visitor to another page.
// The zero value means "stay on the current page".
type Navigation struct {
	Target Route
}

// NavigateTo returns a Navigation targeting r.
func NavigateTo(r Route) Navigation {
	return Navigation{Target: r}
}

// Requested reports whether the navigation asks to leave the current page.
func (n Navigation) Requested() bool {
	return n.Target != ""
}
