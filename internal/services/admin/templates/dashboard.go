package templates

import "github.com/a-h/templ"

// StatCard is one headline number on the dashboard.
type StatCard struct {
	Label string
	Value string
}

// DashboardView holds the rendered dashboard snapshot.
type DashboardView struct {
	Stats       []StatCard
	Recent      []OrderRow
	Message     string
	RefreshedAt string
	// RefreshSeconds re-renders the content from cache on this cadence.
	RefreshSeconds int
	// RefreshURL forces a fetch from the API when requested.
	RefreshURL string
}

// DashboardFullPage renders the dashboard shell; content loads lazily.
func DashboardFullPage(page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "dashboard.title"), DashboardPage(page.Loc))
}
