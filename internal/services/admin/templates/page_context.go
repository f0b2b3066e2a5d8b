package templates

// PageContext provides shared layout context for dashboard pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// OperatorName is shown in the header; empty hides the navigation.
	OperatorName string
}
