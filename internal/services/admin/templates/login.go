package templates

import "github.com/a-h/templ"

// LoginView carries the login form state.
type LoginView struct {
	Email   string
	Message string
}

// LoginFullPage renders the sign-in page.
func LoginFullPage(view LoginView, page PageContext) templ.Component {
	page.OperatorName = ""
	return Layout(page, T(page.Loc, "login.title"), loginForm(view, page.Loc))
}
