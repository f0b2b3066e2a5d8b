package templates

import "github.com/a-h/templ"

// MenuFullPage renders the menu placeholder.
func MenuFullPage(page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "menu.title"), menuPage(page.Loc))
}
