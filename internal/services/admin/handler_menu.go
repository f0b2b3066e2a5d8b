package admin

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/tableside/internal/services/admin/templates"
)

// handleMenu renders the menu placeholder.
func (h *Handler) handleMenu(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	h.views.DeactivateAll()
	templ.Handler(templates.MenuFullPage(h.pageContext(lang, loc, r))).ServeHTTP(w, r)
}
