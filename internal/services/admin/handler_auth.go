package admin

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/platform/timeouts"
	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
	"github.com/louisbranch/tableside/internal/services/admin/templates"
	"github.com/louisbranch/tableside/internal/services/shared/htmx"
)

// handleLoginPage renders the sign-in form, or skips it for a live session.
func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.session.Authenticated() {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	loc, lang := h.localizer(w, r)
	templ.Handler(templates.LoginFullPage(templates.LoginView{}, h.pageContext(lang, loc, r))).ServeHTTP(w, r)
}

// handleLogin exchanges the submitted credentials for a session.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.validation"), http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
	defer cancel()
	if _, err := h.session.Login(ctx, email, password); err != nil {
		log.Printf("admin login: %v", err)
		view := templates.LoginView{Email: email, Message: errorMessage(loc, err)}
		status := apperrors.CodeOf(err).HTTPStatus()
		templ.Handler(templates.LoginFullPage(view, h.pageContext(lang, loc, r)), templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	htmx.Redirect(w, r, routepath.Root)
}

// handleLogout ends the session and returns to the sign-in form.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	h.signOut(context.WithoutCancel(r.Context()))
	htmx.Redirect(w, r, routepath.Login)
}
