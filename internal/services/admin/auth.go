package admin

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/tableside/internal/platform/timeouts"
	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
	"github.com/louisbranch/tableside/internal/services/shared/htmx"
)

// requireSession redirects to login unless the operator holds a credential.
//
// A credential restored from storage carries no identity yet; it is
// confirmed with the server before the page is served and cleared when
// the server rejects it.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		current := h.session.Snapshot()
		if current.Credential == "" {
			htmx.Redirect(w, r, routepath.Login)
			return
		}

		if current.Identity == nil {
			ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
			err := h.session.Validate(ctx)
			cancel()
			if err != nil {
				log.Printf("admin session validate: %v", err)
				h.signOut(context.WithoutCancel(r.Context()))
				htmx.Redirect(w, r, routepath.Login)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return path == routepath.Login ||
		strings.HasPrefix(path, routepath.StaticPrefix) ||
		path == routepath.Healthz ||
		path == routepath.Metrics
}
