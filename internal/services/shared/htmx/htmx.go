// Package htmx adapts page rendering and redirects to htmx-driven requests.
package htmx

import (
	"context"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// RequestHeader marks requests issued by htmx.
	RequestHeader = "HX-Request"
	// RedirectHeader asks htmx to perform a full client-side navigation.
	RedirectHeader = "HX-Redirect"
)

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders fragment for htmx requests and full otherwise.
//
// htmx swaps the fragment into the current document, so it is prefixed with
// htmxTitle to keep the browser title in step. A nil component falls back to
// the other one.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	if fragment == nil {
		fragment = full
	}
	if full == nil {
		full = fragment
	}
	if full == nil {
		return
	}
	if !IsHTMXRequest(r) {
		templ.Handler(full).ServeHTTP(w, r)
		return
	}
	templ.Handler(withTitle(fragment, htmxTitle)).ServeHTTP(w, r)
}

func withTitle(body templ.Component, title string) templ.Component {
	if title == "" {
		return body
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, title); err != nil {
			return err
		}
		return body.Render(ctx, w)
	})
}

// Redirect sends the browser to target. htmx requests get an HX-Redirect
// header so the whole page navigates instead of swapping the redirect body.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMXRequest(r) {
		w.Header().Set(RedirectHeader, target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	status := http.StatusSeeOther
	if r != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		status = http.StatusFound
	}
	http.Redirect(w, r, target, status)
}
