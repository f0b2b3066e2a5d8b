package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/platform/id"
	"github.com/louisbranch/tableside/internal/platform/requestctx"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/dashboard"
	"github.com/louisbranch/tableside/internal/services/admin/i18n"
	authmodule "github.com/louisbranch/tableside/internal/services/admin/module/auth"
	dashboardmodule "github.com/louisbranch/tableside/internal/services/admin/module/dashboard"
	menumodule "github.com/louisbranch/tableside/internal/services/admin/module/menu"
	ordersmodule "github.com/louisbranch/tableside/internal/services/admin/module/orders"
	qrmodule "github.com/louisbranch/tableside/internal/services/admin/module/qr"
	"github.com/louisbranch/tableside/internal/services/admin/orders"
	"github.com/louisbranch/tableside/internal/services/admin/qr"
	"github.com/louisbranch/tableside/internal/services/admin/routepath"
	"github.com/louisbranch/tableside/internal/services/admin/session"
	"github.com/louisbranch/tableside/internal/services/admin/templates"
	"github.com/louisbranch/tableside/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// HandlerConfig wires the view-models the dashboard renders.
type HandlerConfig struct {
	Session   *session.Store
	Orders    *orders.Workflow
	Dashboard *dashboard.Service
	QR        *qr.Generator
	// OrdersRefresh and DashboardRefresh set how often the browser re-renders
	// content from the cached view-models. Zero disables self-refresh.
	OrdersRefresh    time.Duration
	DashboardRefresh time.Duration
}

// Handler routes admin dashboard requests.
type Handler struct {
	session   *session.Store
	orders    *orders.Workflow
	dashboard *dashboard.Service
	qr        *qr.Generator
	views     *views

	ordersRefresh    time.Duration
	dashboardRefresh time.Duration
}

// NewHandler builds the HTTP handler for the admin dashboard.
func NewHandler(cfg HandlerConfig) (http.Handler, error) {
	h, err := newHandler(cfg)
	if err != nil {
		return nil, err
	}
	return h.routes(), nil
}

func newHandler(cfg HandlerConfig) (*Handler, error) {
	switch {
	case cfg.Session == nil:
		return nil, errors.New("session store is required")
	case cfg.Orders == nil:
		return nil, errors.New("order workflow is required")
	case cfg.Dashboard == nil:
		return nil, errors.New("dashboard service is required")
	case cfg.QR == nil:
		return nil, errors.New("qr generator is required")
	}
	return &Handler{
		session:          cfg.Session,
		orders:           cfg.Orders,
		dashboard:        cfg.Dashboard,
		qr:               cfg.QR,
		ordersRefresh:    cfg.OrdersRefresh,
		dashboardRefresh: cfg.DashboardRefresh,
	}, nil
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	authmodule.RegisterRoutes(mux, newAuthModuleService(h))
	dashboardmodule.RegisterRoutes(mux, newDashboardModuleService(h))
	ordersmodule.RegisterRoutes(mux, newOrdersModuleService(h))
	qrmodule.RegisterRoutes(mux, newQRModuleService(h))
	menumodule.RegisterRoutes(mux, newMenuModuleService(h))
	return withRequestID(h.requireSession(mux))
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		OperatorName: operatorName(h.session.Snapshot()),
	}
}

func operatorName(s session.Session) string {
	if s.Identity == nil {
		return ""
	}
	if name := strings.TrimSpace(s.Identity.Name); name != "" {
		return name
	}
	return strings.TrimSpace(s.Identity.Email)
}

// signOut stops polling, ends the session and drops every cached view-model.
func (h *Handler) signOut(ctx context.Context) {
	h.views.DeactivateAll()
	h.clearSession(ctx)
}

func (h *Handler) clearSession(ctx context.Context) {
	if err := h.session.Logout(ctx); err != nil {
		log.Printf("admin logout: %v", err)
	}
	h.orders.Reset()
	h.dashboard.Reset()
	h.qr.Reset()
}

// sessionLost signs out and redirects to login when err invalidated the
// session. It reports whether the response has been written.
func (h *Handler) sessionLost(w http.ResponseWriter, r *http.Request, err error) bool {
	if apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
		return false
	}
	log.Printf("admin session invalidated: %v", err)
	h.signOut(context.WithoutCancel(r.Context()))
	htmx.Redirect(w, r, routepath.Login)
	return true
}

// errorMessage localizes err for operators. Server-provided rejection and
// login messages are shown as sent.
func errorMessage(loc *message.Printer, err error) string {
	code := apperrors.CodeOf(err)
	switch code {
	case apperrors.CodeRejected, apperrors.CodeAuthentication:
		if msg := strings.TrimSpace(apperrors.MessageOf(err)); msg != "" {
			return msg
		}
	}
	return loc.Sprintf(code.MessageKey())
}

// withRequestID tags each request with an id forwarded to the order API.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(apiclient.RequestIDHeader))
		if requestID == "" {
			generated, err := id.NewID()
			if err != nil {
				log.Printf("admin request id: %v", err)
			}
			requestID = generated
		}
		if requestID != "" {
			w.Header().Set(apiclient.RequestIDHeader, requestID)
			r = r.WithContext(requestctx.WithRequestID(r.Context(), requestID))
		}
		next.ServeHTTP(w, r)
	})
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
