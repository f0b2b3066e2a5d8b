package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/tableside/internal/platform/timeouts"
	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
	"github.com/louisbranch/tableside/internal/services/admin/templates"
	"github.com/louisbranch/tableside/internal/services/shared/htmx"
)

// refreshParam forces content endpoints to fetch instead of reading cache.
const refreshParam = "refresh"

func wantsRefresh(r *http.Request) bool {
	return r.URL.Query().Get(refreshParam) != ""
}

// handleDashboard renders the dashboard shell and starts its poller.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	loc, lang := h.localizer(w, r)
	h.views.Activate(viewDashboard)

	title := templates.ComposePageTitle(loc.Sprintf("dashboard.title"))
	htmx.RenderPage(w, r, templates.DashboardPage(loc), templates.DashboardFullPage(h.pageContext(lang, loc, r)), htmx.TitleTag(title))
}

// handleDashboardContent renders stats and recent orders from the cached
// snapshot, fetching only on first load or an explicit refresh.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	view := templates.DashboardView{
		RefreshSeconds: refreshSeconds(h.dashboardRefresh),
		RefreshURL:     routepath.DashboardContent + "?" + refreshParam + "=1",
	}

	if wantsRefresh(r) || !h.dashboard.Snapshot().Loaded() {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
		err := h.dashboard.Refresh(ctx)
		cancel()
		if err != nil {
			if h.sessionLost(w, r, err) {
				return
			}
			log.Printf("admin dashboard refresh: %v", err)
			view.Message = errorMessage(loc, err)
		}
	}

	snapshot := h.dashboard.Snapshot()
	view.Stats = buildStatCards(snapshot.Stats, loc)
	view.Recent = buildOrderRows(snapshot.RecentOrders, loc)
	view.RefreshedAt = formatClock(snapshot.RefreshedAt)
	templ.Handler(templates.DashboardContent(view, loc)).ServeHTTP(w, r)
}
