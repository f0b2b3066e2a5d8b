package admin

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/platform/timeouts"
	"github.com/louisbranch/tableside/internal/services/admin/orders"
	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
	"github.com/louisbranch/tableside/internal/services/admin/templates"
	"github.com/louisbranch/tableside/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// filterParam selects the order list filter.
const filterParam = "filter"

// handleOrders renders the orders shell for the requested filter and starts
// the orders poller.
func (h *Handler) handleOrders(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	filter, err := orders.ParseFilter(r.URL.Query().Get(filterParam))
	if err != nil {
		http.Error(w, errorMessage(loc, err), apperrors.CodeOf(err).HTTPStatus())
		return
	}

	h.orders.Select(filter)
	h.views.Activate(viewOrders)

	view := h.ordersView(filter, loc)
	title := templates.ComposePageTitle(loc.Sprintf("orders.title"))
	htmx.RenderPage(w, r, templates.OrdersPage(view, loc), templates.OrdersFullPage(view, h.pageContext(lang, loc, r)), htmx.TitleTag(title))
}

// handleOrdersContent renders the cached order list. It fetches when the
// cache is empty, the filter differs or a refresh is requested.
func (h *Handler) handleOrdersContent(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	filter, err := orders.ParseFilter(r.URL.Query().Get(filterParam))
	if err != nil {
		http.Error(w, errorMessage(loc, err), apperrors.CodeOf(err).HTTPStatus())
		return
	}
	view := h.ordersView(filter, loc)

	stale := filter != h.orders.Filter() || h.orders.RefreshedAt().IsZero()
	if stale || wantsRefresh(r) {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
		_, err := h.orders.List(ctx, filter)
		cancel()
		if err != nil {
			if h.sessionLost(w, r, err) {
				return
			}
			log.Printf("admin orders list: %v", err)
			view.Message = errorMessage(loc, err)
			view.MessageKind = "error"
		}
	}

	if filter == h.orders.Filter() {
		view.Rows = buildOrderRows(h.orders.Orders(), loc)
	}
	templ.Handler(templates.OrdersContent(view, loc)).ServeHTTP(w, r)
}

// handleOrderStatus applies one transition and re-renders the list.
func (h *Handler) handleOrderStatus(w http.ResponseWriter, r *http.Request, orderID string) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.validation"), http.StatusBadRequest)
		return
	}
	filter, err := orders.ParseFilter(r.FormValue(filterParam))
	if err != nil {
		filter = h.orders.Filter()
	}
	next := orders.Status(strings.TrimSpace(r.FormValue("status")))

	view := h.ordersView(filter, loc)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
	updated, err := h.orders.Transition(ctx, orderID, next)
	cancel()
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		log.Printf("admin order %s transition to %s: %v", orderID, next, err)
		view.Message = errorMessage(loc, err)
		view.MessageKind = "error"
	} else {
		view.Message = loc.Sprintf("orders.updated", updated.TableNumber, formatStatus(loc, next))
		view.MessageKind = "success"
	}

	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.OrdersFiltered(routepath.Orders, string(filter)), http.StatusSeeOther)
		return
	}
	view.Rows = buildOrderRows(h.orders.Orders(), loc)
	templ.Handler(templates.OrdersContent(view, loc)).ServeHTTP(w, r)
}

func (h *Handler) ordersView(filter orders.Filter, loc *message.Printer) templates.OrdersView {
	view := templates.OrdersView{
		Filter:         string(filter),
		RefreshSeconds: refreshSeconds(h.ordersRefresh),
		ContentURL:     routepath.OrdersFiltered(routepath.OrdersContent, string(filter)),
	}
	view.RefreshURL = view.ContentURL + "&" + refreshParam + "=1"
	for _, option := range orders.FilterOptions {
		view.Filters = append(view.Filters, templates.FilterOption{
			Value:  string(option),
			Label:  loc.Sprintf(option.LabelKey()),
			URL:    routepath.OrdersFiltered(routepath.Orders, string(option)),
			Active: option == filter,
		})
	}
	return view
}
