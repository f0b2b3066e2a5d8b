package admin

import (
	"strconv"
	"time"

	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/orders"
	"github.com/louisbranch/tableside/internal/services/admin/routepath"
	"github.com/louisbranch/tableside/internal/services/admin/templates"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbol prefixes every amount; the venue prices in naira.
const currencySymbol = "₦"

// clockLayout renders order and refresh times.
const clockLayout = "15:04"

func formatMoney(loc *message.Printer, amount float64) string {
	return currencySymbol + loc.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(clockLayout)
}

func formatCreated(order apiclient.Order) string {
	created, ok := order.CreatedTime()
	if !ok {
		return ""
	}
	return formatClock(created)
}

func formatStatus(loc *message.Printer, status orders.Status) string {
	if !status.Valid() {
		return string(status)
	}
	return loc.Sprintf(status.LabelKey())
}

func buildOrderRows(list []apiclient.Order, loc *message.Printer) []templates.OrderRow {
	rows := make([]templates.OrderRow, 0, len(list))
	for _, order := range list {
		rows = append(rows, buildOrderRow(order, loc))
	}
	return rows
}

func buildOrderRow(order apiclient.Order, loc *message.Printer) templates.OrderRow {
	status := orders.Status(order.Status)
	row := templates.OrderRow{
		ID:          order.ID,
		Table:       order.TableNumber,
		Status:      order.Status,
		StatusLabel: formatStatus(loc, status),
		Subtotal:    formatMoney(loc, order.Subtotal),
		Tax:         formatMoney(loc, order.Tax),
		Total:       formatMoney(loc, order.Total),
		Notes:       order.Notes,
		Created:     formatCreated(order),
		Completed:   status == orders.StatusDelivered,
	}
	if order.EstimatedWaitTime > 0 && status.Active() {
		row.Wait = loc.Sprintf("orders.wait", order.EstimatedWaitTime)
	}
	for _, item := range order.Items {
		row.Items = append(row.Items, templates.OrderItemRow{
			Quantity:     item.Quantity,
			Name:         item.Name,
			Price:        formatMoney(loc, item.Price*float64(item.Quantity)),
			Instructions: item.SpecialInstructions,
		})
	}
	for _, action := range orders.NextActions(status) {
		row.Actions = append(row.Actions, templates.OrderAction{
			Label:  loc.Sprintf(action.LabelKey),
			Target: string(action.Target),
			URL:    routepath.OrderStatus(order.ID),
		})
	}
	return row
}

func buildStatCards(stats apiclient.DashboardStats, loc *message.Printer) []templates.StatCard {
	return []templates.StatCard{
		{Label: loc.Sprintf("dashboard.stats.pending"), Value: strconv.Itoa(stats.PendingOrders)},
		{Label: loc.Sprintf("dashboard.stats.preparing"), Value: strconv.Itoa(stats.PreparingOrders)},
		{Label: loc.Sprintf("dashboard.stats.completed_today"), Value: strconv.Itoa(stats.CompletedToday)},
		{
			Label: loc.Sprintf("dashboard.stats.avg_wait"),
			Value: loc.Sprintf("dashboard.stats.minutes", strconv.FormatFloat(stats.AverageWaitTime, 'f', -1, 64)),
		},
	}
}

func refreshSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	seconds := int(d / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}
