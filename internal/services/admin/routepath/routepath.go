package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
	Metrics      = "/metrics"
	Healthz      = "/healthz"
)

const (
	Login  = "/login"
	Logout = "/logout"
)

const (
	DashboardContent = "/dashboard/content"
)

const (
	Orders        = "/orders"
	OrdersContent = "/orders/content"
	OrdersPrefix  = "/orders/"
	// OrderStatusPattern is the mux pattern for order transitions.
	OrderStatusPattern = "POST /orders/{id}/status"
)

const (
	QR       = "/qr"
	QRSingle = "/qr/single"
	QRBatch  = "/qr/batch"
	QRPrint  = "/qr/print"
	// QRDownloadPattern is the mux pattern for proxied QR downloads.
	QRDownloadPattern = "GET /qr/download/{table}"
)

const (
	Menu = "/menu"
)

// OrderStatus is the transition endpoint for one order.
func OrderStatus(orderID string) string {
	return OrdersPrefix + escapeSegment(orderID) + "/status"
}

// OrdersFiltered is the orders page narrowed by filter.
func OrdersFiltered(base string, filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return base
	}
	return base + "?filter=" + url.QueryEscape(filter)
}

// QRDownload is the download endpoint for one table's QR image.
func QRDownload(table string) string {
	return QR + "/download/" + escapeSegment(table)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
