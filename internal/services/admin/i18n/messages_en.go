package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "app.name", "Progressive Bar")
	message.SetString(lang, "app.admin", "Admin")
	message.SetString(lang, "language.label", "Language")
	message.SetString(lang, "language.en", "English")
	message.SetString(lang, "language.pt-BR", "Português (Brasil)")

	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.orders", "Orders")
	message.SetString(lang, "nav.menu", "Menu")
	message.SetString(lang, "nav.qr", "QR Codes")
	message.SetString(lang, "nav.logout", "Sign out")
	message.SetString(lang, "nav.signed_in_as", "Signed in as %s")

	message.SetString(lang, "login.title", "Sign in")
	message.SetString(lang, "login.subtitle", "Restaurant admin dashboard")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign in")

	message.SetString(lang, "dashboard.title", "Dashboard")
	message.SetString(lang, "dashboard.loading", "Loading dashboard...")
	message.SetString(lang, "dashboard.stats.pending", "Pending Orders")
	message.SetString(lang, "dashboard.stats.preparing", "Preparing")
	message.SetString(lang, "dashboard.stats.completed_today", "Completed Today")
	message.SetString(lang, "dashboard.stats.avg_wait", "Avg. Wait Time")
	message.SetString(lang, "dashboard.stats.minutes", "%s min")
	message.SetString(lang, "dashboard.recent", "Recent Orders")
	message.SetString(lang, "dashboard.recent.empty", "No orders yet")
	message.SetString(lang, "dashboard.view_all", "View all")
	message.SetString(lang, "dashboard.refreshed", "Updated at %s")
	message.SetString(lang, "dashboard.refresh", "Refresh")

	message.SetString(lang, "orders.title", "Orders")
	message.SetString(lang, "orders.loading", "Loading orders...")
	message.SetString(lang, "orders.empty", "No orders found")
	message.SetString(lang, "orders.refresh", "Refresh")
	message.SetString(lang, "orders.table", "Table %s")
	message.SetString(lang, "orders.subtotal", "Subtotal")
	message.SetString(lang, "orders.tax", "Tax")
	message.SetString(lang, "orders.total", "Total")
	message.SetString(lang, "orders.wait", "Est. wait: %d min")
	message.SetString(lang, "orders.notes", "Notes")
	message.SetString(lang, "orders.completed", "Order completed")
	message.SetString(lang, "orders.updated", "Order for table %s is now %s")
	message.SetString(lang, "orders.filter.active", "Active")
	message.SetString(lang, "orders.filter.all", "All")
	message.SetString(lang, "orders.filter.pending", "Pending")
	message.SetString(lang, "orders.filter.confirmed", "Confirmed")
	message.SetString(lang, "orders.filter.preparing", "Preparing")
	message.SetString(lang, "orders.filter.ready", "Ready")
	message.SetString(lang, "orders.filter.delivered", "Delivered")
	message.SetString(lang, "orders.filter.cancelled", "Cancelled")
	message.SetString(lang, "orders.status.pending", "Pending")
	message.SetString(lang, "orders.status.confirmed", "Confirmed")
	message.SetString(lang, "orders.status.preparing", "Preparing")
	message.SetString(lang, "orders.status.ready", "Ready")
	message.SetString(lang, "orders.status.delivered", "Delivered")
	message.SetString(lang, "orders.status.cancelled", "Cancelled")
	message.SetString(lang, "orders.action.confirm", "Confirm")
	message.SetString(lang, "orders.action.cancel", "Cancel")
	message.SetString(lang, "orders.action.start_preparing", "Start Preparing")
	message.SetString(lang, "orders.action.mark_ready", "Mark Ready")
	message.SetString(lang, "orders.action.mark_delivered", "Mark Delivered")

	message.SetString(lang, "qr.title", "QR Codes")
	message.SetString(lang, "qr.subtitle", "Generate QR codes for table ordering")
	message.SetString(lang, "qr.single.title", "Single Table")
	message.SetString(lang, "qr.single.label", "Table number")
	message.SetString(lang, "qr.single.submit", "Generate")
	message.SetString(lang, "qr.download", "Download")
	message.SetString(lang, "qr.batch.title", "Batch Generate (A4 Print Ready)")
	message.SetString(lang, "qr.batch.hint", "Generates 9 QR codes per A4 page, optimized for printing and cutting")
	message.SetString(lang, "qr.batch.from", "From Table")
	message.SetString(lang, "qr.batch.to", "To Table")
	message.SetString(lang, "qr.batch.submit", "Generate Batch")
	message.SetString(lang, "qr.batch.summary", "%d codes on %d pages")
	message.SetString(lang, "qr.print", "Print All (A4)")
	message.SetString(lang, "qr.empty", "No QR codes generated yet")
	message.SetString(lang, "qr.alt", "QR for %s")

	message.SetString(lang, "menu.title", "Menu")
	message.SetString(lang, "menu.coming_soon", "Menu management is coming soon.")

	message.SetString(lang, "error.authentication", "Login failed")
	message.SetString(lang, "error.session_invalid", "Your session has expired. Please sign in again.")
	message.SetString(lang, "error.network", "Could not reach the server. Showing the last loaded data.")
	message.SetString(lang, "error.validation", "Please check your input.")
	message.SetString(lang, "error.rejected", "The server rejected the request.")
	message.SetString(lang, "error.unknown", "Something went wrong.")
	message.SetString(lang, "error.csrf_invalid", "Invalid request origin")
	message.SetString(lang, "error.method_not_allowed", "Method not allowed")
}
