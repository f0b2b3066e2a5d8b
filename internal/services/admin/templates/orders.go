package templates

import "github.com/a-h/templ"

// OrderItemRow is one formatted order line.
type OrderItemRow struct {
	Quantity     int
	Name         string
	Price        string
	Instructions string
}

// OrderAction is a transition button for an order.
type OrderAction struct {
	Label  string
	Target string
	URL    string
}

// OrderRow is an order formatted for display.
type OrderRow struct {
	ID          string
	Table       string
	Status      string
	StatusLabel string
	Items       []OrderItemRow
	Subtotal    string
	Tax         string
	Total       string
	Wait        string
	Notes       string
	Created     string
	Actions     []OrderAction
	// Completed marks delivered orders, which show a badge instead of actions.
	Completed bool
}

// FilterOption is one entry of the status filter bar.
type FilterOption struct {
	Value  string
	Label  string
	URL    string
	Active bool
}

// OrdersView is the order list page state.
type OrdersView struct {
	Filters        []FilterOption
	Filter         string
	Rows           []OrderRow
	Message        string
	MessageKind    string
	RefreshSeconds int
	ContentURL     string
	RefreshURL     string
}

// OrdersFullPage renders the orders shell; the list loads lazily.
func OrdersFullPage(view OrdersView, page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "orders.title"), OrdersPage(view, page.Loc))
}
