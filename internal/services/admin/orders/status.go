package orders

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

// transitions is the complete table of legal moves. Statuses with no entry
// are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusDelivered},
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// Active reports whether an order in s still needs kitchen attention.
func (s Status) Active() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady:
		return true
	default:
		return false
	}
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Action is one operator-facing transition offered for an order.
type Action struct {
	Target Status
	// LabelKey is the i18n key for the button label.
	LabelKey string
}

var actionLabels = map[Status]string{
	StatusConfirmed: "orders.action.confirm",
	StatusCancelled: "orders.action.cancel",
	StatusPreparing: "orders.action.start_preparing",
	StatusReady:     "orders.action.mark_ready",
	StatusDelivered: "orders.action.mark_delivered",
}

// NextActions returns the transitions available from status, in display
// order. Terminal and unknown statuses have none.
func NextActions(status Status) []Action {
	targets := transitions[status]
	if len(targets) == 0 {
		return nil
	}
	actions := make([]Action, 0, len(targets))
	for _, target := range targets {
		actions = append(actions, Action{Target: target, LabelKey: actionLabels[target]})
	}
	return actions
}

// Filter selects which orders the list shows.
type Filter string

const (
	// FilterActive keeps pending, confirmed, preparing and ready orders.
	FilterActive Filter = "active"
	// FilterAll keeps every order.
	FilterAll Filter = "all"
)

// FilterOptions are the filters offered on the orders page.
var FilterOptions = []Filter{
	FilterActive,
	FilterAll,
	Filter(StatusPending),
	Filter(StatusPreparing),
	Filter(StatusReady),
	Filter(StatusDelivered),
}

// ParseFilter accepts "active", "all" or a concrete status. Empty input
// selects FilterActive.
func ParseFilter(raw string) (Filter, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return FilterActive, nil
	case value == string(FilterActive), value == string(FilterAll):
		return Filter(value), nil
	case Status(value).Valid():
		return Filter(value), nil
	default:
		return "", apperrors.New(apperrors.CodeValidation, fmt.Sprintf("unknown order filter %q", raw))
	}
}

// queryStatus is the status sent upstream for f, or "" for none.
func (f Filter) queryStatus() string {
	switch f {
	case FilterActive, FilterAll, "":
		return ""
	default:
		return string(f)
	}
}

// Keep reports whether an order in status is visible under f.
func (f Filter) Keep(status Status) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive, "":
		return status.Active()
	default:
		return status == Status(f)
	}
}

// LabelKey is the i18n key for the filter's label.
func (f Filter) LabelKey() string {
	return "orders.filter." + string(f)
}

// LabelKey is the i18n key for the status's badge.
func (s Status) LabelKey() string {
	return "orders.status." + string(s)
}
