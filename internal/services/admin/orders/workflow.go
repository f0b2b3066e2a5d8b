package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/notify"
)

// API is the remote order surface the workflow depends on.
type API interface {
	ListOrders(ctx context.Context, params apiclient.ListOrdersParams) ([]apiclient.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (apiclient.Order, error)
}

// Workflow caches the operator's order list and applies transitions.
type Workflow struct {
	api       API
	publisher notify.Publisher
	now       func() time.Time

	mu          sync.RWMutex
	filter      Filter
	cache       []apiclient.Order
	refreshedAt time.Time
}

// NewWorkflow builds a workflow starting on FilterActive. A nil publisher
// disables status notifications.
func NewWorkflow(api API, publisher notify.Publisher) (*Workflow, error) {
	if api == nil {
		return nil, errors.New("order api is required")
	}
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &Workflow{
		api:       api,
		publisher: publisher,
		now:       time.Now,
		filter:    FilterActive,
	}, nil
}

// List selects filter, fetches and replaces the cache, and returns the
// visible orders. On failure the previous cache and filter are kept.
func (w *Workflow) List(ctx context.Context, filter Filter) ([]apiclient.Order, error) {
	if filter == "" {
		filter = FilterActive
	}
	fetched, err := w.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.filter = filter
	w.cache = fetched
	w.refreshedAt = w.now()
	visible := w.snapshotLocked()
	w.mu.Unlock()

	return visible, nil
}

// Refresh re-runs the current filter. It is the poller's fetch function.
// A result is dropped when the filter changed while it was in flight.
func (w *Workflow) Refresh(ctx context.Context) error {
	filter := w.Filter()
	fetched, err := w.fetch(ctx, filter)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.filter != filter {
		return nil
	}
	w.cache = fetched
	w.refreshedAt = w.now()
	return nil
}

// Select switches to filter without fetching. Changing the filter drops the
// cache so the next read loads under the new filter.
func (w *Workflow) Select(filter Filter) {
	if filter == "" {
		filter = FilterActive
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.filter == filter {
		return
	}
	w.filter = filter
	w.cache = nil
	w.refreshedAt = time.Time{}
}

// Transition moves orderID to next. Illegal transitions fail before any
// request is sent. The cache only changes after the server accepts.
func (w *Workflow) Transition(ctx context.Context, orderID string, next Status) (apiclient.Order, error) {
	orderID = strings.TrimSpace(orderID)
	current, ok := w.lookup(orderID)
	if !ok {
		return apiclient.Order{}, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("order %q is not loaded", orderID))
	}
	from := Status(current.Status)
	if !CanTransition(from, next) {
		return apiclient.Order{}, apperrors.WithMetadata(
			apperrors.CodeValidation,
			fmt.Sprintf("cannot move order from %s to %s", from, next),
			map[string]string{"from": string(from), "to": string(next)},
		)
	}

	if _, err := w.api.UpdateOrderStatus(ctx, orderID, string(next)); err != nil {
		return apiclient.Order{}, fmt.Errorf("update order status: %w", err)
	}

	updated := w.applyStatus(orderID, next)
	event := notify.StatusChanged{
		OrderID:     orderID,
		TableNumber: updated.TableNumber,
		From:        string(from),
		To:          string(next),
		ChangedAt:   w.now().UTC(),
	}
	if err := w.publisher.PublishStatusChanged(ctx, event); err != nil {
		log.Printf("admin orders notify %s: %v", orderID, err)
	}
	return updated, nil
}

// Orders returns a copy of the cache. The filter is applied when the cache
// is loaded, so an order moved out of the filter stays listed with its new
// status until the next List or Refresh.
func (w *Workflow) Orders() []apiclient.Order {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshotLocked()
}

// Filter returns the current filter.
func (w *Workflow) Filter() Filter {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.filter
}

// RefreshedAt reports when the cache was last replaced.
func (w *Workflow) RefreshedAt() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.refreshedAt
}

// Reset drops the cache, used on logout.
func (w *Workflow) Reset() {
	w.mu.Lock()
	w.cache = nil
	w.filter = FilterActive
	w.refreshedAt = time.Time{}
	w.mu.Unlock()
}

func (w *Workflow) fetch(ctx context.Context, filter Filter) ([]apiclient.Order, error) {
	fetched, err := w.api.ListOrders(ctx, apiclient.ListOrdersParams{Status: filter.queryStatus()})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	kept := make([]apiclient.Order, 0, len(fetched))
	for _, order := range fetched {
		if filter.Keep(Status(order.Status)) {
			kept = append(kept, order)
		}
	}
	return kept, nil
}

func (w *Workflow) lookup(orderID string) (apiclient.Order, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, order := range w.cache {
		if order.ID == orderID {
			return order, true
		}
	}
	return apiclient.Order{}, false
}

// applyStatus rewrites only the status field of the cached order.
func (w *Workflow) applyStatus(orderID string, next Status) apiclient.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.cache {
		if w.cache[i].ID == orderID {
			w.cache[i].Status = string(next)
			return w.cache[i]
		}
	}
	return apiclient.Order{ID: orderID, Status: string(next)}
}

func (w *Workflow) snapshotLocked() []apiclient.Order {
	out := make([]apiclient.Order, len(w.cache))
	copy(out, w.cache)
	return out
}
