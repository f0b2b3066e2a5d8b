package orders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/notify"
)

type fakeAPI struct {
	mu        sync.Mutex
	orders    []apiclient.Order
	listErr   error
	updateErr error
	params    []apiclient.ListOrdersParams
	updates   []string
	// onList runs after the request is recorded.
	onList func()
}

func (f *fakeAPI) ListOrders(_ context.Context, params apiclient.ListOrdersParams) ([]apiclient.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = append(f.params, params)
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]apiclient.Order, 0, len(f.orders))
	for _, order := range f.orders {
		if params.Status == "" || order.Status == params.Status {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeAPI) UpdateOrderStatus(_ context.Context, orderID, status string) (apiclient.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, orderID+"->"+status)
	if f.updateErr != nil {
		return apiclient.Order{}, f.updateErr
	}
	return apiclient.Order{ID: orderID, Status: status}, nil
}

type fakePublisher struct {
	events []notify.StatusChanged
	err    error
}

func (f *fakePublisher) PublishStatusChanged(_ context.Context, event notify.StatusChanged) error {
	f.events = append(f.events, event)
	return f.err
}

// tenOrders has three pending orders among ten.
func tenOrders() []apiclient.Order {
	statuses := []Status{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered,
		StatusCancelled, StatusPending, StatusPreparing, StatusPending, StatusDelivered,
	}
	orders := make([]apiclient.Order, 0, len(statuses))
	for i, status := range statuses {
		orders = append(orders, apiclient.Order{
			ID:          fmt.Sprintf("o%d", i+1),
			TableNumber: fmt.Sprintf("T%02d", i+1),
			Status:      string(status),
			Items:       []apiclient.OrderItem{{MenuItemID: "m1", Name: "Fries", Price: 4.5, Quantity: 2}},
			Subtotal:    9,
			Tax:         0.9,
			Total:       9.9,
		})
	}
	return orders
}

func newTestWorkflow(t *testing.T, api *fakeAPI, publisher notify.Publisher) *Workflow {
	t.Helper()
	workflow, err := NewWorkflow(api, publisher)
	if err != nil {
		t.Fatalf("new workflow: %v", err)
	}
	return workflow
}

func TestNewWorkflowRequiresAPI(t *testing.T) {
	if _, err := NewWorkflow(nil, nil); err == nil {
		t.Fatal("expected error for missing api")
	}
}

func TestListPendingReturnsThreeOfTen(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)

	got, err := workflow.List(context.Background(), Filter(StatusPending))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("pending orders = %d, want 3", len(got))
	}
	if api.params[0].Status != "pending" {
		t.Fatalf("status param = %q, want pending", api.params[0].Status)
	}
}

func TestListActiveFiltersClientSide(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)

	got, err := workflow.List(context.Background(), FilterActive)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if api.params[0].Status != "" {
		t.Fatalf("status param = %q, want none", api.params[0].Status)
	}
	if len(got) != 7 {
		t.Fatalf("active orders = %d, want 7", len(got))
	}
	for _, order := range got {
		if !Status(order.Status).Active() {
			t.Fatalf("inactive order %s in active list", order.ID)
		}
	}
}

func TestListAllKeepsEverything(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)

	got, err := workflow.List(context.Background(), FilterAll)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("all orders = %d, want 10", len(got))
	}
	if workflow.Filter() != FilterAll {
		t.Fatalf("filter = %q", workflow.Filter())
	}
}

func TestRefreshFailureKeepsCache(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	if _, err := workflow.List(context.Background(), FilterAll); err != nil {
		t.Fatalf("list: %v", err)
	}
	refreshed := workflow.RefreshedAt()

	api.listErr = apperrors.New(apperrors.CodeNetwork, "offline")
	err := workflow.Refresh(context.Background())
	if !errors.Is(err, apperrors.ErrNetwork) {
		t.Fatalf("err = %v, want network", err)
	}
	if len(workflow.Orders()) != 10 {
		t.Fatalf("cache = %d orders, want 10", len(workflow.Orders()))
	}
	if !workflow.RefreshedAt().Equal(refreshed) {
		t.Fatal("refreshedAt changed on failure")
	}
}

func TestRefreshReusesCurrentFilter(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	if _, err := workflow.List(context.Background(), Filter(StatusReady)); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := workflow.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(api.params) != 2 || api.params[1].Status != "ready" {
		t.Fatalf("params = %+v", api.params)
	}
}

func TestTransitionPendingToReadyRejectedLocally(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	if _, err := workflow.List(context.Background(), FilterAll); err != nil {
		t.Fatalf("list: %v", err)
	}
	before := workflow.Orders()

	_, err := workflow.Transition(context.Background(), "o1", StatusReady)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if len(api.updates) != 0 {
		t.Fatalf("updates = %v, want none", api.updates)
	}
	after := workflow.Orders()
	for i := range before {
		if before[i].Status != after[i].Status {
			t.Fatalf("order %s changed from %s to %s", before[i].ID, before[i].Status, after[i].Status)
		}
	}
}

func TestTransitionUnknownOrder(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)

	_, err := workflow.Transition(context.Background(), "missing", StatusConfirmed)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if len(api.updates) != 0 {
		t.Fatal("request sent for unknown order")
	}
}

func TestTransitionSuccessUpdatesOnlyStatus(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	publisher := &fakePublisher{}
	workflow := newTestWorkflow(t, api, publisher)
	if _, err := workflow.List(context.Background(), FilterAll); err != nil {
		t.Fatalf("list: %v", err)
	}

	updated, err := workflow.Transition(context.Background(), "o1", StatusConfirmed)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if updated.Status != string(StatusConfirmed) || updated.Total != 9.9 || len(updated.Items) != 1 {
		t.Fatalf("updated = %+v", updated)
	}
	if api.updates[0] != "o1->confirmed" {
		t.Fatalf("updates = %v", api.updates)
	}
	for _, order := range workflow.Orders() {
		if order.ID == "o1" && order.Status != string(StatusConfirmed) {
			t.Fatalf("cached status = %s", order.Status)
		}
	}
	if len(publisher.events) != 1 {
		t.Fatalf("events = %d, want 1", len(publisher.events))
	}
	event := publisher.events[0]
	if event.From != "pending" || event.To != "confirmed" || event.TableNumber != "T01" {
		t.Fatalf("event = %+v", event)
	}
}

func TestTransitionServerFailureLeavesCache(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	publisher := &fakePublisher{}
	workflow := newTestWorkflow(t, api, publisher)
	if _, err := workflow.List(context.Background(), FilterAll); err != nil {
		t.Fatalf("list: %v", err)
	}
	api.updateErr = apperrors.New(apperrors.CodeRejected, "Order locked")

	_, err := workflow.Transition(context.Background(), "o1", StatusConfirmed)
	if !errors.Is(err, apperrors.ErrRejected) {
		t.Fatalf("err = %v, want rejected", err)
	}
	if got := workflow.Orders()[0].Status; got != string(StatusPending) {
		t.Fatalf("cached status = %s, want pending", got)
	}
	if len(publisher.events) != 0 {
		t.Fatal("published event for failed transition")
	}
}

func TestTransitionPublishFailureIsIgnored(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, &fakePublisher{err: errors.New("broker down")})
	if _, err := workflow.List(context.Background(), FilterAll); err != nil {
		t.Fatalf("list: %v", err)
	}

	if _, err := workflow.Transition(context.Background(), "o4", StatusDelivered); err != nil {
		t.Fatalf("transition: %v", err)
	}
}

func TestTransitionKeepsOrderListedUntilRefresh(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	pending, err := workflow.List(context.Background(), Filter(StatusPending))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("pending = %d, want 3", len(pending))
	}

	if _, err := workflow.Transition(context.Background(), "o1", StatusConfirmed); err != nil {
		t.Fatalf("transition: %v", err)
	}
	api.mu.Lock()
	api.orders[0].Status = string(StatusConfirmed)
	api.mu.Unlock()

	listed := workflow.Orders()
	if len(listed) != 3 {
		t.Fatalf("after confirm = %d orders, want 3", len(listed))
	}
	if listed[0].ID != "o1" || listed[0].Status != string(StatusConfirmed) {
		t.Fatalf("first order = %s/%s, want o1/confirmed", listed[0].ID, listed[0].Status)
	}

	if err := workflow.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	for _, order := range workflow.Orders() {
		if order.ID == "o1" {
			t.Fatal("confirmed order still listed under pending after refresh")
		}
	}
	if got := len(workflow.Orders()); got != 2 {
		t.Fatalf("after refresh = %d orders, want 2", got)
	}
}

func TestTransitionToDeliveredStaysUnderActiveFilter(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	if _, err := workflow.List(context.Background(), FilterActive); err != nil {
		t.Fatalf("list: %v", err)
	}
	before := len(workflow.Orders())

	if _, err := workflow.Transition(context.Background(), "o4", StatusDelivered); err != nil {
		t.Fatalf("transition: %v", err)
	}
	orders := workflow.Orders()
	if len(orders) != before {
		t.Fatalf("orders = %d, want %d", len(orders), before)
	}
	for _, order := range orders {
		if order.ID == "o4" && order.Status != string(StatusDelivered) {
			t.Fatalf("o4 status = %s, want delivered", order.Status)
		}
	}
}

func TestReset(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	if _, err := workflow.List(context.Background(), FilterAll); err != nil {
		t.Fatalf("list: %v", err)
	}
	workflow.Reset()
	if len(workflow.Orders()) != 0 || workflow.Filter() != FilterActive {
		t.Fatal("reset did not clear workflow")
	}
}

func TestSelectDropsCacheOnChange(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	if _, err := workflow.List(context.Background(), FilterActive); err != nil {
		t.Fatalf("list: %v", err)
	}

	workflow.Select(FilterActive)
	if len(workflow.Orders()) == 0 {
		t.Fatal("selecting the current filter must keep the cache")
	}

	workflow.Select(Filter(StatusPending))
	if got := workflow.Filter(); got != Filter(StatusPending) {
		t.Fatalf("filter = %q, want pending", got)
	}
	if len(workflow.Orders()) != 0 {
		t.Fatal("expected cache dropped after filter change")
	}
	if !workflow.RefreshedAt().IsZero() {
		t.Fatal("expected refreshedAt cleared")
	}
	if len(api.params) != 1 {
		t.Fatalf("select must not fetch, got %d requests", len(api.params))
	}
}

func TestRefreshDropsResultWhenFilterChanged(t *testing.T) {
	api := &fakeAPI{orders: tenOrders()}
	workflow := newTestWorkflow(t, api, nil)
	api.onList = func() {
		workflow.Select(Filter(StatusPending))
	}

	if err := workflow.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := workflow.Filter(); got != Filter(StatusPending) {
		t.Fatalf("filter = %q, want pending", got)
	}
	if len(workflow.Orders()) != 0 {
		t.Fatal("stale active results must not populate the pending cache")
	}
}
