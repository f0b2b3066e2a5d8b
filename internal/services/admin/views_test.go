package admin

import (
	"context"
	"testing"
)

type fakeRefresher struct {
	name    string
	running bool
	starts  int
	stops   int
}

func (f *fakeRefresher) Name() string { return f.name }

func (f *fakeRefresher) Start(context.Context) {
	f.running = true
	f.starts++
}

func (f *fakeRefresher) Stop() {
	f.running = false
	f.stops++
}

func TestViewsActivateKeepsOneRunning(t *testing.T) {
	t.Parallel()

	orders := &fakeRefresher{name: viewOrders}
	dashboard := &fakeRefresher{name: viewDashboard}
	v := newViewsFrom(context.Background(), orders, dashboard)

	v.Activate(viewOrders)
	if !orders.running || dashboard.running {
		t.Fatalf("orders running = %v, dashboard running = %v", orders.running, dashboard.running)
	}

	v.Activate(viewDashboard)
	if orders.running || !dashboard.running {
		t.Fatalf("after switch: orders running = %v, dashboard running = %v", orders.running, dashboard.running)
	}
	if v.Active() != viewDashboard {
		t.Fatalf("active = %q, want %q", v.Active(), viewDashboard)
	}
}

func TestViewsActivateSameViewDoesNotRestart(t *testing.T) {
	t.Parallel()

	orders := &fakeRefresher{name: viewOrders}
	v := newViewsFrom(context.Background(), orders)

	v.Activate(viewOrders)
	v.Activate(viewOrders)
	if orders.starts != 1 {
		t.Fatalf("starts = %d, want 1", orders.starts)
	}
}

func TestViewsDeactivateAll(t *testing.T) {
	t.Parallel()

	orders := &fakeRefresher{name: viewOrders}
	dashboard := &fakeRefresher{name: viewDashboard}
	v := newViewsFrom(context.Background(), orders, dashboard)

	v.Activate(viewOrders)
	v.DeactivateAll()
	if orders.running || dashboard.running {
		t.Fatal("expected every poller stopped")
	}
	if v.Active() != "" {
		t.Fatalf("active = %q, want none", v.Active())
	}

	v.Activate(viewOrders)
	if !orders.running {
		t.Fatal("expected activation to resume after deactivation")
	}
}

func TestViewsCloseRefusesActivation(t *testing.T) {
	t.Parallel()

	orders := &fakeRefresher{name: viewOrders}
	v := newViewsFrom(context.Background(), orders)

	v.Activate(viewOrders)
	v.Close()
	v.Activate(viewOrders)
	if orders.running {
		t.Fatal("expected closed views to stay stopped")
	}
	if orders.starts != 1 {
		t.Fatalf("starts = %d, want 1", orders.starts)
	}
}

func TestViewsUnknownViewIgnored(t *testing.T) {
	t.Parallel()

	v := newViewsFrom(context.Background())
	v.Activate("menu")
	if v.Active() != "" {
		t.Fatalf("active = %q, want none", v.Active())
	}
}

func TestNilViewsAreNoop(t *testing.T) {
	t.Parallel()

	var v *views
	v.Activate(viewOrders)
	v.DeactivateAll()
	v.Close()
	if v.Active() != "" {
		t.Fatal("expected empty active view")
	}
}
