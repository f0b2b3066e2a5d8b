package poller

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/louisbranch/tableside/internal/platform/telemetry/metrics"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

func newManualPoller(t *testing.T, fetch FetchFunc) (*Poller, *fakeTicker) {
	t.Helper()
	p, err := New("orders", time.Hour, fetch)
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	tick := &fakeTicker{ch: make(chan time.Time)}
	p.newTicker = func(time.Duration) ticker { return tick }
	return p, tick
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func metricsBody(t *testing.T, registry *metrics.Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	registry.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	return string(body)
}

func TestNewValidatesInputs(t *testing.T) {
	if _, err := New("x", 0, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected error for zero interval")
	}
	if _, err := New("x", time.Second, nil); err == nil {
		t.Fatal("expected error for nil fetch")
	}
}

func TestStartFetchesImmediatelyAndOnTick(t *testing.T) {
	var calls atomic.Int32
	p, tick := newManualPoller(t, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	p.Start(context.Background())
	defer p.Stop()
	waitFor(t, func() bool { return calls.Load() == 1 })

	tick.ch <- time.Now()
	waitFor(t, func() bool { return calls.Load() == 2 })

	if !p.Running() {
		t.Fatal("expected poller running")
	}
}

func TestInFlightGuardSkipsOverlappingTicks(t *testing.T) {
	registry := metrics.New()
	release := make(chan struct{})
	var calls atomic.Int32
	p, tick := newManualPoller(t, func(ctx context.Context) error {
		calls.Add(1)
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	})
	p.WithMetrics(registry)

	p.Start(context.Background())
	waitFor(t, func() bool { return calls.Load() == 1 })

	// The second send only completes after the first tick was handled.
	tick.ch <- time.Now()
	tick.ch <- time.Now()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1", got)
	}
	close(release)
	p.Stop()

	body := metricsBody(t, registry)
	if !strings.Contains(body, `tableside_poller_skipped_ticks_total{poller="orders"} 2`) {
		t.Fatalf("expected two skipped ticks in metrics:\n%s", body)
	}
}

func TestFetchErrorsAreSwallowed(t *testing.T) {
	registry := metrics.New()
	var calls atomic.Int32
	p, tick := newManualPoller(t, func(context.Context) error {
		calls.Add(1)
		return errors.New("offline")
	})
	p.WithMetrics(registry)

	p.Start(context.Background())
	waitFor(t, func() bool { return calls.Load() == 1 })
	waitFor(t, func() bool { return !p.inFlight.Load() })
	tick.ch <- time.Now()
	waitFor(t, func() bool { return calls.Load() == 2 })
	waitFor(t, func() bool { return !p.inFlight.Load() })
	p.Stop()

	if !strings.Contains(metricsBody(t, registry), `tableside_poller_failures_total{poller="orders"} 2`) {
		t.Fatal("expected two failures recorded")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p, tick := newManualPoller(t, func(context.Context) error { return nil })

	p.Stop()
	p.Start(context.Background())
	p.Stop()
	p.Stop()

	if p.Running() {
		t.Fatal("expected poller stopped")
	}
	if !tick.stopped.Load() {
		t.Fatal("ticker not stopped")
	}
}

func TestStartIsNoopWhileRunning(t *testing.T) {
	var calls atomic.Int32
	p, _ := newManualPoller(t, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	p.Start(context.Background())
	p.Start(context.Background())
	waitFor(t, func() bool { return calls.Load() >= 1 })
	p.Stop()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1", got)
	}
}

func TestRestartAfterStop(t *testing.T) {
	var calls atomic.Int32
	p, _ := newManualPoller(t, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	p.Start(context.Background())
	waitFor(t, func() bool { return calls.Load() == 1 })
	p.Stop()

	p.Start(context.Background())
	waitFor(t, func() bool { return calls.Load() == 2 })
	p.Stop()
}

func TestStopCancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	p, _ := newManualPoller(t, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	p.Start(context.Background())
	<-started

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not return")
	}
}

func TestParentContextEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	p, _ := newManualPoller(t, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	p.Start(ctx)
	waitFor(t, func() bool { return calls.Load() == 1 })
	cancel()
	p.Stop()
}

func TestRealTickerFires(t *testing.T) {
	var calls atomic.Int32
	p, err := New("dashboard", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	p.Start(context.Background())
	defer p.Stop()

	waitFor(t, func() bool { return calls.Load() >= 3 })
	if p.Name() != "dashboard" {
		t.Fatalf("name = %q", p.Name())
	}
}
