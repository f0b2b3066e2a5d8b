// Package poller runs a fetch function on a fixed interval with at most one
// fetch in flight.
package poller

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/louisbranch/tableside/internal/platform/telemetry/metrics"
)

// FetchFunc refreshes one view-model.
type FetchFunc func(ctx context.Context) error

// Poller repeatedly calls a FetchFunc.
type Poller struct {
	name     string
	interval time.Duration
	fetch    FetchFunc
	metrics  *metrics.Registry

	// newTicker is swapped in tests.
	newTicker func(time.Duration) ticker

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	inFlight atomic.Bool
	wg       sync.WaitGroup
}

type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// New builds a stopped poller.
func New(name string, interval time.Duration, fetch FetchFunc) (*Poller, error) {
	if interval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}
	if fetch == nil {
		return nil, errors.New("fetch function is required")
	}
	return &Poller{
		name:     name,
		interval: interval,
		fetch:    fetch,
		newTicker: func(d time.Duration) ticker {
			return timeTicker{time.NewTicker(d)}
		},
	}, nil
}

// WithMetrics records runs, skips and failures in registry.
func (p *Poller) WithMetrics(registry *metrics.Registry) *Poller {
	p.metrics = registry
	return p
}

// Name identifies the poller in logs and metrics.
func (p *Poller) Name() string {
	return p.name
}

// Start fetches immediately and then on every tick until Stop is called or
// ctx ends. Starting a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	t := p.newTicker(p.interval)
	go func() {
		defer close(done)
		defer t.Stop()
		p.tick(loopCtx)
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C():
				p.tick(loopCtx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it and any in-flight fetch to exit.
// It is safe to call on a stopped or never-started poller.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.wg.Wait()
}

// Running reports whether the loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// tick starts a fetch unless one is still running.
func (p *Poller) tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.metrics.PollSkipped(p.name)
		log.Printf("admin poller %s: skipped tick, fetch in flight", p.name)
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.inFlight.Store(false)
		p.metrics.PollRun(p.name)
		if err := p.fetch(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			p.metrics.PollFailed(p.name)
			log.Printf("admin poller %s: %v", p.name, err)
		}
	}()
}
