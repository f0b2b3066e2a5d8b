package admin

import (
	"context"
	"log"
	"sync"

	"github.com/louisbranch/tableside/internal/services/admin/poller"
)

const (
	viewDashboard = "dashboard"
	viewOrders    = "orders"
)

// refresher is the part of a poller the activator drives.
type refresher interface {
	Name() string
	Start(ctx context.Context)
	Stop()
}

// views keeps at most one view's poller running.
type views struct {
	ctx context.Context

	mu       sync.Mutex
	pollers  map[string]refresher
	active   string
	disabled bool
}

func newViews(ctx context.Context, pollers ...*poller.Poller) *views {
	refreshers := make([]refresher, 0, len(pollers))
	for _, p := range pollers {
		if p != nil {
			refreshers = append(refreshers, p)
		}
	}
	return newViewsFrom(ctx, refreshers...)
}

func newViewsFrom(ctx context.Context, refreshers ...refresher) *views {
	if ctx == nil {
		ctx = context.Background()
	}
	v := &views{ctx: ctx, pollers: make(map[string]refresher, len(refreshers))}
	for _, r := range refreshers {
		v.pollers[r.Name()] = r
	}
	return v
}

// Activate starts name's poller and stops whichever view was active before.
func (v *views) Activate(name string) {
	if v == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disabled || v.active == name {
		return
	}
	next, ok := v.pollers[name]
	if !ok {
		log.Printf("admin views: unknown view %q", name)
		return
	}
	if current, ok := v.pollers[v.active]; ok {
		current.Stop()
	}
	next.Start(v.ctx)
	v.active = name
}

// DeactivateAll stops every poller. Activation resumes on the next page view.
func (v *views) DeactivateAll() {
	if v == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopLocked()
}

// Close stops every poller and refuses later activations.
func (v *views) Close() {
	if v == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopLocked()
	v.disabled = true
}

// Active names the running view, or "" when none is.
func (v *views) Active() string {
	if v == nil {
		return ""
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

func (v *views) stopLocked() {
	for _, p := range v.pollers {
		p.Stop()
	}
	v.active = ""
}
