// Package dashboard keeps the operator overview: analytics counters and the
// most recent orders.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"golang.org/x/sync/errgroup"
)

// RecentLimit caps the recent orders shown on the dashboard.
const RecentLimit = 10

// API is the remote surface the dashboard reads.
type API interface {
	Analytics(ctx context.Context) (apiclient.DashboardStats, error)
	ListOrders(ctx context.Context, params apiclient.ListOrdersParams) ([]apiclient.Order, error)
}

// Snapshot is one complete dashboard refresh.
type Snapshot struct {
	Stats        apiclient.DashboardStats
	RecentOrders []apiclient.Order
	RefreshedAt  time.Time
}

// Loaded reports whether any refresh has succeeded.
func (s Snapshot) Loaded() bool {
	return !s.RefreshedAt.IsZero()
}

// Service caches the latest dashboard snapshot.
type Service struct {
	api API
	now func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewService builds a dashboard service with an empty snapshot.
func NewService(api API) (*Service, error) {
	if api == nil {
		return nil, errors.New("dashboard api is required")
	}
	return &Service{api: api, now: time.Now}, nil
}

// Refresh fetches analytics and recent orders concurrently and replaces the
// snapshot only when both succeed.
func (s *Service) Refresh(ctx context.Context) error {
	var (
		stats  apiclient.DashboardStats
		recent []apiclient.Order
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		stats, err = s.api.Analytics(groupCtx)
		if err != nil {
			return fmt.Errorf("load analytics: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		recent, err = s.api.ListOrders(groupCtx, apiclient.ListOrdersParams{Limit: RecentLimit})
		if err != nil {
			return fmt.Errorf("load recent orders: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return err
	}
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	s.mu.Lock()
	s.snapshot = Snapshot{Stats: stats, RecentOrders: recent, RefreshedAt: s.now()}
	s.mu.Unlock()
	return nil
}

// Snapshot returns the latest snapshot. Before the first successful refresh
// the stats are all zero.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.snapshot
	snapshot.RecentOrders = append([]apiclient.Order(nil), s.snapshot.RecentOrders...)
	return snapshot
}

// Reset discards the snapshot, used on logout.
func (s *Service) Reset() {
	s.mu.Lock()
	s.snapshot = Snapshot{}
	s.mu.Unlock()
}
