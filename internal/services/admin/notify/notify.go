// Package notify publishes order status changes made from the dashboard.
package notify

import (
	"context"
	"time"
)

// StatusChanged is emitted after the server accepts an order transition.
type StatusChanged struct {
	OrderID     string    `json:"orderId"`
	TableNumber string    `json:"tableNumber"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	ChangedAt   time.Time `json:"changedAt"`
}

// Publisher delivers status change events.
type Publisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChanged) error
}

// Nop discards every event.
type Nop struct{}

// PublishStatusChanged implements Publisher.
func (Nop) PublishStatusChanged(context.Context, StatusChanged) error { return nil }
