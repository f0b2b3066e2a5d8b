package apiclient

import (
	"strings"
	"time"
)

// User is the operator identity returned by the API.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResult carries the credential and identity issued at login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// OrderItem is one line of an order. Price is the unit price.
type OrderItem struct {
	MenuItemID          string  `json:"menuItemId"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

// Order is the server-owned order record. Total is trusted as subtotal+tax.
type Order struct {
	ID                string      `json:"id"`
	TableNumber       string      `json:"tableNumber"`
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Tax               float64     `json:"tax"`
	Total             float64     `json:"total"`
	Status            string      `json:"status"`
	EstimatedWaitTime int         `json:"estimatedWaitTime"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         string      `json:"createdAt"`
}

// CreatedTime parses CreatedAt, reporting false when it is absent or malformed.
func (o Order) CreatedTime() (time.Time, bool) {
	value := strings.TrimSpace(o.CreatedAt)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// DashboardStats is the analytics snapshot shown on the dashboard.
type DashboardStats struct {
	PendingOrders   int     `json:"pendingOrders"`
	PreparingOrders int     `json:"preparingOrders"`
	CompletedToday  int     `json:"completedToday"`
	AverageWaitTime float64 `json:"averageWaitTime"`
}

// QRArtifact is a server-generated QR code for one table.
// URL is the ordering link the code encodes and QRCodeURL the image.
type QRArtifact struct {
	TableNumber string `json:"tableNumber"`
	URL         string `json:"url"`
	QRCodeURL   string `json:"qrCodeUrl"`
}

// ListOrdersParams narrows an order listing. Zero values are omitted.
type ListOrdersParams struct {
	Status string
	Limit  int
}
