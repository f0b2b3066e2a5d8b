package apiclient

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
)

type orderList struct {
	Orders []Order `json:"orders"`
}

type statusUpdate struct {
	Status string `json:"status"`
}

// ListOrders fetches orders, optionally narrowed by status and capped by limit.
func (c *Client) ListOrders(ctx context.Context, params ListOrdersParams) ([]Order, error) {
	var list orderList
	err := c.call(ctx, opListOrders, c.credential(), http.MethodGet, "/admin/orders", func(req *resty.Request) {
		if status := strings.TrimSpace(params.Status); status != "" {
			req.SetQueryParam("status", status)
		}
		if params.Limit > 0 {
			req.SetQueryParam("limit", strconv.Itoa(params.Limit))
		}
	}, &list)
	if err != nil {
		return nil, err
	}
	if list.Orders == nil {
		list.Orders = []Order{}
	}
	return list.Orders, nil
}

// UpdateOrderStatus asks the server to move an order to status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return Order{}, apperrors.New(apperrors.CodeValidation, "order id is required")
	}
	var order Order
	err := c.call(ctx, opUpdateOrder, c.credential(), http.MethodPatch, "/admin/orders/{id}", func(req *resty.Request) {
		req.SetPathParam("id", orderID)
		req.SetBody(statusUpdate{Status: status})
	}, &order)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// Analytics fetches the dashboard statistics snapshot.
func (c *Client) Analytics(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.call(ctx, opAnalytics, c.credential(), http.MethodGet, "/admin/analytics", nil, &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
