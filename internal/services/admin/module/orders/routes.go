package orders

import (
	"net/http"

	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
)

// Service defines order route handlers consumed by this route module.
type Service interface {
	HandleOrders(w http.ResponseWriter, r *http.Request)
	HandleOrdersContent(w http.ResponseWriter, r *http.Request)
	HandleOrderStatus(w http.ResponseWriter, r *http.Request, orderID string)
}

// RegisterRoutes wires order routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Orders, service.HandleOrders)
	mux.HandleFunc(http.MethodGet+" "+routepath.OrdersContent, service.HandleOrdersContent)
	mux.HandleFunc(routepath.OrderStatusPattern, func(w http.ResponseWriter, r *http.Request) {
		service.HandleOrderStatus(w, r, r.PathValue("id"))
	})
}
