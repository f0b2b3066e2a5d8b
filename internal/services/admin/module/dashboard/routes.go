package dashboard

import (
	"net/http"

	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
)

// Service defines dashboard route handlers consumed by this route module.
type Service interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleDashboardContent(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires dashboard routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root, service.HandleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardContent, service.HandleDashboardContent)
}
