package menu

import (
	"net/http"

	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
)

// Service defines the menu placeholder handler.
type Service interface {
	HandleMenu(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires the menu route into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Menu, service.HandleMenu)
}
