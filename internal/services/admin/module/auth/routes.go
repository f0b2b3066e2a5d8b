package auth

import (
	"net/http"

	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
)

// Service defines sign-in route handlers consumed by this route module.
type Service interface {
	HandleLoginPage(w http.ResponseWriter, r *http.Request)
	HandleLogin(w http.ResponseWriter, r *http.Request)
	HandleLogout(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires login and logout routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, service.HandleLoginPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, service.HandleLogin)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, service.HandleLogout)
}
