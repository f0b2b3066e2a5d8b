package httpmux

import (
	"io/fs"
	"net/http"

	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, staticHandler)
}

// MountOperational exposes metrics and health checks outside the session
// gate. A nil handler leaves its route unmounted.
func MountOperational(rootMux *http.ServeMux, metrics http.Handler, health http.Handler) {
	if rootMux == nil {
		return
	}
	if metrics != nil {
		rootMux.Handle(http.MethodGet+" "+routepath.Metrics, metrics)
	}
	if health != nil {
		rootMux.Handle(http.MethodGet+" "+routepath.Healthz, health)
	}
}

// MountAdminRoutes mounts admin application routes under root path.
func MountAdminRoutes(rootMux *http.ServeMux, admin http.Handler) {
	if rootMux == nil || admin == nil {
		return
	}
	rootMux.Handle(routepath.Root, admin)
}
