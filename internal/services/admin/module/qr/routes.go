package qr

import (
	"net/http"

	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
)

// Service defines QR route handlers consumed by this route module.
type Service interface {
	HandleQR(w http.ResponseWriter, r *http.Request)
	HandleQRSingle(w http.ResponseWriter, r *http.Request)
	HandleQRBatch(w http.ResponseWriter, r *http.Request)
	HandleQRPrint(w http.ResponseWriter, r *http.Request)
	HandleQRDownload(w http.ResponseWriter, r *http.Request, table string)
}

// RegisterRoutes wires QR routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.QR, service.HandleQR)
	mux.HandleFunc(http.MethodPost+" "+routepath.QRSingle, service.HandleQRSingle)
	mux.HandleFunc(http.MethodPost+" "+routepath.QRBatch, service.HandleQRBatch)
	mux.HandleFunc(http.MethodGet+" "+routepath.QRPrint, service.HandleQRPrint)
	mux.HandleFunc(routepath.QRDownloadPattern, func(w http.ResponseWriter, r *http.Request) {
		service.HandleQRDownload(w, r, r.PathValue("table"))
	})
}
