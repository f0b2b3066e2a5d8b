package admin

import (
	"net/http"

	authmodule "github.com/louisbranch/tableside/internal/services/admin/module/auth"
	dashboardmodule "github.com/louisbranch/tableside/internal/services/admin/module/dashboard"
	menumodule "github.com/louisbranch/tableside/internal/services/admin/module/menu"
	ordersmodule "github.com/louisbranch/tableside/internal/services/admin/module/orders"
	qrmodule "github.com/louisbranch/tableside/internal/services/admin/module/qr"
)

type authModuleService struct {
	handler *Handler
}

func newAuthModuleService(h *Handler) authmodule.Service {
	if h == nil {
		return nil
	}
	return authModuleService{handler: h}
}

func (s authModuleService) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleLoginPage(w, r)
}

func (s authModuleService) HandleLogin(w http.ResponseWriter, r *http.Request) {
	s.handler.handleLogin(w, r)
}

func (s authModuleService) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s.handler.handleLogout(w, r)
}

type dashboardModuleService struct {
	handler *Handler
}

func newDashboardModuleService(h *Handler) dashboardmodule.Service {
	if h == nil {
		return nil
	}
	return dashboardModuleService{handler: h}
}

func (s dashboardModuleService) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboard(w, r)
}

func (s dashboardModuleService) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboardContent(w, r)
}

type ordersModuleService struct {
	handler *Handler
}

func newOrdersModuleService(h *Handler) ordersmodule.Service {
	if h == nil {
		return nil
	}
	return ordersModuleService{handler: h}
}

func (s ordersModuleService) HandleOrders(w http.ResponseWriter, r *http.Request) {
	s.handler.handleOrders(w, r)
}

func (s ordersModuleService) HandleOrdersContent(w http.ResponseWriter, r *http.Request) {
	s.handler.handleOrdersContent(w, r)
}

func (s ordersModuleService) HandleOrderStatus(w http.ResponseWriter, r *http.Request, orderID string) {
	s.handler.handleOrderStatus(w, r, orderID)
}

type qrModuleService struct {
	handler *Handler
}

func newQRModuleService(h *Handler) qrmodule.Service {
	if h == nil {
		return nil
	}
	return qrModuleService{handler: h}
}

func (s qrModuleService) HandleQR(w http.ResponseWriter, r *http.Request) {
	s.handler.handleQR(w, r)
}

func (s qrModuleService) HandleQRSingle(w http.ResponseWriter, r *http.Request) {
	s.handler.handleQRSingle(w, r)
}

func (s qrModuleService) HandleQRBatch(w http.ResponseWriter, r *http.Request) {
	s.handler.handleQRBatch(w, r)
}

func (s qrModuleService) HandleQRPrint(w http.ResponseWriter, r *http.Request) {
	s.handler.handleQRPrint(w, r)
}

func (s qrModuleService) HandleQRDownload(w http.ResponseWriter, r *http.Request, table string) {
	s.handler.handleQRDownload(w, r, table)
}

type menuModuleService struct {
	handler *Handler
}

func newMenuModuleService(h *Handler) menumodule.Service {
	if h == nil {
		return nil
	}
	return menuModuleService{handler: h}
}

func (s menuModuleService) HandleMenu(w http.ResponseWriter, r *http.Request) {
	s.handler.handleMenu(w, r)
}
