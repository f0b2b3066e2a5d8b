package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleLoginPage(http.ResponseWriter, *http.Request) { f.lastCall = "login_page" }
func (f *fakeService) HandleLogin(http.ResponseWriter, *http.Request)     { f.lastCall = "login" }
func (f *fakeService) HandleLogout(http.ResponseWriter, *http.Request)    { f.lastCall = "logout" }

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantCall string
	}{
		{method: http.MethodGet, path: "/login", wantCode: http.StatusOK, wantCall: "login_page"},
		{method: http.MethodPost, path: "/login", wantCode: http.StatusOK, wantCall: "login"},
		{method: http.MethodPost, path: "/logout", wantCode: http.StatusOK, wantCall: "logout"},
		{method: http.MethodGet, path: "/logout", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			svc.lastCall = ""

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
		})
	}
}
