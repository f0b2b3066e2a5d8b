package qr

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall  string
	lastTable string
}

func (f *fakeService) HandleQR(http.ResponseWriter, *http.Request)       { f.lastCall = "qr" }
func (f *fakeService) HandleQRSingle(http.ResponseWriter, *http.Request) { f.lastCall = "qr_single" }
func (f *fakeService) HandleQRBatch(http.ResponseWriter, *http.Request)  { f.lastCall = "qr_batch" }
func (f *fakeService) HandleQRPrint(http.ResponseWriter, *http.Request)  { f.lastCall = "qr_print" }

func (f *fakeService) HandleQRDownload(_ http.ResponseWriter, _ *http.Request, table string) {
	f.lastCall = "qr_download"
	f.lastTable = table
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method    string
		path      string
		wantCode  int
		wantCall  string
		wantTable string
	}{
		{method: http.MethodGet, path: "/qr", wantCode: http.StatusOK, wantCall: "qr"},
		{method: http.MethodPost, path: "/qr/single", wantCode: http.StatusOK, wantCall: "qr_single"},
		{method: http.MethodPost, path: "/qr/batch", wantCode: http.StatusOK, wantCall: "qr_batch"},
		{method: http.MethodGet, path: "/qr/print", wantCode: http.StatusOK, wantCall: "qr_print"},
		{method: http.MethodGet, path: "/qr/download/12", wantCode: http.StatusOK, wantCall: "qr_download", wantTable: "12"},
		{method: http.MethodGet, path: "/qr/single", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			svc.lastCall = ""
			svc.lastTable = ""

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastTable != tc.wantTable {
				t.Fatalf("table = %q, want %q", svc.lastTable, tc.wantTable)
			}
		})
	}
}
