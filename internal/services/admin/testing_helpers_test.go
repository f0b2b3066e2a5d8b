package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/dashboard"
	"github.com/louisbranch/tableside/internal/services/admin/notify"
	"github.com/louisbranch/tableside/internal/services/admin/orders"
	"github.com/louisbranch/tableside/internal/services/admin/qr"
	"github.com/louisbranch/tableside/internal/services/admin/session"
	"github.com/louisbranch/tableside/internal/services/admin/storage"
)

const testToken = "tok-operator"

type memoryCredentials struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memoryCredentials) GetCredential(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (m *memoryCredentials) PutCredential(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryCredentials) DeleteCredential(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryCredentials) stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[storage.CredentialKey]
}

// fakeOrderAPI answers the admin endpoints the dashboard calls.
type fakeOrderAPI struct {
	mu         sync.Mutex
	orders     []apiclient.Order
	rejectAuth bool
	// token is issued on login; empty means testToken.
	token      string
	listCalls  int
	patches    []string
}

func (f *fakeOrderAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token := f.token
	if token == "" {
		token = testToken
	}
	path := strings.TrimPrefix(r.URL.Path, "/api")
	if path != "/admin/login" && (f.rejectAuth || r.Header.Get("Authorization") != "Bearer "+token) {
		writeEnvelope(w, http.StatusUnauthorized, `{"success":false,"error":"Unauthorized"}`)
		return
	}

	switch {
	case path == "/admin/login":
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			writeEnvelope(w, http.StatusUnauthorized, `{"success":false,"error":"Invalid credentials"}`)
			return
		}
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"token":"`+token+`","user":{"id":"u1","email":"`+body.Email+`","name":"Ada"}}}`)
	case path == "/admin/me":
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"id":"u1","email":"ada@example.com","name":"Ada"}}`)
	case path == "/admin/orders" && r.Method == http.MethodGet:
		f.listCalls++
		data, _ := json.Marshal(map[string]any{"orders": f.orders})
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":`+string(data)+`}`)
	case strings.HasPrefix(path, "/admin/orders/") && r.Method == http.MethodPatch:
		id := strings.TrimPrefix(path, "/admin/orders/")
		var body struct {
			Status string `json:"status"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.patches = append(f.patches, id+"="+body.Status)
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"id":"`+id+`","status":"`+body.Status+`"}}`)
	case path == "/admin/analytics":
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"pendingOrders":3,"preparingOrders":1,"completedToday":12,"averageWaitTime":14.5}}`)
	case path == "/admin/qr/generate":
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"tableNumber":"T05","url":"https://bar.example/menu?table=T05","qrCodeUrl":"data:image/png;base64,iVBORw=="}}`)
	case path == "/admin/qr/batch":
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"qrCodes":[{"tableNumber":"T01","url":"u1","qrCodeUrl":"/qr/T01.png"},{"tableNumber":"T02","url":"u2","qrCodeUrl":"/qr/T02.png"}]}}`)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeOrderAPI) setRejectAuth(reject bool) {
	f.mu.Lock()
	f.rejectAuth = reject
	f.mu.Unlock()
}

func (f *fakeOrderAPI) issueToken(token string) {
	f.mu.Lock()
	f.token = token
	f.rejectAuth = false
	f.mu.Unlock()
}

func (f *fakeOrderAPI) counts() (int, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, append([]string(nil), f.patches...)
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

type testHarness struct {
	api         *fakeOrderAPI
	credentials *memoryCredentials
	handler     *Handler
	routes      http.Handler
}

func newTestHarness(t *testing.T, api *fakeOrderAPI) *testHarness {
	t.Helper()
	if api == nil {
		api = &fakeOrderAPI{}
	}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	credentials := &memoryCredentials{values: map[string]string{}}
	var sessions *session.Store
	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api"}, func() string { return sessions.Credential() })
	if err != nil {
		t.Fatalf("new api client: %v", err)
	}
	sessions, err = session.NewStore(credentials, client)
	if err != nil {
		t.Fatalf("new session store: %v", err)
	}
	workflow, err := orders.NewWorkflow(client, notify.Nop{})
	if err != nil {
		t.Fatalf("new workflow: %v", err)
	}
	stats, err := dashboard.NewService(client)
	if err != nil {
		t.Fatalf("new dashboard: %v", err)
	}
	generator, err := qr.NewGenerator(client)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	h, err := newHandler(HandlerConfig{
		Session:   sessions,
		Orders:    workflow,
		Dashboard: stats,
		QR:        generator,
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return &testHarness{api: api, credentials: credentials, handler: h, routes: h.routes()}
}

func (th *testHarness) signIn(t *testing.T) {
	t.Helper()
	if _, err := th.handler.session.Login(context.Background(), "ada@example.com", "secret"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
}

func (th *testHarness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.routes.ServeHTTP(rec, req)
	return rec
}

func postForm(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://example.com")
	return req
}

func htmxRequest(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}
