package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/i18n"
	"github.com/louisbranch/tableside/internal/services/shared/htmx"
)

func sampleOrders() []apiclient.Order {
	return []apiclient.Order{
		{
			ID:          "o-1",
			TableNumber: "T03",
			Status:      "pending",
			Items:       []apiclient.OrderItem{{Name: "Jollof Rice", Price: 2500, Quantity: 2}},
			Subtotal:    5000,
			Tax:         375,
			Total:       5375,
			CreatedAt:   "2026-10-19T12:30:00Z",
		},
	}
}

func TestNewHandlerRequiresViewModels(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(HandlerConfig{}); err == nil {
		t.Fatal("expected error for empty config")
	}
}

func TestLoginPageRendersForm(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	rec := th.do(httptest.NewRequest(http.MethodGet, "/login", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `action="/login"`) {
		t.Fatalf("expected login form, got %q", rec.Body.String())
	}
}

func TestLoginPageRedirectsWhenSignedIn(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)
	rec := th.do(httptest.NewRequest(http.MethodGet, "/login", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("status = %d location = %q, want redirect to /", rec.Code, rec.Header().Get("Location"))
	}
}

func TestLoginStoresCredential(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	rec := th.do(postForm("/login", "email=ada%40example.com&password=secret"))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/" {
		t.Fatalf("location = %q, want /", got)
	}
	if got := th.credentials.stored(); got != testToken {
		t.Fatalf("stored credential = %q, want %q", got, testToken)
	}
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	rec := th.do(postForm("/login", "email=ada%40example.com&password=wrong"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid credentials") {
		t.Fatalf("expected server message, got %q", body)
	}
	if !strings.Contains(body, `value="ada@example.com"`) {
		t.Fatalf("expected email to be kept, got %q", body)
	}
	if got := th.credentials.stored(); got != "" {
		t.Fatalf("stored credential = %q, want empty", got)
	}
}

func TestLoginRejectsCrossOrigin(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	req := postForm("/login", "email=ada%40example.com&password=secret")
	req.Header.Set("Origin", "http://evil.example")
	rec := th.do(req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)
	rec := th.do(postForm("/logout", ""))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("status = %d location = %q, want redirect to /login", rec.Code, rec.Header().Get("Location"))
	}
	if th.handler.session.Authenticated() {
		t.Fatal("expected session to be cleared")
	}
	if got := th.credentials.stored(); got != "" {
		t.Fatalf("stored credential = %q, want empty", got)
	}
}

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		header string
		want   bool
	}{
		{name: "matching", raw: "http://example.com/orders", want: true},
		{name: "other host", raw: "http://evil.example/orders", want: false},
		{name: "scheme mismatch", raw: "https://example.com", want: false},
		{name: "forwarded https", raw: "https://example.com", header: "https", want: true},
		{name: "null", raw: "null", want: false},
		{name: "no host", raw: "/orders", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/orders", nil)
			if tc.header != "" {
				req.Header.Set("X-Forwarded-Proto", tc.header)
			}
			if got := sameOrigin(tc.raw, req); got != tc.want {
				t.Fatalf("sameOrigin(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set(apiclient.RequestIDHeader, "req-42")
	rec := th.do(req)
	if got := rec.Header().Get(apiclient.RequestIDHeader); got != "req-42" {
		t.Fatalf("request id = %q, want req-42", got)
	}

	rec = th.do(httptest.NewRequest(http.MethodGet, "/login", nil))
	if rec.Header().Get(apiclient.RequestIDHeader) == "" {
		t.Fatal("expected generated request id")
	}
}

func TestDashboardContentRendersStats(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, &fakeOrderAPI{orders: sampleOrders()})
	th.signIn(t)
	rec := th.do(httptest.NewRequest(http.MethodGet, "/dashboard/content", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{`id="dashboard-content"`, "Pending Orders", "T03"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in %q", want, body)
		}
	}
}

func TestDashboardShellForHTMXCarriesTitle(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)
	rec := th.do(htmxRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<title>") {
		t.Fatalf("expected fragment to start with title, got %q", body)
	}
	if strings.Contains(body, "<html") {
		t.Fatalf("expected fragment without layout, got %q", body)
	}
}

func TestOrdersContentUsesCacheUntilRefresh(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, &fakeOrderAPI{orders: sampleOrders()})
	th.signIn(t)

	rec := th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=all", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "T03") {
		t.Fatalf("expected order row, got %q", rec.Body.String())
	}
	th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=all", nil))
	if calls, _ := th.api.counts(); calls != 1 {
		t.Fatalf("list calls = %d, want 1", calls)
	}

	th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=all&refresh=1", nil))
	if calls, _ := th.api.counts(); calls != 2 {
		t.Fatalf("list calls after refresh = %d, want 2", calls)
	}
}

func TestOrdersRejectsUnknownFilter(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)
	rec := th.do(httptest.NewRequest(http.MethodGet, "/orders?filter=bogus", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestOrderStatusAppliesTransition(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, &fakeOrderAPI{orders: sampleOrders()})
	th.signIn(t)
	th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=all", nil))

	rec := th.do(htmxRequest(postForm("/orders/o-1/status", "status=confirmed&filter=all")))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Order for table T03 is now Confirmed") {
		t.Fatalf("expected success message, got %q", rec.Body.String())
	}
	if _, patches := th.api.counts(); len(patches) != 1 || patches[0] != "o-1=confirmed" {
		t.Fatalf("patches = %v, want [o-1=confirmed]", patches)
	}
}

func TestOrderStatusDeliveredShowsCompletedUnderActiveFilter(t *testing.T) {
	t.Parallel()

	ready := sampleOrders()
	ready[0].Status = "ready"
	th := newTestHarness(t, &fakeOrderAPI{orders: ready})
	th.signIn(t)
	th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=active", nil))

	rec := th.do(htmxRequest(postForm("/orders/o-1/status", "status=delivered&filter=active")))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-order-id="o-1"`) {
		t.Fatalf("expected delivered order to stay listed, got %q", body)
	}
	if !strings.Contains(body, "Order completed") {
		t.Fatalf("expected completed marker, got %q", body)
	}
}

func TestOrderStatusRejectsIllegalTransition(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, &fakeOrderAPI{orders: sampleOrders()})
	th.signIn(t)
	th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=all", nil))

	rec := th.do(htmxRequest(postForm("/orders/o-1/status", "status=delivered&filter=all")))
	if !strings.Contains(rec.Body.String(), "Please check your input.") {
		t.Fatalf("expected validation message, got %q", rec.Body.String())
	}
	if _, patches := th.api.counts(); len(patches) != 0 {
		t.Fatalf("patches = %v, want none", patches)
	}
}

func TestOrderStatusWithoutHTMXRedirects(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, &fakeOrderAPI{orders: sampleOrders()})
	th.signIn(t)
	th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=pending", nil))

	rec := th.do(postForm("/orders/o-1/status", "status=cancelled&filter=pending"))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/orders?filter=pending" {
		t.Fatalf("location = %q, want /orders?filter=pending", got)
	}
}

func TestSessionInvalidRedirectsHTMXToLogin(t *testing.T) {
	t.Parallel()

	api := &fakeOrderAPI{orders: sampleOrders()}
	th := newTestHarness(t, api)
	th.signIn(t)
	api.setRejectAuth(true)

	rec := th.do(htmxRequest(httptest.NewRequest(http.MethodGet, "/orders/content", nil)))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get(htmx.RedirectHeader); got != "/login" {
		t.Fatalf("HX-Redirect = %q, want /login", got)
	}
	if th.handler.session.Credential() != "" {
		t.Fatal("expected credential to be cleared")
	}
	if got := th.credentials.stored(); got != "" {
		t.Fatalf("stored credential = %q, want empty", got)
	}
}

func TestQRSingleThenDownload(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)

	rec := th.do(htmxRequest(postForm("/qr/single", "table=5")))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "/qr/download/T05") {
		t.Fatalf("expected download link, got %q", rec.Body.String())
	}

	rec = th.do(httptest.NewRequest(http.MethodGet, "/qr/download/T05", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("content type = %q, want image/png", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="progressive-bar-T05.png"` {
		t.Fatalf("content disposition = %q", got)
	}
	if got := rec.Body.String(); got != "\x89PNG" {
		t.Fatalf("body = %q, want png magic", got)
	}
}

func TestQRDownloadUnknownTableIsNotFound(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)
	rec := th.do(httptest.NewRequest(http.MethodGet, "/qr/download/T09", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestQRBatchThenPrint(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)

	rec := th.do(httptest.NewRequest(http.MethodGet, "/qr/print", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/qr" {
		t.Fatalf("print without batch: status = %d location = %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = th.do(postForm("/qr/batch", "from=1&to=2"))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/qr" {
		t.Fatalf("batch: status = %d location = %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = th.do(httptest.NewRequest(http.MethodGet, "/qr/print", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("print status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "T01") || !strings.Contains(body, "T02") {
		t.Fatalf("expected both tables in print document, got %q", body)
	}
}

func TestQRBatchRejectsNonNumericRange(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)
	rec := th.do(htmxRequest(postForm("/qr/batch", "from=a&to=2")))
	if !strings.Contains(rec.Body.String(), "Please check your input.") {
		t.Fatalf("expected validation message, got %q", rec.Body.String())
	}
}

func TestPagesSwitchActiveView(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	th.signIn(t)
	ordersView := &fakeRefresher{name: viewOrders}
	dashboardView := &fakeRefresher{name: viewDashboard}
	th.handler.views = newViewsFrom(context.Background(), ordersView, dashboardView)

	th.do(httptest.NewRequest(http.MethodGet, "/orders", nil))
	if !ordersView.running || dashboardView.running {
		t.Fatalf("orders page: orders running = %v, dashboard running = %v", ordersView.running, dashboardView.running)
	}

	th.do(httptest.NewRequest(http.MethodGet, "/", nil))
	if ordersView.running || !dashboardView.running {
		t.Fatalf("dashboard page: orders running = %v, dashboard running = %v", ordersView.running, dashboardView.running)
	}

	rec := th.do(httptest.NewRequest(http.MethodGet, "/menu", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("menu status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ordersView.running || dashboardView.running {
		t.Fatal("expected menu page to stop every poller")
	}
}

func TestPollFetchIdlesWhenSignedOut(t *testing.T) {
	t.Parallel()

	th := newTestHarness(t, nil)
	called := false
	fetch := th.handler.pollFetch(func(context.Context) error {
		called = true
		return nil
	})
	if err := fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if called {
		t.Fatal("expected fetch to be skipped without a credential")
	}
}

func TestPollFetchClearsSessionWhenRejected(t *testing.T) {
	t.Parallel()

	api := &fakeOrderAPI{orders: sampleOrders()}
	th := newTestHarness(t, api)
	th.signIn(t)
	th.do(httptest.NewRequest(http.MethodGet, "/orders/content?filter=all", nil))
	api.setRejectAuth(true)

	err := th.handler.pollFetch(th.handler.orders.Refresh)(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
		t.Fatalf("code = %q, want %q", apperrors.CodeOf(err), apperrors.CodeSessionInvalid)
	}
	if th.handler.session.Credential() != "" {
		t.Fatal("expected credential to be cleared")
	}
	if len(th.handler.orders.Orders()) != 0 {
		t.Fatal("expected cached orders to be dropped")
	}
}

func TestPollFetchKeepsNewerLogin(t *testing.T) {
	t.Parallel()

	api := &fakeOrderAPI{orders: sampleOrders()}
	th := newTestHarness(t, api)
	th.signIn(t)
	ordersView := &fakeRefresher{name: viewOrders}
	th.handler.views = newViewsFrom(context.Background(), ordersView)
	th.handler.views.Activate(viewOrders)

	// The operator signs in again while a fetch with the old credential fails.
	fetch := th.handler.pollFetch(func(ctx context.Context) error {
		api.issueToken("tok-second")
		if _, err := th.handler.session.Login(ctx, "ada@example.com", "secret"); err != nil {
			t.Errorf("second sign in: %v", err)
		}
		return apperrors.New(apperrors.CodeSessionInvalid, "session expired")
	})
	if err := fetch(context.Background()); apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
		t.Fatalf("code = %q, want %q", apperrors.CodeOf(err), apperrors.CodeSessionInvalid)
	}
	if got := th.handler.session.Credential(); got != "tok-second" {
		t.Fatalf("credential = %q, want tok-second", got)
	}
	if !ordersView.running || ordersView.stops != 0 {
		t.Fatalf("orders view running = %v stops = %d, want running", ordersView.running, ordersView.stops)
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(i18n.Default())
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "rejected keeps server text", err: apperrors.New(apperrors.CodeRejected, "Table is closed"), want: "Table is closed"},
		{name: "network is localized", err: apperrors.New(apperrors.CodeNetwork, "dial tcp"), want: "Could not reach the server. Showing the last loaded data."},
		{name: "plain error", err: context.Canceled, want: "Something went wrong."},
	}
	for _, tc := range tests {
		if got := errorMessage(loc, tc.err); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
