package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/tableside/internal/platform/config"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/platform/telemetry/metrics"
	"github.com/louisbranch/tableside/internal/platform/timeouts"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/dashboard"
	"github.com/louisbranch/tableside/internal/services/admin/notify"
	"github.com/louisbranch/tableside/internal/services/admin/orders"
	"github.com/louisbranch/tableside/internal/services/admin/poller"
	"github.com/louisbranch/tableside/internal/services/admin/qr"
	"github.com/louisbranch/tableside/internal/services/admin/session"
	"github.com/louisbranch/tableside/internal/services/admin/static"
	adminsqlite "github.com/louisbranch/tableside/internal/services/admin/storage/sqlite"
	"github.com/louisbranch/tableside/internal/services/admin/transport/httpmux"
)

const (
	// defaultOrdersPollInterval refreshes the order list while it is open.
	defaultOrdersPollInterval = 15 * time.Second
	// defaultDashboardPollInterval refreshes dashboard stats while open.
	defaultDashboardPollInterval = 30 * time.Second
	// staticMaxAge is the browser cache lifetime for embedded assets.
	staticMaxAge = "public, max-age=3600"
)

// adminServerEnv captures startup defaults for the admin process.
type adminServerEnv struct {
	DBPath       string `env:"TABLESIDE_ADMIN_DB_PATH" envDefault:"data/admin.db"`
	AMQPURL      string `env:"TABLESIDE_AMQP_URL"`
	AMQPExchange string `env:"TABLESIDE_AMQP_EXCHANGE" envDefault:"orders_topic"`
}

func loadAdminServerEnv() adminServerEnv {
	var cfg adminServerEnv
	if err := config.ParseEnv(&cfg); err != nil {
		log.Printf("admin env: %v", err)
	}
	return cfg
}

// Config defines the inputs for the admin dashboard process.
type Config struct {
	HTTPAddr string
	// APIBaseURL is the remote order API root, including its /api prefix.
	APIBaseURL            string
	APITimeout            time.Duration
	OrdersPollInterval    time.Duration
	DashboardPollInterval time.Duration
}

// Server hosts the admin dashboard and owns its background pollers.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	adminStore *adminsqlite.Store
	publisher  io.Closer
	views      *views
}

// NewServer opens local storage, restores any saved session and wires the
// view-models, pollers and HTTP routes.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.OrdersPollInterval <= 0 {
		cfg.OrdersPollInterval = defaultOrdersPollInterval
	}
	if cfg.DashboardPollInterval <= 0 {
		cfg.DashboardPollInterval = defaultDashboardPollInterval
	}

	adminEnv := loadAdminServerEnv()
	adminStore, err := openAdminStore(adminEnv.DBPath)
	if err != nil {
		return nil, err
	}
	server := &Server{httpAddr: httpAddr, adminStore: adminStore}
	fail := func(err error) (*Server, error) {
		server.Close()
		return nil, err
	}

	registry := metrics.New()
	var sessions *session.Store
	client, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Metrics: registry,
	}, func() string { return sessions.Credential() })
	if err != nil {
		return fail(fmt.Errorf("init api client: %w", err))
	}
	sessions, err = session.NewStore(adminStore, client)
	if err != nil {
		return fail(fmt.Errorf("init session store: %w", err))
	}
	if _, err := sessions.Restore(ctx); err != nil {
		log.Printf("admin restore session: %v", err)
	}

	publisher := openPublisher(adminEnv)
	if closer, ok := publisher.(io.Closer); ok {
		server.publisher = closer
	}

	workflow, err := orders.NewWorkflow(client, publisher)
	if err != nil {
		return fail(fmt.Errorf("init order workflow: %w", err))
	}
	stats, err := dashboard.NewService(client)
	if err != nil {
		return fail(fmt.Errorf("init dashboard: %w", err))
	}
	generator, err := qr.NewGenerator(client)
	if err != nil {
		return fail(fmt.Errorf("init qr generator: %w", err))
	}

	handler, err := newHandler(HandlerConfig{
		Session:          sessions,
		Orders:           workflow,
		Dashboard:        stats,
		QR:               generator,
		OrdersRefresh:    cfg.OrdersPollInterval,
		DashboardRefresh: cfg.DashboardPollInterval,
	})
	if err != nil {
		return fail(fmt.Errorf("init handler: %w", err))
	}

	ordersPoller, err := poller.New(viewOrders, cfg.OrdersPollInterval, handler.pollFetch(workflow.Refresh))
	if err != nil {
		return fail(fmt.Errorf("init orders poller: %w", err))
	}
	dashboardPoller, err := poller.New(viewDashboard, cfg.DashboardPollInterval, handler.pollFetch(stats.Refresh))
	if err != nil {
		return fail(fmt.Errorf("init dashboard poller: %w", err))
	}
	server.views = newViews(ctx, ordersPoller.WithMetrics(registry), dashboardPoller.WithMetrics(registry))
	handler.views = server.views

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS, withStaticCache)
	httpmux.MountOperational(rootMux, registry.Handler(), http.HandlerFunc(handleHealthz))
	httpmux.MountAdminRoutes(rootMux, handler.routes())

	server.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           rootMux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return server, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.views.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the pollers and releases the publisher and local store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.views.Close()
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			log.Printf("close publisher: %v", err)
		}
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}

// openPublisher connects to AMQP when configured. A broker that cannot be
// reached disables notifications instead of failing startup.
func openPublisher(env adminServerEnv) notify.Publisher {
	if strings.TrimSpace(env.AMQPURL) == "" {
		return notify.Nop{}
	}
	publisher, err := notify.DialAMQP(env.AMQPURL, env.AMQPExchange)
	if err != nil {
		log.Printf("admin amqp disabled: %v", err)
		return notify.Nop{}
	}
	log.Printf("admin publishing order events to exchange %s", env.AMQPExchange)
	return publisher
}

func withStaticCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", staticMaxAge)
		next.ServeHTTP(w, r)
	})
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// pollFetch adapts a view-model refresh for the poller. It idles while
// signed out and ends the session when the server rejects the credential.
func (h *Handler) pollFetch(fetch poller.FetchFunc) poller.FetchFunc {
	return func(ctx context.Context) error {
		token := h.session.Credential()
		if token == "" {
			return nil
		}
		err := fetch(ctx)
		if apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
			return err
		}
		// A newer login owns the session and the views it opened.
		if current := h.session.Credential(); current != "" && current != token {
			return err
		}
		h.clearSession(context.WithoutCancel(ctx))
		// Stopping waits for this fetch, so it cannot run inline.
		go func() {
			if h.session.Credential() != "" {
				return
			}
			h.views.DeactivateAll()
		}()
		return err
	}
}
