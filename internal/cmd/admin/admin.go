// Package admin parses dashboard command flags and launches the admin server.
package admin

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/louisbranch/tableside/internal/platform/config"
	"github.com/louisbranch/tableside/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr              string        `env:"TABLESIDE_ADMIN_ADDR" envDefault:":8082"`
	APIBaseURL            string        `env:"TABLESIDE_API_URL" envDefault:"http://localhost:8000/api"`
	APITimeout            time.Duration `env:"TABLESIDE_API_TIMEOUT" envDefault:"10s"`
	OrdersPollInterval    time.Duration `env:"TABLESIDE_ORDERS_POLL_INTERVAL" envDefault:"15s"`
	DashboardPollInterval time.Duration `env:"TABLESIDE_DASHBOARD_POLL_INTERVAL" envDefault:"30s"`
}

// ParseConfig parses environment and flags into a Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "Order API base URL including the /api prefix")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Timeout for each order API request")
	fs.DurationVar(&cfg.OrdersPollInterval, "orders-poll", cfg.OrdersPollInterval, "Orders refresh interval while the orders view is open")
	fs.DurationVar(&cfg.DashboardPollInterval, "dashboard-poll", cfg.DashboardPollInterval, "Dashboard refresh interval while the dashboard is open")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.OrdersPollInterval <= 0 || cfg.DashboardPollInterval <= 0 {
		return Config{}, fmt.Errorf("poll intervals must be positive")
	}
	return cfg, nil
}

// Run starts the admin dashboard server.
func Run(ctx context.Context, cfg Config) error {
	server, err := admin.NewServer(ctx, admin.Config{
		HTTPAddr:              cfg.HTTPAddr,
		APIBaseURL:            cfg.APIBaseURL,
		APITimeout:            cfg.APITimeout,
		OrdersPollInterval:    cfg.OrdersPollInterval,
		DashboardPollInterval: cfg.DashboardPollInterval,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}
