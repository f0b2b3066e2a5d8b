package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port     int           `env:"TABLESIDE_TEST_PORT" envDefault:"123"`
	Interval time.Duration `env:"TABLESIDE_TEST_INTERVAL" envDefault:"15s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Interval != 15*time.Second {
		t.Fatalf("expected default interval 15s, got %v", cfg.Interval)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TABLESIDE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromMap(t *testing.T) {
	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{
		"TABLESIDE_TEST_PORT":     "9000",
		"TABLESIDE_TEST_INTERVAL": "1m",
	})
	if err != nil {
		t.Fatalf("parse env from map: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Interval != time.Minute {
		t.Fatalf("interval = %v, want 1m", cfg.Interval)
	}
}

func TestParseEnvFromNilMapUsesDefaults(t *testing.T) {
	t.Setenv("TABLESIDE_TEST_PORT", "777")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env from nil map: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected process env to be ignored, got port %d", cfg.Port)
	}
}
