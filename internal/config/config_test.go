package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tubestudy/tracker/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.PathEnvVar, "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9000
  debug: true
  cors_origins: ["http://localhost:*"]
  shutdown_timeout: 30s
database:
  driver: sqlite
  path: /tmp/study.db
tracker:
  timezone: UTC
  max_sync_seconds: 30
logging:
  format: json
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TUBESTUDY_SERVER_PORT", "9100")
	t.Setenv("TUBESTUDY_TRACKER_MAX_SYNC_SECONDS", "0")
	t.Setenv("TUBESTUDY_LOGGING_LEVEL", "debug")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected env port 9100, got %d", cfg.Server.Port)
	}
	if !cfg.Server.Debug {
		t.Error("expected debug from file")
	}
	if diff := cmp.Diff([]string{"http://localhost:*"}, cfg.Server.CORSOrigins); diff != "" {
		t.Errorf("cors origins mismatch (-want +got):\n%s", diff)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected 30s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.SyncRateLimit != 120 {
		t.Errorf("expected default rate limit, got %d", cfg.Server.SyncRateLimit)
	}
	if cfg.Database.Path != "/tmp/study.db" {
		t.Errorf("unexpected db path %q", cfg.Database.Path)
	}
	if cfg.Tracker.MaxSyncSeconds != 0 {
		t.Errorf("expected env to disable the cap, got %v", cfg.Tracker.MaxSyncSeconds)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc != time.UTC {
		t.Errorf("expected UTC, got %v", loc)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"port", func(c *config.Config) { c.Server.Port = 0 }, "server.port"},
		{"rate limit", func(c *config.Config) { c.Server.SyncRateLimit = -1 }, "sync_rate_limit"},
		{"driver", func(c *config.Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"postgres dsn", func(c *config.Config) { c.Database.Driver = config.DriverPostgres }, "database.dsn"},
		{"sqlite path", func(c *config.Config) { c.Database.Path = "" }, "database.path"},
		{"timezone", func(c *config.Config) { c.Tracker.Timezone = "Mars/Olympus" }, "tracker.timezone"},
		{"cap", func(c *config.Config) { c.Tracker.MaxSyncSeconds = -1 }, "max_sync_seconds"},
		{"level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}
