package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.Store.Backend != "sqlite" || conf.UI.PageSize != 5 || conf.Store.BlobKey != "listings" {
		t.Fatalf("unexpected defaults %+v", conf)
	}
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte("server:\n  listen: \":9000\"\nstore:\n  backend: redis\n  redisAddr: localhost:6379\nui:\n  pageSize: 10\n")
	if err := os.WriteFile(path, yaml, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.Server.Listen != ":9000" || conf.Store.Backend != "redis" || conf.UI.PageSize != 10 {
		t.Fatalf("unexpected config %+v", conf)
	}
	if conf.Server.LogLevel != "info" || conf.Store.BlobKey != "listings" {
		t.Fatalf("expected untouched fields to keep defaults, got %+v", conf)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LINKSERA_STORE", "memory")
	t.Setenv("LINKSERA_PAGE_SIZE", "8")
	t.Setenv("LINKSERA_TRACE_ENDPOINT", "localhost:4318")

	conf, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.Store.Backend != "memory" || conf.UI.PageSize != 8 {
		t.Fatalf("expected env overrides got %+v", conf)
	}
	if !conf.Trace.Enable || conf.Trace.Endpoint != "localhost:4318" {
		t.Fatalf("expected tracing enabled by endpoint override")
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
