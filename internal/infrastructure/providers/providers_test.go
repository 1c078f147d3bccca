package providers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/totegamma/linksera/internal/config"
	"github.com/totegamma/linksera/internal/domain"
)

func TestNewBlobStoreMemoryAndSQLite(t *testing.T) {
	ctx := context.Background()

	for _, conf := range []config.Store{
		{Backend: "memory"},
		{Backend: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "linksera.db")},
	} {
		store, closer, err := NewBlobStore(ctx, conf)
		if err != nil {
			t.Fatalf("%s: open failed: %v", conf.Backend, err)
		}
		if _, err := store.Load(ctx, "listings"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("%s: expected empty store got %v", conf.Backend, err)
		}
		if err := closer.Close(); err != nil {
			t.Fatalf("%s: close failed: %v", conf.Backend, err)
		}
	}
}

func TestNewBlobStoreUnknownBackend(t *testing.T) {
	if _, _, err := NewBlobStore(context.Background(), config.Store{Backend: "s3"}); err == nil {
		t.Fatalf("expected unknown backend to fail")
	}
}

func TestNewTracerProviderDisabled(t *testing.T) {
	shutdown, err := NewTracerProvider(context.Background(), config.Trace{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}
