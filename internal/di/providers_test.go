package di

import (
	"context"
	"testing"

	"BotDash/internal/domain/models"
	"BotDash/pkg/config"
	applogger "BotDash/pkg/logger"
	"BotDash/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type closeCountingStore struct {
	closes int
}

func (s *closeCountingStore) GetCurrent(context.Context, string) (models.Document, bool, error) {
	return nil, false, nil
}
func (s *closeCountingStore) Health(context.Context) error { return nil }
func (s *closeCountingStore) Close() error {
	s.closes++
	return nil
}

func TestInstrumentStoreCleanupClosesOnce(t *testing.T) {
	raw := &closeCountingStore{}
	store, cleanup := instrumentStore(raw, metrics.New(prometheus.NewRegistry()), "redis", applogger.Nop())

	// a failing later provider releases the store
	cleanup()
	if raw.closes != 1 {
		t.Fatalf("closes after cleanup = %d, want 1", raw.closes)
	}

	// shutdown and the caller's cleanup do not close it again
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	cleanup()
	if raw.closes != 1 {
		t.Fatalf("closes = %d, want 1", raw.closes)
	}
}

func TestProvideSnapshotStoreUnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Backend = "cassandra"
	cfg.Store.DocumentID = "current"

	store, cleanup, err := ProvideSnapshotStore(cfg, metrics.New(prometheus.NewRegistry()), applogger.Nop())
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if store != nil || cleanup != nil {
		t.Fatal("failed provider must not return a store or cleanup")
	}
}

func TestProvideRendererMissingTemplates(t *testing.T) {
	cfg := &config.Config{}
	cfg.Web.TemplateDir = t.TempDir()
	if _, err := ProvideRenderer(cfg); err == nil {
		t.Fatal("expected error for a template dir without pages")
	}
}
