package repository

import (
	"context"
	"sync"
	"time"

	"BotDash/internal/domain/models"
	domrepo "BotDash/internal/domain/repository"
	"BotDash/pkg/metrics"
)

// InstrumentedStore records read outcomes and latency for any SnapshotStore.
type InstrumentedStore struct {
	next    domrepo.SnapshotStore
	metrics domrepo.Metrics
	backend string

	closeOnce sync.Once
	closeErr  error
}

func NewInstrumentedStore(next domrepo.SnapshotStore, m domrepo.Metrics, backend string) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: m, backend: backend}
}

func (s *InstrumentedStore) GetCurrent(ctx context.Context, collection string) (models.Document, bool, error) {
	start := time.Now()
	doc, found, err := s.next.GetCurrent(ctx, collection)
	s.metrics.RecordLatency(s.backend+".get_current", time.Since(start).Seconds())

	switch {
	case err != nil:
		s.metrics.RecordSnapshotRead(collection, metrics.OutcomeError)
		s.metrics.RecordError(s.backend)
	case found:
		s.metrics.RecordSnapshotRead(collection, metrics.OutcomeFound)
	default:
		s.metrics.RecordSnapshotRead(collection, metrics.OutcomeAbsent)
	}
	return doc, found, err
}

func (s *InstrumentedStore) Health(ctx context.Context) error {
	return s.next.Health(ctx)
}

// Close releases the wrapped store once; later calls return the first result.
func (s *InstrumentedStore) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.next.Close()
	})
	return s.closeErr
}
