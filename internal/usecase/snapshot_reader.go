package usecase

import (
	"context"
	"fmt"
	"time"

	"BotDash/internal/domain/models"
	domrepo "BotDash/internal/domain/repository"
	"BotDash/pkg/util"
)

// Dashboard entities served by the status API.
var (
	BotStatusEntity = models.Entity{
		Name:       "status",
		Collection: models.CollectionBotStatus,
		Default: func(now time.Time) interface{} {
			return models.BotStatus{Status: "unknown", Timestamp: util.FormatISO(now)}
		},
	}
	PortfolioEntity = models.Entity{
		Name:       "portfolio",
		Collection: models.CollectionPortfolio,
		Default: func(time.Time) interface{} {
			return models.Portfolio{}
		},
	}
	SignalsEntity = models.Entity{
		Name:       "signals",
		Collection: models.CollectionSignals,
		Default: func(time.Time) interface{} {
			return models.Document{}
		},
	}
)

// SnapshotReader resolves the current snapshot of an entity, falling back to
// the entity default when the store has no document.
type SnapshotReader struct {
	store domrepo.SnapshotStore
	now   func() time.Time
}

func NewSnapshotReader(store domrepo.SnapshotStore) *SnapshotReader {
	return &SnapshotReader{store: store, now: time.Now}
}

// WithClock replaces the clock used for default timestamps.
func (r *SnapshotReader) WithClock(now func() time.Time) *SnapshotReader {
	r.now = now
	return r
}

// Current returns the stored document verbatim, or the entity default if absent.
func (r *SnapshotReader) Current(ctx context.Context, e models.Entity) (interface{}, error) {
	doc, found, err := r.store.GetCurrent(ctx, e.Collection)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", e.Collection, err)
	}
	if !found {
		return e.Default(r.now()), nil
	}
	if doc == nil {
		return models.Document{}, nil
	}
	return doc, nil
}

// Health reports whether the backing store answers.
func (r *SnapshotReader) Health(ctx context.Context) error {
	return r.store.Health(ctx)
}
