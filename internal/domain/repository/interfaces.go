package repository

import (
	"context"

	"BotDash/internal/domain/models"
)

// SnapshotStore reads singleton snapshot documents from a document store.
//
// GetCurrent has three outcomes: found (doc, true, nil), absent (nil, false, nil)
// and failed (nil, false, err). Absence is never reported as an error.
type SnapshotStore interface {
	GetCurrent(ctx context.Context, collection string) (doc models.Document, found bool, err error)
	Health(ctx context.Context) error // ping
	Close() error
}

// WebConfigSource provides the client-safe Firebase web config.
type WebConfigSource interface {
	Load() (models.FirebaseWebConfig, error)
}

type Metrics interface {
	RecordSnapshotRead(collection, outcome string)
	RecordLatency(op string, seconds float64)
	RecordError(kind string)
}
