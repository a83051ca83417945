package repository

import (
	"context"
	"errors"
	"fmt"

	"BotDash/internal/domain/models"
	"BotDash/pkg/cache"
)

// RedisSnapshotStore implements SnapshotStore on Redis: each snapshot is a JSON
// object stored under "<prefix>:<collection>:<docID>".
type RedisSnapshotStore struct {
	cache cache.Reader
	docID string
}

func NewRedisSnapshotStore(c cache.Reader, docID string) *RedisSnapshotStore {
	return &RedisSnapshotStore{cache: c, docID: docID}
}

func (s *RedisSnapshotStore) GetCurrent(ctx context.Context, collection string) (models.Document, bool, error) {
	var doc models.Document
	key := collection + ":" + s.docID
	if err := s.cache.Get(ctx, key, &doc); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if doc == nil {
		// a stored JSON null
		doc = models.Document{}
	}
	return doc, true, nil
}

func (s *RedisSnapshotStore) Health(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

func (s *RedisSnapshotStore) Close() error {
	return s.cache.Close()
}
