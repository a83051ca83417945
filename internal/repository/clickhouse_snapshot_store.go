package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"BotDash/internal/domain/models"
	pkgch "BotDash/pkg/clickhouse"
)

// CHSnapshotStore implements SnapshotStore on a ClickHouse table
// (collection String, doc_id String, body String, updated_at DateTime64).
// The newest row for (collection, doc_id) is the current snapshot.
type CHSnapshotStore struct {
	client *pkgch.Client
	db     *sql.DB
	table  string
	docID  string
}

func NewCHSnapshotStore(client *pkgch.Client, table, docID string) *CHSnapshotStore {
	return &CHSnapshotStore{client: client, db: client.DB(), table: table, docID: docID}
}

func (s *CHSnapshotStore) GetCurrent(ctx context.Context, collection string) (models.Document, bool, error) {
	const qtpl = `
        SELECT body
        FROM %s
        WHERE collection = ? AND doc_id = ?
        ORDER BY updated_at DESC
        LIMIT 1
    `
	var body string
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(qtpl, s.table), collection, s.docID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("clickhouse get %s/%s: %w", collection, s.docID, err)
	}
	doc, err := decodeBody(body)
	if err != nil {
		return nil, false, fmt.Errorf("clickhouse decode %s/%s: %w", collection, s.docID, err)
	}
	return doc, true, nil
}

func (s *CHSnapshotStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *CHSnapshotStore) Close() error {
	return s.client.Close()
}

func decodeBody(body string) (models.Document, error) {
	doc := models.Document{}
	if body == "" {
		return doc, nil
	}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		// body was a JSON null
		doc = models.Document{}
	}
	return doc, nil
}
