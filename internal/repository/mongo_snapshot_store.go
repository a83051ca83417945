package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"BotDash/internal/domain/models"
)

// MongoSnapshotStore implements SnapshotStore on MongoDB. Each snapshot is the
// document whose _id equals the configured document id.
type MongoSnapshotStore struct {
	client *mongo.Client
	db     *mongo.Database
	docID  string
}

// NewMongoClient connects and pings the primary.
func NewMongoClient(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func NewMongoSnapshotStore(client *mongo.Client, database, docID string) *MongoSnapshotStore {
	return &MongoSnapshotStore{client: client, db: client.Database(database), docID: docID}
}

func (s *MongoSnapshotStore) GetCurrent(ctx context.Context, collection string) (models.Document, bool, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: s.docID}}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("mongo find %s/%s: %w", collection, s.docID, err)
	}
	return documentFromBSON(raw), true, nil
}

func (s *MongoSnapshotStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoSnapshotStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// documentFromBSON drops the storage key and flattens nested BSON values into
// plain maps and slices so they encode as ordinary JSON.
func documentFromBSON(raw bson.M) models.Document {
	doc := make(models.Document, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		doc[k] = plainBSON(v)
	}
	return doc
}

func plainBSON(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = plainBSON(e)
		}
		return m
	case bson.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = plainBSON(e.Value)
		}
		return m
	case bson.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = plainBSON(e)
		}
		return out
	default:
		return v
	}
}
