package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"BotDash/internal/domain/models"
)

// FirestoreSnapshotStore implements SnapshotStore on Cloud Firestore.
type FirestoreSnapshotStore struct {
	client *firestore.Client
	docID  string
}

// NewFirestoreClient initializes a Firebase app from a service-account file and opens its Firestore client.
// An empty projectID lets the SDK take the project from the credentials.
func NewFirestoreClient(ctx context.Context, credentialsFile, projectID string) (*firestore.Client, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return client, nil
}

func NewFirestoreSnapshotStore(client *firestore.Client, docID string) *FirestoreSnapshotStore {
	return &FirestoreSnapshotStore{client: client, docID: docID}
}

func (s *FirestoreSnapshotStore) GetCurrent(ctx context.Context, collection string) (models.Document, bool, error) {
	snap, err := s.client.Collection(collection).Doc(s.docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("firestore get %s/%s: %w", collection, s.docID, err)
	}
	if !snap.Exists() {
		return nil, false, nil
	}
	return models.Document(snap.Data()), true, nil
}

// Health reads the status document; absence still proves the store answers.
func (s *FirestoreSnapshotStore) Health(ctx context.Context) error {
	_, _, err := s.GetCurrent(ctx, models.CollectionBotStatus)
	return err
}

func (s *FirestoreSnapshotStore) Close() error {
	return s.client.Close()
}
