// Package docstore provides the MongoDB sink for raw catalog documents.
// The relational store keeps the normalized columns the pipeline reads; the
// document store keeps the full upstream payloads for ad-hoc inspection.
package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps a Mongo client scoped to the service database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates and validates a Mongo connection.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// RawDocument is one upstream payload plus the tmdb_id upsert key.
type RawDocument struct {
	TMDBID int64
	Body   map[string]any
}

// BulkUpsert replaces documents in a collection keyed by tmdb_id, creating
// them when absent. Writes are unordered — one bad document does not stop
// the batch.
func (s *Store) BulkUpsert(ctx context.Context, collection string, docs []RawDocument) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(docs))
	for _, doc := range docs {
		body := doc.Body
		if body == nil {
			body = map[string]any{}
		}
		body["tmdb_id"] = doc.TMDBID

		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"tmdb_id": doc.TMDBID}).
			SetReplacement(body).
			SetUpsert(true))
	}

	res, err := s.db.Collection(collection).BulkWrite(ctx, models,
		options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("bulk upsert %s: %w", collection, err)
	}
	return int(res.UpsertedCount + res.ModifiedCount + res.MatchedCount), nil
}
