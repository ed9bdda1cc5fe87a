// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/danielhkuo/stimmie/models"
)

// DefaultMongoDatabase is used when the connection string names none.
const DefaultMongoDatabase = "stimmie"

// InterviewsCollection holds one document per response.
const InterviewsCollection = "interviews"

// MongoStore keeps responses in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to uri and verifies the connection.
func OpenMongo(ctx context.Context, uri string) (*MongoStore, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid mongo URL: %w", err)
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = DefaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	slog.Info("Mongo collection ready", "database", dbName, "collection", InterviewsCollection)
	return &MongoStore{
		client: client,
		coll:   client.Database(dbName).Collection(InterviewsCollection),
	}, nil
}

func (s *MongoStore) Insert(ctx context.Context, rec models.ResponseRecord) (models.ResponseRecord, error) {
	rec.ID = uuid.NewString()
	rec.Timestamp = stamp()

	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return models.ResponseRecord{}, fmt.Errorf("failed to insert interview: %w", err)
	}
	return rec, nil
}

func (s *MongoStore) WriteResponse(ctx context.Context, rec models.ResponseRecord) error {
	_, err := s.Insert(ctx, rec)
	return err
}

// ReadAllResponses returns every document ordered by timestamp.
func (s *MongoStore) ReadAllResponses(ctx context.Context) ([]models.ResponseRecord, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query interviews: %w", err)
	}

	records := []models.ResponseRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to read interviews: %w", err)
	}
	return records, nil
}

func (s *MongoStore) Count(ctx context.Context) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count interviews: %w", err)
	}
	return int(n), nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
