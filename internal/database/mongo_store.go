package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"vivopizza/internal/domain"
)

const (
	mongoConnectTimeout    = 10 * time.Second
	mongoDisconnectTimeout = 5 * time.Second
)

// MongoStore is a DocumentStore backed by a MongoDB database. Each
// collection maps onto a MongoDB collection of the same name.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to uri and selects database dbName.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	log.Printf("[DB] Connecting to MongoDB database %q...", dbName)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetConnectTimeout(mongoConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	store := &MongoStore{client: client, db: client.Database(dbName)}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	log.Println("[DB] MongoDB connected successfully")
	return store, nil
}

// CreateDocument inserts doc and returns it with "_id" set to the hex form
// of the assigned ObjectID.
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc domain.Document) (domain.Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	stored := doc.Clone()
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(stored))
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	stored["_id"] = objectIDText(res.InsertedID)
	return stored, nil
}

// GetDocuments returns matching documents, newest first by ObjectID.
func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	results := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		doc := domain.Document(row)
		if id, ok := doc["_id"]; ok {
			doc["_id"] = objectIDText(id)
		}
		results = append(results, doc)
	}
	return results, nil
}

// Ping checks the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func objectIDText(id any) any {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return id
}
