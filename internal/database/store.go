package database

import (
	"context"
	"errors"

	"vivopizza/internal/domain"
)

// ErrEmptyCollection is returned when a store call names no collection.
var ErrEmptyCollection = errors.New("collection name must not be empty")

// DocumentStore persists schemaless documents grouped by collection and
// assigns each inserted document an identifier.
type DocumentStore interface {
	// CreateDocument inserts doc into collection and returns the stored
	// document including its assigned identifier ("_id" or "id").
	CreateDocument(ctx context.Context, collection string, doc domain.Document) (domain.Document, error)
	// GetDocuments returns up to limit documents of collection whose
	// top-level fields equal filter, newest first. limit <= 0 means no limit.
	GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error)
	// Ping checks connectivity.
	Ping(ctx context.Context) error
	// Close releases connections.
	Close() error
}
