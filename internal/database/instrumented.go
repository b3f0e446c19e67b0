package database

import (
	"context"
	"database/sql"
	"time"

	"vivopizza/internal/domain"
	"vivopizza/internal/metrics"
)

type instrumentedStore struct {
	DocumentStore
}

// Instrument records db_queries_total and db_query_duration_seconds for
// every store call.
func Instrument(store DocumentStore) DocumentStore {
	return &instrumentedStore{DocumentStore: store}
}

func (s *instrumentedStore) CreateDocument(ctx context.Context, collection string, doc domain.Document) (domain.Document, error) {
	start := time.Now()
	stored, err := s.DocumentStore.CreateDocument(ctx, collection, doc)
	metrics.RecordDBQuery("create_document", time.Since(start), err)
	s.recordPoolStats()
	return stored, err
}

func (s *instrumentedStore) GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error) {
	start := time.Now()
	docs, err := s.DocumentStore.GetDocuments(ctx, collection, filter, limit)
	metrics.RecordDBQuery("get_documents", time.Since(start), err)
	return docs, err
}

// recordPoolStats publishes connection pool gauges for SQL-backed stores.
func (s *instrumentedStore) recordPoolStats() {
	pooled, ok := s.DocumentStore.(interface{ Stats() (*sql.DBStats, error) })
	if !ok {
		return
	}
	if stats, err := pooled.Stats(); err == nil {
		metrics.UpdateDBConnections(stats.InUse, stats.Idle)
	}
}
