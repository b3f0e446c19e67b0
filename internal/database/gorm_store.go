package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"vivopizza/internal/domain"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 10 * time.Minute
)

// documentRecord is the SQL row backing one document. The document body is
// kept as JSON text so any collection fits the same table.
type documentRecord struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Collection string    `gorm:"size:100;not null;index"`
	Body       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the table name for documentRecord
func (documentRecord) TableName() string {
	return "documents"
}

// BeforeCreate hook
func (d *documentRecord) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// GormStore is a DocumentStore on top of PostgreSQL or SQLite.
type GormStore struct {
	db *gorm.DB
}

// OpenPostgres connects to PostgreSQL with connection pooling.
func OpenPostgres(dsn string) (*GormStore, error) {
	log.Println("[DB] Connecting to PostgreSQL database...")
	store, err := openGorm(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}

	sqlDB, err := store.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	log.Printf("[DB] Connection pool configured: maxOpen=%d, maxIdle=%d", maxOpenConns, maxIdleConns)

	return store, nil
}

// OpenSQLite opens (or creates) the SQLite database at path. ":memory:" is
// accepted.
func OpenSQLite(path string) (*GormStore, error) {
	log.Println("[DB] Connecting to SQLite database...")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	sqlDB.SetMaxOpenConns(1)

	return openGorm(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
		Conn:       sqlDB,
	})
}

func openGorm(dialector gorm.Dialector) (*GormStore, error) {
	// Never log SQL queries; errors are still returned to the caller.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &GormStore{db: db}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	log.Println("[DB] Running database migrations...")
	if err := db.AutoMigrate(&documentRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("[DB] Database connected and migrated successfully")
	return store, nil
}

// CreateDocument inserts doc as a JSON row and returns it with its "id".
func (s *GormStore) CreateDocument(ctx context.Context, collection string, doc domain.Document) (domain.Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	record := &documentRecord{
		Collection: collection,
		Body:       string(body),
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	stored := doc.Clone()
	stored["id"] = record.ID
	return stored, nil
}

// GetDocuments loads the collection newest first and applies filter to the
// decoded bodies.
func (s *GormStore) GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	query := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at DESC")
	if len(filter) == 0 && limit > 0 {
		query = query.Limit(limit)
	}

	var records []documentRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	results := make([]domain.Document, 0, len(records))
	for _, rec := range records {
		doc := domain.Document{}
		if err := json.Unmarshal([]byte(rec.Body), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", rec.ID, err)
		}
		if !doc.Matches(filter) {
			continue
		}
		doc["id"] = rec.ID
		results = append(results, doc)
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results, nil
}

// Ping tests the database connection
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Stats returns database connection statistics
func (s *GormStore) Stats() (*sql.DBStats, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, err
	}
	stats := sqlDB.Stats()
	return &stats, nil
}

// Close closes the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
