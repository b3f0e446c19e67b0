package database

import (
	"context"
	"fmt"
	"time"

	"vivopizza/internal/config"
)

const pingTimeout = 5 * time.Second

// Open connects to the document store selected by cfg.URL and wraps it with
// query metrics.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (DocumentStore, error) {
	var (
		store DocumentStore
		err   error
	)

	switch driver := cfg.Driver(); driver {
	case "mongodb":
		store, err = OpenMongo(ctx, cfg.URL, cfg.Name)
	case "postgres":
		store, err = OpenPostgres(cfg.GetPostgresDSN())
	case "sqlite":
		store, err = OpenSQLite(cfg.GetSQLitePath())
	case "memory":
		store = NewMemoryStore()
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	return Instrument(store), nil
}
