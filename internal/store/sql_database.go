package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/migrations"
)

// DB wraps the SQLite connection pool of the key-value backend.
type DB struct {
	*sql.DB
	dsn    string
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Prepare creates the parent directory of the database file, checks the
// connection and runs migrations. It is the key-value part of the storage
// initialization run by the [Gate].
func (db *DB) Prepare(ctx context.Context) error {
	if dir, ok := databaseDir(db.dsn); ok {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create database dir: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.logger.Err(err).Str("func", "DB.Prepare").Msg("error connecting database (ping)")
		return fmt.Errorf("ping database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.logger.Err(err).Str("func", "DB.Prepare").Msg("error migrating database")
		return err
	}

	db.logger.Debug().Str("func", "DB.Prepare").Msg("key-value store is ready")
	return nil
}

// databaseDir returns the directory of a plain file DSN. URI DSNs and the
// in-memory database are left to the driver.
func databaseDir(dsn string) (string, bool) {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return "", false
	}
	dir := filepath.Dir(dsn)
	return dir, dir != "."
}
