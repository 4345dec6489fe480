package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// NewSQLite opens (lazily) the SQLite database at dsn. No file is touched
// until the first query; [DB.Prepare] creates the directory and schema.
//
// The pool is capped at one connection: SQLite allows a single writer and
// an in-memory database exists per connection.
func NewSQLite(dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	return &DB{
		DB:     conn,
		dsn:    dsn,
		logger: log,
	}, nil
}
