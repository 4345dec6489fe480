package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// ClientStorages groups both vault backends and the readiness gate that
// guards them.
type ClientStorages struct {
	// KeyValue is the SQLite-backed structured store for credentials,
	// document envelopes and note envelopes.
	KeyValue KeyValueRepository

	// Files is the documents directory holding raw ciphertext copies.
	Files DocumentFileStorage

	// Ready must be awaited before either backend is used.
	Ready *Gate

	db *DB
}

// NewClientStorages builds the storage layer from cfg. It performs no I/O:
// opening the schema and creating the documents directory is deferred to
// the returned [Gate], which runs the following exactly once:
//  1. creates the database directory, pings SQLite and applies migrations;
//  2. creates the documents directory.
func NewClientStorages(cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewSQLite(cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	files := NewDocumentFileStorage(cfg.Files.DocumentsDir, log)

	gate := NewGate(func(ctx context.Context) error {
		if err := db.Prepare(ctx); err != nil {
			return fmt.Errorf("prepare key-value store: %w", err)
		}
		if err := files.Init(ctx); err != nil {
			return fmt.Errorf("prepare documents dir: %w", err)
		}
		log.Info().Str("documents_dir", cfg.Files.DocumentsDir).Msg("storages are ready")
		return nil
	})

	return &ClientStorages{
		KeyValue: NewKeyValueRepository(db, log),
		Files:    files,
		Ready:    gate,
		db:       db,
	}, nil
}

// Close releases the database connection pool.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
