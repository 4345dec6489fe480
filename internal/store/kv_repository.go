package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// keyValueRepository is the SQLite-backed implementation of
// [KeyValueRepository]. Every record is one row of kv_records.
type keyValueRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository constructs a [KeyValueRepository] on top of db.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	logger.Debug().Msg("creating key-value repository")
	return &keyValueRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Put implements [KeyValueRepository] as an upsert.
func (r *keyValueRepository) Put(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "keyValueRepository.Put").
			Str("key", key).
			Msg("failed to execute upsert")
		return fmt.Errorf("%w: put %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

// Get implements [KeyValueRepository].
func (r *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrRecordNotFound
	case err != nil:
		log.Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to query record")
		return "", fmt.Errorf("%w: get %q: %w", ErrExecutingQuery, key, err)
	}

	return value, nil
}

// Delete implements [KeyValueRepository]. Zero affected rows is not an error.
func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "keyValueRepository.Delete").
			Str("key", key).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: delete %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

// ListKeys implements [KeyValueRepository].
func (r *keyValueRepository) ListKeys(ctx context.Context) ([]string, error) {
	return r.listKeys(ctx, "")
}

// ListKeysWithPrefix implements [KeyValueRepository].
func (r *keyValueRepository) ListKeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	return r.listKeys(ctx, prefix)
}

func (r *keyValueRepository) listKeys(ctx context.Context, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListKeysQuery(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "keyValueRepository.listKeys").
			Str("prefix", prefix).
			Msg("failed to query keys")
		return nil, fmt.Errorf("%w: list keys: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			log.Err(err).
				Str("func", "keyValueRepository.listKeys").
				Msg("failed to scan key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "keyValueRepository.listKeys").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
