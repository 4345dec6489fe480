// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_records"
	kvKeyColumn   = "record_key"
	kvValueColumn = "record_value"
	kvUpdatedAt   = "updated_at"
)

// kvBuilder emits SQLite '?' placeholders.
var kvBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildPutQuery(key, value string, now time.Time) (string, []any, error) {
	return kvBuilder.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = excluded." + kvUpdatedAt).
		ToSql()
}

func buildGetQuery(key string) (string, []any, error) {
	return kvBuilder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func buildDeleteQuery(key string) (string, []any, error) {
	return kvBuilder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildListKeysQuery selects all keys, or only those starting with prefix
// when it is non-empty. substr keeps the match case-sensitive, unlike LIKE.
func buildListKeysQuery(prefix string) (string, []any, error) {
	q := kvBuilder.
		Select(kvKeyColumn).
		From(kvTable).
		OrderBy(kvKeyColumn)

	if prefix != "" {
		q = q.Where(sq.Expr("substr("+kvKeyColumn+", 1, ?) = ?", utf8.RuneCountInString(prefix), prefix))
	}

	return q.ToSql()
}
