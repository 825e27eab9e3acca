package store

import (
	"context"
	"database/sql"
	"errors"
)

const (
	getValueStatement = `
	SELECT value
	FROM kv_store
	WHERE key = ?
	`

	putValueStatement = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, unixepoch())
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = unixepoch()
	`
)

// SQLBackend persists values in the kv_store table created by db.MigrateLatest.
type SQLBackend struct {
	db *sql.DB
}

// NewSQLBackend wraps an open, migrated database.
func NewSQLBackend(db *sql.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.QueryRowContext(ctx, getValueStatement, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (b *SQLBackend) Put(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx, putValueStatement, key, string(value))
	return err
}
