package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists keys in a single-file SQLite database. This is the
// default backend: a local, durable key-value file with no external
// service, matching the survive-restart rehydration semantics.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open sqlite %s: %w", path, err)
	}
	// single writer; sqlite serializes writes anyway
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (ss *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := ss.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	return value, err
}

func (ss *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := ss.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (ss *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := ss.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (ss *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := ss.db.QueryContext(ctx,
		`SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (ss *SQLiteStore) Close() error {
	return ss.db.Close()
}
