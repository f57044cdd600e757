// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "responses.db"

// SQLiteCache persists entries in a SQLite database under a directory.
type SQLiteCache struct {
	db         *sql.DB
	defaultTTL time.Duration

	// now is replaced in tests.
	now func() time.Time
}

// NewSQLiteCache opens or creates dir/responses.db and its schema.
func NewSQLiteCache(dir string, defaultTTL time.Duration) (*SQLiteCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &SQLiteCache{db: db, defaultTTL: defaultTTL, now: time.Now}, nil
}

// Close releases the database connection.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Get returns the stored value. An expired row is deleted and reported as a
// miss. Database errors are misses too.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	var expiresAt int64
	err := c.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM responses WHERE key = ?`, key,
	).Scan(&value, &expiresAt)
	if err != nil {
		return nil, false
	}

	if c.now().UnixNano() >= expiresAt {
		c.db.ExecContext(ctx, `DELETE FROM responses WHERE key = ?`, key)
		return nil, false
	}
	return value, true
}

func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	expiresAt := c.now().Add(ttl).UnixNano()

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO responses (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM responses WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM responses`); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

// Purge removes every expired row and returns how many were removed.
func (c *SQLiteCache) Purge(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM responses WHERE expires_at <= ?`, c.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("purging cache: %w", err)
	}
	return res.RowsAffected()
}
