package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"najla/expense-tracker/internal/fileutils"
	"najla/expense-tracker/internal/models"

	_ "modernc.org/sqlite"
)

const (
	selectValueQuery = `SELECT value FROM kv_store WHERE key = ?`
	upsertValueQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// SQLiteBackend stores values in a kv_store table. Each Set is a single UPSERT,
// so a failed write leaves the previous value in place.
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

// NewSQLiteBackend opens (or creates) the database at dbPath and migrates it.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite path must not be empty")
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(dbPath), models.PermissionDirectory); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteBackend{db: db, path: dbPath}, nil
}

// Path returns the database file path
func (b *SQLiteBackend) Path() string {
	return b.path
}

func (b *SQLiteBackend) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var value []byte
	err := b.db.QueryRow(selectValueQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (b *SQLiteBackend) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := b.db.Exec(upsertValueQuery, key, value, updatedAt); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
