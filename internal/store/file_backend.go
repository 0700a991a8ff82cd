package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"najla/expense-tracker/internal/fileutils"
	"najla/expense-tracker/internal/models"
)

// FileBackend stores each key as <dir>/<key>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed and returns a backend rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory must not be empty")
	}
	if err := fileutils.EnsureDirectoryExists(dir, models.PermissionDirectory); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

// Dir returns the data directory
func (b *FileBackend) Dir() string {
	return b.dir
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("error reading %s: %w", b.path(key), err)
	}
	return data, nil
}

func (b *FileBackend) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomic(b.path(key), value, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing %s: %w", b.path(key), err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (b *FileBackend) Close() error {
	return nil
}
