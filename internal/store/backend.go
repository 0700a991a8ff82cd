// Package store holds the ledger store and the durable key-value backends it persists to.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKeyNotFound is returned by Backend.Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Backend is durable local key-value storage. Set must replace the value atomically:
// after a failed Set the previous value is still readable.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Backend names accepted in configuration
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("storage key %q must not contain path separators", key)
	}
	return nil
}
