package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendFactories builds every Backend implementation against a fresh location.
func backendFactories() map[string]func(t *testing.T) Backend {
	return map[string]func(t *testing.T) Backend{
		BackendMemory: func(t *testing.T) Backend {
			return NewMemoryBackend()
		},
		BackendFile: func(t *testing.T) Backend {
			b, err := NewFileBackend(filepath.Join(t.TempDir(), "data"))
			require.NoError(t, err)
			return b
		},
		BackendSQLite: func(t *testing.T) Backend {
			b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "ledger.db"))
			require.NoError(t, err)
			return b
		},
	}
}

func TestBackends_Contract(t *testing.T) {
	for name, factory := range backendFactories() {
		t.Run(name, func(t *testing.T) {
			b := factory(t)
			defer func() {
				assert.NoError(t, b.Close())
			}()

			_, err := b.Get("transactions")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, b.Set("transactions", []byte(`[]`)))
			value, err := b.Get("transactions")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(value))

			require.NoError(t, b.Set("transactions", []byte(`[{"id":1}]`)))
			value, err = b.Get("transactions")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":1}]`, string(value))

			require.NoError(t, b.Set("transactions.corrupt", []byte(`garbage`)))
			value, err = b.Get("transactions")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":1}]`, string(value), "keys are independent")
		})
	}
}

func TestBackends_LedgerRoundTrip(t *testing.T) {
	for name, factory := range backendFactories() {
		t.Run(name, func(t *testing.T) {
			b := factory(t)
			defer b.Close()

			s := NewLedgerStore(b, logging.NewMockLogger(), WithClock(fixedClock))
			added := addScenario(t, s)

			reloaded := NewLedgerStore(b, logging.NewMockLogger())
			loaded, err := reloaded.Load()
			require.NoError(t, err)
			assertSameTransactions(t, added, loaded)
		})
	}
}

func TestFileBackend_Layout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, b.Dir())

	require.NoError(t, b.Set(models.DefaultStorageKey, []byte(`[]`)))
	content, err := os.ReadFile(filepath.Join(dir, "transactions.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(content))

	info, err := os.Stat(filepath.Join(dir, "transactions.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(models.PermissionDataFile), info.Mode().Perm())
}

func TestFileBackend_RejectsBadKeys(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", `a\b`, ".."} {
		assert.Error(t, b.Set(key, []byte("x")), "key %q", key)
		_, err := b.Get(key)
		assert.Error(t, err, "key %q", key)
		assert.False(t, errors.Is(err, ErrKeyNotFound))
	}

	_, err = NewFileBackend("")
	assert.Error(t, err)
}

func TestSQLiteBackend_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "ledger.db")

	first, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	assert.Equal(t, path, first.Path())
	require.NoError(t, first.Set(models.DefaultStorageKey, []byte(`[{"id":7}]`)))
	require.NoError(t, first.Close())

	// Migrations are idempotent on an existing database.
	second, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get(models.DefaultStorageKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":7}]`, string(value))
}

func TestSQLiteBackend_EmptyPath(t *testing.T) {
	_, err := NewSQLiteBackend("")
	assert.Error(t, err)
}

func TestMemoryBackend_ReturnsCopies(t *testing.T) {
	b := NewMemoryBackend()
	original := []byte("abc")
	require.NoError(t, b.Set("k", original))
	original[0] = 'X'

	value, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))

	value[0] = 'Y'
	again, _ := b.Get("k")
	assert.Equal(t, "abc", string(again))
	assert.Equal(t, 1, b.Keys())
}

func TestMemoryBackend_ZeroValue(t *testing.T) {
	var b MemoryBackend
	require.NoError(t, b.Set("k", []byte("v")))
	value, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(value))
}
