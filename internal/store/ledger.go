package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"najla/expense-tracker/internal/ledgererror"
	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"
)

// Listener is notified with a snapshot of the ledger after every successful mutation.
type Listener = func(transactions []models.Transaction)

// LedgerStore is the authoritative, ordered list of transactions, kept in sync
// with a durable Backend. Every mutation is persisted in full before it returns;
// a mutation whose persist fails is rolled back.
type LedgerStore struct {
	mu           sync.Mutex
	backend      Backend
	key          string
	logger       logging.Logger
	ids          *IDGenerator
	transactions []models.Transaction
	listeners    []Listener
}

// Option customizes a LedgerStore.
type Option func(*LedgerStore)

// WithKey sets the storage key the ledger is persisted under.
func WithKey(key string) Option {
	return func(s *LedgerStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock sets the clock used to derive ids.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerStore) {
		s.ids = NewIDGenerator(now)
	}
}

// NewLedgerStore returns an empty store over backend. Call Load to read the
// persisted ledger.
func NewLedgerStore(backend Backend, logger logging.Logger, opts ...Option) *LedgerStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	s := &LedgerStore{
		backend:      backend,
		key:          models.DefaultStorageKey,
		ids:          NewIDGenerator(nil),
		transactions: []models.Transaction{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.WithField(logging.FieldStorageKey, s.key)
	return s
}

// Key returns the storage key
func (s *LedgerStore) Key() string {
	return s.key
}

// Load replaces the in-memory ledger with the persisted one and returns it.
//
// A missing entry yields an empty ledger and no error. An entry that cannot be
// decoded also yields an empty ledger; its raw bytes are copied to
// "<key>.corrupt" and a *ledgererror.CorruptDataError is returned, after which
// the store is still usable. A backend read failure yields an empty ledger and
// the wrapped read error.
func (s *LedgerStore) Load() ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = []models.Transaction{}

	data, err := s.backend.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			s.logger.Debug("No stored ledger found, starting empty")
			return s.snapshot(), nil
		}
		return s.snapshot(), fmt.Errorf("failed to read ledger: %w", err)
	}

	transactions, err := DecodeLedger(data)
	if err != nil {
		return s.snapshot(), s.quarantine(data, err)
	}

	s.transactions = transactions
	for _, tx := range transactions {
		s.ids.Observe(tx.ID)
	}
	if rekeyed := s.rekeyDuplicates(); rekeyed > 0 {
		s.logger.Warn("Stored ledger had duplicate ids, assigned fresh ids",
			logging.F(logging.FieldCount, rekeyed))
		if err := s.persistLocked(); err != nil {
			s.logger.WithError(err).Warn("Re-keyed ledger not saved, ids may change on next load")
		}
	}

	s.logger.Debug("Loaded ledger", logging.F(logging.FieldCount, len(transactions)))
	return s.snapshot(), nil
}

// rekeyDuplicates gives every repeated id after its first occurrence a fresh id
// and returns how many records changed. Called with mu held, after all stored
// ids were observed.
func (s *LedgerStore) rekeyDuplicates() int {
	seen := make(map[int64]struct{}, len(s.transactions))
	rekeyed := 0
	for i := range s.transactions {
		if _, dup := seen[s.transactions[i].ID]; dup {
			s.transactions[i].ID = s.ids.Next()
			rekeyed++
		}
		seen[s.transactions[i].ID] = struct{}{}
	}
	return rekeyed
}

// quarantine preserves unreadable data under the backup key. Called with mu held.
func (s *LedgerStore) quarantine(raw []byte, cause error) error {
	corrupt := &ledgererror.CorruptDataError{Key: s.key, Err: cause}

	backupKey := s.key + models.CorruptKeySuffix
	if err := s.backend.Set(backupKey, raw); err != nil {
		s.logger.WithError(err).Error("Failed to preserve corrupt ledger data")
	} else {
		corrupt.BackupKey = backupKey
	}

	s.logger.WithError(cause).Warn("Stored ledger is corrupt, starting empty",
		logging.F("backup_key", corrupt.BackupKey))
	return corrupt
}

// Add appends a new transaction built from in and persists the ledger.
func (s *LedgerStore) Add(in models.TransactionInput) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := models.NewTransaction(s.ids.Next(), in)
	previous := s.transactions
	s.transactions = append(append(make([]models.Transaction, 0, len(previous)+1), previous...), tx)

	if err := s.persistLocked(); err != nil {
		s.transactions = previous
		return models.Transaction{}, &ledgererror.PersistError{Operation: "add", Key: s.key, Err: err}
	}

	s.logger.Info("Transaction added",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldType, tx.Type.String()),
		logging.F(logging.FieldCategory, tx.Category),
		logging.F(logging.FieldAmount, tx.Amount.String()))
	s.notify()
	return tx, nil
}

// Remove deletes the transaction with the given id and persists the ledger.
// It reports false, without persisting, when no such transaction exists.
func (s *LedgerStore) Remove(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("Remove ignored, transaction not found", logging.F(logging.FieldTransactionID, id))
		return false, nil
	}

	previous := s.transactions
	remaining := make([]models.Transaction, 0, len(previous)-1)
	remaining = append(remaining, previous[:idx]...)
	remaining = append(remaining, previous[idx+1:]...)
	s.transactions = remaining

	if err := s.persistLocked(); err != nil {
		s.transactions = previous
		return false, &ledgererror.PersistError{Operation: "remove", Key: s.key, Err: err}
	}

	s.logger.Info("Transaction removed", logging.F(logging.FieldTransactionID, id))
	s.notify()
	return true, nil
}

// List returns a copy of the ledger in insertion order.
func (s *LedgerStore) List() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Get returns the transaction with the given id.
func (s *LedgerStore) Get(id int64) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Transaction{}, false
	}
	return s.transactions[idx], true
}

// Len returns the number of transactions held.
func (s *LedgerStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// Persist writes the full ledger to the backend, replacing what was stored.
func (s *LedgerStore) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(); err != nil {
		return &ledgererror.PersistError{Operation: "persist", Key: s.key, Err: err}
	}
	return nil
}

// Subscribe registers a listener called after every successful Add or Remove.
// Listeners run synchronously while the store is locked and must not call back
// into the store.
func (s *LedgerStore) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *LedgerStore) persistLocked() error {
	data, err := EncodeLedger(s.transactions)
	if err != nil {
		return err
	}
	if err := s.backend.Set(s.key, data); err != nil {
		s.logger.WithError(err).Error("Failed to persist ledger")
		return err
	}
	return nil
}

func (s *LedgerStore) notify() {
	for _, listener := range s.listeners {
		listener(s.snapshot())
	}
}

func (s *LedgerStore) indexOf(id int64) int {
	for i, tx := range s.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func (s *LedgerStore) snapshot() []models.Transaction {
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
