// Package ledgererror defines the typed errors returned by the ledger and its collaborators.
package ledgererror

import "fmt"

// ValidationError reports a TransactionInput field that failed validation.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// CorruptDataError reports that the stored ledger exists but could not be decoded.
// The ledger has been reset to empty; when BackupKey is set the raw bytes were
// preserved under that key.
type CorruptDataError struct {
	Key       string
	BackupKey string
	Err       error
}

func (e *CorruptDataError) Error() string {
	if e.BackupKey != "" {
		return fmt.Sprintf("stored ledger '%s' is corrupt (raw data preserved as '%s'): %v",
			e.Key, e.BackupKey, e.Err)
	}
	return fmt.Sprintf("stored ledger '%s' is corrupt: %v", e.Key, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// PersistError reports that a mutation could not be written to durable storage.
// The in-memory ledger has been rolled back to match what is stored.
type PersistError struct {
	Operation string
	Key       string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: failed to persist ledger '%s': %v", e.Operation, e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// ImportError reports a CSV row that could not be turned into a transaction.
type ImportError struct {
	Line int
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
