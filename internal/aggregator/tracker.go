package aggregator

import (
	"sync"

	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Source is the part of the ledger store a Tracker needs.
type Source interface {
	List() []models.Transaction
	Subscribe(listener func([]models.Transaction))
}

// Tracker keeps the latest snapshot of a ledger, recomputed after every mutation.
type Tracker struct {
	mu       sync.RWMutex
	logger   logging.Logger
	snapshot models.AggregateSnapshot
	monthly  []models.MonthTotal
}

// NewTracker computes the initial snapshot from source and subscribes to its changes.
func NewTracker(source Source, logger logging.Logger) *Tracker {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	t := &Tracker{logger: logger.WithField(logging.FieldComponent, "aggregator")}
	t.update(source.List())
	source.Subscribe(t.update)
	return t
}

func (t *Tracker) update(records []models.Transaction) {
	snapshot := Aggregate(records)
	monthly := MonthlyTotals(records)

	t.mu.Lock()
	t.snapshot = snapshot
	t.monthly = monthly
	t.mu.Unlock()

	t.logger.Debug("Aggregates recomputed",
		logging.F(logging.FieldCount, snapshot.Count),
		logging.F("balance", snapshot.Balance.String()))
}

// Snapshot returns the most recent totals.
func (t *Tracker) Snapshot() models.AggregateSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := t.snapshot
	snapshot.CategoryTotals = make(map[string]decimal.Decimal, len(t.snapshot.CategoryTotals))
	for category, amount := range t.snapshot.CategoryTotals {
		snapshot.CategoryTotals[category] = amount
	}
	return snapshot
}

// Monthly returns the most recent per-month series.
func (t *Tracker) Monthly() []models.MonthTotal {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.MonthTotal(nil), t.monthly...)
}
