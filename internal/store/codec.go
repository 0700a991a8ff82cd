package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"najla/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// wireTransaction is the persisted shape of a transaction. Amounts are JSON
// numbers, not strings.
type wireTransaction struct {
	ID       int64       `json:"id"`
	Amount   json.Number `json:"amount"`
	Type     string      `json:"type"`
	Category string      `json:"category"`
	Date     string      `json:"date"`
	Notes    string      `json:"notes"`
}

// EncodeLedger serializes transactions as a JSON array, preserving order.
func EncodeLedger(transactions []models.Transaction) ([]byte, error) {
	wire := make([]wireTransaction, len(transactions))
	for i, tx := range transactions {
		wire[i] = wireTransaction{
			ID:       tx.ID,
			Amount:   json.Number(tx.Amount.String()),
			Type:     tx.Type.String(),
			Category: tx.Category,
			Date:     tx.Date,
			Notes:    tx.Notes,
		}
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger: %w", err)
	}
	return data, nil
}

// DecodeLedger parses a stored JSON array. Unknown fields are ignored; an unknown
// transaction type or a non-numeric amount makes the whole document invalid.
// Duplicate ids are kept as stored; LedgerStore.Load re-keys them.
func DecodeLedger(data []byte) ([]models.Transaction, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("stored ledger is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var wire []wireTransaction
	if err := decoder.Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("unexpected data after ledger array")
	}

	transactions := make([]models.Transaction, 0, len(wire))
	for i, w := range wire {
		amount, err := decimal.NewFromString(w.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid amount %q: %w", i, w.Amount, err)
		}
		txType := models.TransactionType(w.Type)
		if !txType.IsValid() {
			return nil, fmt.Errorf("record %d: unknown transaction type %q", i, w.Type)
		}
		transactions = append(transactions, models.Transaction{
			ID:       w.ID,
			Amount:   amount,
			Type:     txType,
			Category: w.Category,
			Date:     w.Date,
			Notes:    w.Notes,
		})
	}
	return transactions, nil
}
