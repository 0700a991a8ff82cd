// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

// ParseTransactionType converts user input into a TransactionType.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type %q (expected %q or %q)",
			s, TransactionTypeIncome, TransactionTypeExpense)
	}
	return t, nil
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// String returns the wire representation of the type
func (t TransactionType) String() string {
	return string(t)
}

// Transaction is a single ledger record. Records are never edited in place,
// only created and deleted.
type Transaction struct {
	ID       int64
	Amount   decimal.Decimal
	Type     TransactionType
	Category string
	Date     string // calendar date, stored verbatim
	Notes    string
}

// IsIncome returns true if the transaction brings money in
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction takes money out
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TransactionInput is what an input collaborator hands to the ledger store.
// It carries everything but the id, which the store assigns.
type TransactionInput struct {
	Amount   decimal.Decimal
	Type     TransactionType
	Category string
	Date     string
	Notes    string
}

// NewTransaction builds a Transaction from an input and an assigned id.
func NewTransaction(id int64, in TransactionInput) Transaction {
	return Transaction{
		ID:       id,
		Amount:   in.Amount,
		Type:     in.Type,
		Category: in.Category,
		Date:     in.Date,
		Notes:    in.Notes,
	}
}
