// Package validation checks transaction input at the collaborator boundary, before it
// reaches the ledger store. The store itself trusts what it is given.
package validation

import (
	"strings"

	"najla/expense-tracker/internal/currencyutils"
	"najla/expense-tracker/internal/dateutils"
	"najla/expense-tracker/internal/ledgererror"
	"najla/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Field names reported in ValidationError.Field
const (
	FieldAmount   = "amount"
	FieldType     = "type"
	FieldCategory = "category"
	FieldDate     = "date"
)

// ParseAmount converts user-entered text into a non-negative decimal amount.
// Currency symbols and thousand separators are dropped, and a lone comma is
// read as the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, invalid(FieldAmount, s, "is required")
	}
	amount, err := currencyutils.ParseAmount(s)
	if err != nil {
		return decimal.Zero, invalid(FieldAmount, s, "is not a number")
	}
	if amount.IsNegative() {
		return decimal.Zero, invalid(FieldAmount, s, "must not be negative")
	}
	return amount, nil
}

// ParseType converts user-entered text into a TransactionType.
func ParseType(s string) (models.TransactionType, error) {
	t, err := models.ParseTransactionType(s)
	if err != nil {
		return "", invalid(FieldType, s, "must be 'income' or 'expense'")
	}
	return t, nil
}

// ValidateInput checks every field of in and returns the first problem found
// as a *ledgererror.ValidationError.
func ValidateInput(in models.TransactionInput) error {
	if in.Amount.IsNegative() {
		return invalid(FieldAmount, in.Amount.String(), "must not be negative")
	}
	if !in.Type.IsValid() {
		return invalid(FieldType, string(in.Type), "must be 'income' or 'expense'")
	}
	if in.Type == models.TransactionTypeExpense && strings.TrimSpace(in.Category) == "" {
		return invalid(FieldCategory, in.Category, "is required for expenses")
	}
	if strings.TrimSpace(in.Date) == "" {
		return invalid(FieldDate, in.Date, "is required")
	}
	if !dateutils.IsISODate(in.Date) {
		return invalid(FieldDate, in.Date, "must be a calendar date in YYYY-MM-DD form")
	}
	return nil
}

// BuildInput parses raw text fields into a validated TransactionInput.
func BuildInput(amount, txType, category, date, notes string) (models.TransactionInput, error) {
	parsedAmount, err := ParseAmount(amount)
	if err != nil {
		return models.TransactionInput{}, err
	}
	parsedType, err := ParseType(txType)
	if err != nil {
		return models.TransactionInput{}, err
	}
	in := models.TransactionInput{
		Amount:   parsedAmount,
		Type:     parsedType,
		Category: strings.TrimSpace(category),
		Date:     strings.TrimSpace(date),
		Notes:    NormalizeNotes(notes),
	}
	if err := ValidateInput(in); err != nil {
		return models.TransactionInput{}, err
	}
	return in, nil
}

// NormalizeNotes turns CRLF line breaks into LF. CSV readers drop the CR inside
// quoted fields, so notes are stored the way they come back from an import.
func NormalizeNotes(notes string) string {
	return strings.ReplaceAll(notes, "\r\n", "\n")
}

func invalid(field, value, reason string) error {
	return &ledgererror.ValidationError{Field: field, Value: value, Reason: reason}
}
