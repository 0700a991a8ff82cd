package models

import "github.com/shopspring/decimal"

// AggregateSnapshot holds totals derived from a ledger. It is never stored.
type AggregateSnapshot struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	// CategoryTotals sums expense amounts by category. Income is not broken down.
	CategoryTotals map[string]decimal.Decimal
	Count          int
}

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// MonthTotal is the income and expense booked in one calendar month.
type MonthTotal struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}
