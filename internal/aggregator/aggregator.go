// Package aggregator derives totals and breakdowns from a ledger. Nothing here is
// cached; every call recomputes from the records it is given.
package aggregator

import (
	"sort"

	"najla/expense-tracker/internal/dateutils"
	"najla/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate sums the records by type and expense amounts by category.
// An empty ledger yields zero totals and an empty, non-nil category map.
// A category only appears once it has a non-zero expense.
func Aggregate(records []models.Transaction) models.AggregateSnapshot {
	snapshot := models.AggregateSnapshot{
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		CategoryTotals: make(map[string]decimal.Decimal),
		Count:          len(records),
	}

	for _, tx := range records {
		switch tx.Type {
		case models.TransactionTypeIncome:
			snapshot.TotalIncome = snapshot.TotalIncome.Add(tx.Amount)
		case models.TransactionTypeExpense:
			snapshot.TotalExpense = snapshot.TotalExpense.Add(tx.Amount)
			if tx.Amount.IsZero() {
				continue
			}
			current, ok := snapshot.CategoryTotals[tx.Category]
			if !ok {
				current = decimal.Zero
			}
			snapshot.CategoryTotals[tx.Category] = current.Add(tx.Amount)
		}
	}

	snapshot.Balance = snapshot.TotalIncome.Sub(snapshot.TotalExpense)
	return snapshot
}

// CategoryBreakdown flattens the category totals, largest first. Ties are broken
// by category name so the order is stable.
func CategoryBreakdown(snapshot models.AggregateSnapshot) []models.CategoryAmount {
	breakdown := make([]models.CategoryAmount, 0, len(snapshot.CategoryTotals))
	for category, amount := range snapshot.CategoryTotals {
		breakdown = append(breakdown, models.CategoryAmount{Category: category, Amount: amount})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if c := breakdown[i].Amount.Cmp(breakdown[j].Amount); c != 0 {
			return c > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// MonthlyTotals buckets income and expense by calendar month, oldest month first.
// Records whose date cannot be parsed are left out.
func MonthlyTotals(records []models.Transaction) []models.MonthTotal {
	byMonth := make(map[string]*models.MonthTotal)

	for _, tx := range records {
		month, ok := dateutils.MonthKey(tx.Date)
		if !ok {
			continue
		}
		total, exists := byMonth[month]
		if !exists {
			total = &models.MonthTotal{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[month] = total
		}
		if tx.IsIncome() {
			total.Income = total.Income.Add(tx.Amount)
		} else if tx.IsExpense() {
			total.Expense = total.Expense.Add(tx.Amount)
		}
	}

	months := make([]models.MonthTotal, 0, len(byMonth))
	for _, total := range byMonth {
		total.Balance = total.Income.Sub(total.Expense)
		months = append(months, *total)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}
