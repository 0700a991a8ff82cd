// Package report renders the ledger and its aggregates for the terminal and for
// machine consumption.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"najla/expense-tracker/internal/aggregator"
	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"
	"najla/expense-tracker/internal/store"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// CategoryLine is one row of the expense breakdown.
type CategoryLine struct {
	Category string `json:"category" yaml:"category"`
	Amount   string `json:"amount" yaml:"amount"`
}

// MonthLine is one row of the monthly series.
type MonthLine struct {
	Month   string `json:"month" yaml:"month"`
	Income  string `json:"income" yaml:"income"`
	Expense string `json:"expense" yaml:"expense"`
	Balance string `json:"balance" yaml:"balance"`
}

// Summary is the printable form of the aggregates. Amounts carry two decimals.
type Summary struct {
	TotalIncome  string         `json:"total_income" yaml:"total_income"`
	TotalExpense string         `json:"total_expense" yaml:"total_expense"`
	Balance      string         `json:"balance" yaml:"balance"`
	Count        int            `json:"transaction_count" yaml:"transaction_count"`
	Categories   []CategoryLine `json:"categories" yaml:"categories"`
	Months       []MonthLine    `json:"months" yaml:"months"`
}

// BuildSummary aggregates records into a Summary.
func BuildSummary(records []models.Transaction) Summary {
	return SummaryFrom(aggregator.Aggregate(records), aggregator.MonthlyTotals(records))
}

// SummaryFrom formats precomputed aggregates.
func SummaryFrom(snapshot models.AggregateSnapshot, months []models.MonthTotal) Summary {
	summary := Summary{
		TotalIncome:  snapshot.TotalIncome.StringFixed(2),
		TotalExpense: snapshot.TotalExpense.StringFixed(2),
		Balance:      snapshot.Balance.StringFixed(2),
		Count:        snapshot.Count,
		Categories:   []CategoryLine{},
		Months:       []MonthLine{},
	}
	for _, c := range aggregator.CategoryBreakdown(snapshot) {
		summary.Categories = append(summary.Categories, CategoryLine{
			Category: c.Category,
			Amount:   c.Amount.StringFixed(2),
		})
	}
	for _, m := range months {
		summary.Months = append(summary.Months, MonthLine{
			Month:   m.Month,
			Income:  m.Income.StringFixed(2),
			Expense: m.Expense.StringFixed(2),
			Balance: m.Balance.StringFixed(2),
		})
	}
	return summary
}

// Generator renders reports in the supported formats.
type Generator struct {
	logger   logging.Logger
	currency string
}

// NewGenerator creates a Generator that labels amounts with currencySymbol in text output.
func NewGenerator(logger logging.Logger, currencySymbol string) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if currencySymbol == "" {
		currencySymbol = models.DefaultCurrencySymbol
	}
	return &Generator{
		logger:   logger.WithField(logging.FieldComponent, "report"),
		currency: currencySymbol,
	}
}

// CurrencySymbol returns the symbol used in text output
func (g *Generator) CurrencySymbol() string {
	return g.currency
}

// RenderSummary writes the summary in the given format.
func (g *Generator) RenderSummary(w io.Writer, summary Summary, format string) error {
	switch format {
	case FormatText, "":
		return g.writeSummaryText(w, summary)
	case FormatJSON:
		return g.writeJSON(w, summary)
	case FormatYAML:
		return g.writeYAML(w, summary)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// RenderTransactions writes the ledger in the given format. JSON output uses the
// storage wire format, indented.
func (g *Generator) RenderTransactions(w io.Writer, records []models.Transaction, format string) error {
	switch format {
	case FormatText, "":
		return g.writeTransactionsText(w, records)
	case FormatJSON:
		data, err := store.EncodeLedger(records)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unsupported list format: %s", format)
	}
}

func (g *Generator) writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func (g *Generator) writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return encoder.Close()
}
