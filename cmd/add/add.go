// Package add handles recording new transactions
package add

import (
	"fmt"

	"najla/expense-tracker/cmd/common"
	"najla/expense-tracker/internal/currencyutils"
	"najla/expense-tracker/internal/dateutils"
	"najla/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	amount   string
	txType   string
	category string
	date     string
	notes    string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense transaction",
	Long: `Record an income or expense transaction in the ledger.

Amounts must be non-negative; record refunds as income. Expenses need a category.

Example:
  expense-tracker add -a 1200 -t expense -c Rent -d 2024-01-02 -n "January"`,
	Args: cobra.NoArgs,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount, e.g. 12.50")
	Cmd.Flags().StringVarP(&txType, "type", "t", "", "Transaction type: income or expense")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category (required for expenses)")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (default today)")
	Cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-text notes")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("type")
}

func addFunc(cmd *cobra.Command, args []string) error {
	c, err := common.Container(cmd)
	if err != nil {
		return err
	}

	txDate := date
	if txDate == "" {
		txDate = dateutils.Today()
	}

	in, err := validation.BuildInput(amount, txType, category, txDate, notes)
	if err != nil {
		return err
	}

	tx, err := c.GetLedger().Add(in)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s on %s (id %d)\n",
		tx.Type, currencyutils.WithSymbol(tx.Amount.String(), c.GetReportGenerator().CurrencySymbol()), tx.Date, tx.ID)
	return err
}
