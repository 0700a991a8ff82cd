// Package list handles displaying the ledger
package list

import (
	"najla/expense-tracker/cmd/common"
	"najla/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show all transactions",
	Long:    `Show all transactions in the order they were recorded, oldest first.`,
	Args:    cobra.NoArgs,
	RunE:    listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format: text or json")
}

func listFunc(cmd *cobra.Command, args []string) error {
	if err := common.CheckFormat(format, report.FormatText, report.FormatJSON); err != nil {
		return err
	}

	c, err := common.Container(cmd)
	if err != nil {
		return err
	}

	return c.GetReportGenerator().RenderTransactions(cmd.OutOrStdout(), c.GetLedger().List(), format)
}
