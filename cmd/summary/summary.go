// Package summary handles displaying ledger totals
package summary

import (
	"najla/expense-tracker/cmd/common"
	"najla/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expense and balance totals",
	Long: `Show total income, total expense and balance, the expense breakdown by
category (largest first) and the income and expense of each month.`,
	Args: cobra.NoArgs,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format: text, json or yaml")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	if err := common.CheckFormat(format, report.FormatText, report.FormatJSON, report.FormatYAML); err != nil {
		return err
	}

	c, err := common.Container(cmd)
	if err != nil {
		return err
	}

	tracker := c.GetTracker()
	summary := report.SummaryFrom(tracker.Snapshot(), tracker.Monthly())
	return c.GetReportGenerator().RenderSummary(cmd.OutOrStdout(), summary, format)
}
