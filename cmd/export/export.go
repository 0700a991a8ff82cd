// Package export handles writing the ledger as CSV
package export

import (
	"fmt"

	"najla/expense-tracker/cmd/common"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV",
	Long: `Export every transaction as CSV with the columns Date,Type,Category,Amount,Notes.

The file name defaults to export.filename (expense_report.csv). Use "-o -" to
write to standard output.`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for standard output")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c, err := common.Container(cmd)
	if err != nil {
		return err
	}

	records := c.GetLedger().List()
	if output == common.StdioPath {
		return c.GetExporter().Write(cmd.OutOrStdout(), records)
	}

	path := output
	if path == "" {
		path = c.GetConfig().Export.Filename
	}
	if err := c.GetExporter().ExportToFile(path, records); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", len(records), path)
	return err
}
