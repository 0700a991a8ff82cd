// Package importcsv handles loading transactions from a CSV report
package importcsv

import (
	"fmt"

	"najla/expense-tracker/cmd/common"
	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

var input string

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV report",
	Long: `Import transactions from a CSV file in the format written by export.

Every row is validated before anything is added, so an invalid row leaves the
ledger unchanged. Imported transactions get new ids. Use "-i -" to read from
standard input.`,
	Args: cobra.NoArgs,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file to import, or - for standard input")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	c, err := common.Container(cmd)
	if err != nil {
		return err
	}

	var inputs []models.TransactionInput
	if input == common.StdioPath {
		inputs, err = c.GetExporter().Read(cmd.InOrStdin())
	} else {
		inputs, err = c.GetExporter().ImportFile(input)
	}
	if err != nil {
		return err
	}

	ledger := c.GetLedger()
	for i, in := range inputs {
		if _, err := ledger.Add(in); err != nil {
			c.GetLogger().WithError(err).Error("Import stopped",
				logging.F(logging.FieldCount, i),
				logging.F(logging.FieldInputFile, input))
			return fmt.Errorf("imported %d of %d transactions: %w", i, len(inputs), err)
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions\n", len(inputs))
	return err
}
