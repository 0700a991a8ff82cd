// Package remove handles deleting transactions
package remove

import (
	"fmt"

	"najla/expense-tracker/cmd/common"

	"github.com/spf13/cobra"
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a transaction by id",
	Long: `Delete a transaction by id. The ids are shown by the list command.
Removing an id that does not exist changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: removeFunc,
}

func removeFunc(cmd *cobra.Command, args []string) error {
	id, err := common.ParseID(args[0])
	if err != nil {
		return err
	}

	c, err := common.Container(cmd)
	if err != nil {
		return err
	}

	removed, err := c.GetLedger().Remove(id)
	if err != nil {
		return err
	}

	if removed {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed transaction %d\n", id)
	} else {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "No transaction with id %d\n", id)
	}
	return err
}
