// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strconv"
	"strings"

	"najla/expense-tracker/cmd/root"
	"najla/expense-tracker/internal/container"

	"github.com/spf13/cobra"
)

// StdioPath stands for standard input or output in file flags.
const StdioPath = "-"

// Container returns the application container for cmd, logging the command call.
func Container(cmd *cobra.Command) (*container.Container, error) {
	c, err := root.GetContainer()
	if err != nil {
		return nil, err
	}
	c.GetLogger().Debug(fmt.Sprintf("%s command called", cmd.Name()))
	return c, nil
}

// ParseID parses a transaction id argument.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q: must be an integer", s)
	}
	return id, nil
}

// CheckFormat returns an error unless format is one of allowed.
func CheckFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (expected one of: %s)", format, strings.Join(allowed, ", "))
}
