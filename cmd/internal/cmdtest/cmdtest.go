// Package cmdtest runs commands against an in-memory ledger in tests.
package cmdtest

import (
	"bytes"
	"io"
	"testing"

	"najla/expense-tracker/cmd/root"
	"najla/expense-tracker/internal/config"
	"najla/expense-tracker/internal/container"
	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// NewContainer returns a container over a fresh memory backend.
func NewContainer(t *testing.T) (*container.Container, *store.MemoryBackend) {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	cfg.Display.CurrencySymbol = "$"

	backend := store.NewMemoryBackend()
	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithBackend(backend))
	require.NoError(t, err)
	return c, backend
}

// Execute runs cmd with args using c as the application container and returns
// everything the command wrote.
func Execute(t *testing.T, c *container.Container, cmd *cobra.Command, args ...string) (string, error) {
	return ExecuteWithInput(t, c, cmd, nil, args...)
}

// ExecuteWithInput is Execute with stdin.
func ExecuteWithInput(t *testing.T, c *container.Container, cmd *cobra.Command, in io.Reader, args ...string) (string, error) {
	t.Helper()

	original := root.AppContainer
	root.AppContainer = c
	defer func() { root.AppContainer = original }()

	ResetFlags(cmd)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if in != nil {
		cmd.SetIn(in)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// ResetFlags restores every flag of cmd and its subcommands to its default,
// since cobra keeps flag values between executions.
func ResetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		ResetFlags(sub)
	}
}
