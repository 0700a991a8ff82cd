// Package root contains the root command for the application
package root

import (
	"fmt"

	"najla/expense-tracker/internal/config"
	"najla/expense-tracker/internal/container"
	"najla/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	ConfigFile string
	DataDir    string
	Backend    string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies for the running command.
	// PersistentPreRunE builds it unless one has already been set.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A personal finance ledger for recording income and expenses.",
		Long: `expense-tracker records income and expense transactions in a local ledger,
shows totals with per-category and monthly breakdowns, and exports the ledger as CSV.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.expense-tracker, .expense-tracker and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DataDir, "data-dir", "", "Directory holding the ledger (default $HOME/.expense-tracker)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Storage backend: file, sqlite or memory")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format: text or json")
}

func setup(cmd *cobra.Command, args []string) error {
	if AppContainer != nil {
		return nil
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: SharedFlags.ConfigFile,
		Flags:      cmd.Root().PersistentFlags(),
	})
	if err != nil {
		return err
	}

	Log = config.ConfigureLoggingFromConfig(cfg)

	c, err := container.NewContainer(cfg, container.WithLogger(Log))
	if err != nil {
		return err
	}
	if corrupt := c.LoadWarning(); corrupt != nil {
		Log.WithError(corrupt).Warn("Stored ledger was unreadable, continuing with an empty ledger",
			logging.F("backup_key", corrupt.BackupKey))
	}

	AppContainer = c
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close application container")
	}
	AppContainer = nil
}

// GetContainer returns the application container, or an error when the
// command was started without one.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container not initialized")
	}
	return AppContainer, nil
}

// GetLogger returns the logger of the running command
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return Log
}

// Execute runs the root command. The container is released even when the
// command failed and PersistentPostRun was skipped.
func Execute() error {
	err := Cmd.Execute()
	teardown(Cmd, nil)
	return err
}
