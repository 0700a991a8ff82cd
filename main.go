package main

import (
	"fmt"
	"os"
	"path/filepath"

	"najla/expense-tracker/cmd/add"
	"najla/expense-tracker/cmd/export"
	"najla/expense-tracker/cmd/importcsv"
	"najla/expense-tracker/cmd/list"
	"najla/expense-tracker/cmd/remove"
	"najla/expense-tracker/cmd/root"
	"najla/expense-tracker/cmd/summary"
	"najla/expense-tracker/internal/config"
)

func init() {
	// Environment first, so EXPENSE_* variables from .env reach the config layer
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
}

// loadEnvSilently loads .env from the working directory or its parent without
// logging anything; logging is not configured yet.
func loadEnvSilently() {
	_, _ = config.LoadEnv(config.DefaultEnvFile, filepath.Join("..", config.DefaultEnvFile))
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
