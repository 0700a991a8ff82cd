// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"
	"najla/expense-tracker/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. EXPENSE_STORAGE_BACKEND.
const EnvPrefix = "EXPENSE"

// Supported storage backends
const (
	BackendFile   = store.BackendFile
	BackendSQLite = store.BackendSQLite
	BackendMemory = store.BackendMemory
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		QuoteAll  bool   `mapstructure:"quote_all" yaml:"quote_all"`
	} `mapstructure:"csv" yaml:"csv"`

	Storage struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		Key        string `mapstructure:"key" yaml:"key"`
		SQLiteFile string `mapstructure:"sqlite_file" yaml:"sqlite_file"`
	} `mapstructure:"storage" yaml:"storage"`

	Export struct {
		Filename string `mapstructure:"filename" yaml:"filename"`
	} `mapstructure:"export" yaml:"export"`

	Display struct {
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"display" yaml:"display"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFile is an explicit config file. When empty, config.yaml is searched
	// in $HOME/.expense-tracker, .expense-tracker and the working directory.
	ConfigFile string
	// Flags are command-line flags that override file and environment values
	// when set. Recognized names: data-dir, backend, log-level, log-format.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"data-dir":   "storage.directory",
	"backend":    "storage.backend",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return Load(LoadOptions{})
}

// InitializeConfigFromFile loads configuration using an explicit config file.
func InitializeConfigFromFile(path string) (*Config, error) {
	return Load(LoadOptions{ConfigFile: path})
}

// Load builds the configuration from defaults, the config file, environment
// variables and flags, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/" + models.DefaultDataDirectory)
		v.AddConfigPath(models.DefaultDataDirectory)
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Command-line flags
	if opts.Flags != nil {
		for flagName, key := range flagKeys {
			if flag := opts.Flags.Lookup(flagName); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	// 5. Read config file. A missing file is fine unless it was named explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case opts.ConfigFile != "":
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		case errors.As(err, &notFound):
		default:
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration, ignoring files, environment and flags.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults always decode.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.quote_all", true)

	// Storage defaults
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.directory", "")
	v.SetDefault("storage.key", models.DefaultStorageKey)
	v.SetDefault("storage.sqlite_file", models.DefaultSQLiteFile)

	// Export defaults
	v.SetDefault("export.filename", models.DefaultExportFilename)

	// Display defaults
	v.SetDefault("display.currency_symbol", models.DefaultCurrencySymbol)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}
	if strings.ContainsAny(config.CSV.Delimiter, "\"\r\n") {
		return fmt.Errorf("CSV delimiter must not be a quote or line break, got: %q", config.CSV.Delimiter)
	}

	// Validate storage
	switch config.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend: %s (must be '%s', '%s' or '%s')",
			config.Storage.Backend, BackendFile, BackendSQLite, BackendMemory)
	}
	key := strings.TrimSpace(config.Storage.Key)
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid storage key: %q", config.Storage.Key)
	}
	if config.Storage.Backend == BackendSQLite && config.Storage.SQLiteFile == "" {
		return fmt.Errorf("storage.sqlite_file is required for the sqlite backend")
	}

	// Validate export
	if strings.TrimSpace(config.Export.Filename) == "" {
		return fmt.Errorf("export.filename must not be empty")
	}

	return nil
}

// Delimiter returns the CSV delimiter as a rune
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// DataDirectory resolves where ledger data lives. An empty storage.directory
// means $HOME/.expense-tracker, or .expense-tracker when no home directory is known.
func (c *Config) DataDirectory() string {
	if c.Storage.Directory != "" {
		return c.Storage.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return models.DefaultDataDirectory
	}
	return filepath.Join(home, models.DefaultDataDirectory)
}

// SQLitePath returns the database file path. Relative names are resolved
// against the data directory.
func (c *Config) SQLitePath() string {
	if filepath.IsAbs(c.Storage.SQLiteFile) {
		return c.Storage.SQLiteFile
	}
	return filepath.Join(c.DataDirectory(), c.Storage.SQLiteFile)
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
