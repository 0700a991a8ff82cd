// Package container provides dependency injection for the expense-tracker application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"errors"
	"fmt"

	"najla/expense-tracker/internal/aggregator"
	"najla/expense-tracker/internal/config"
	"najla/expense-tracker/internal/exporter"
	"najla/expense-tracker/internal/ledgererror"
	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/report"
	"najla/expense-tracker/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	backend  store.Backend
	ledger   *store.LedgerStore
	tracker  *aggregator.Tracker
	exporter *exporter.Exporter
	reports  *report.Generator

	// loadWarning is set when the stored ledger was corrupt and has been set aside.
	loadWarning *ledgererror.CorruptDataError
}

// Option overrides a dependency NewContainer would otherwise build from configuration.
type Option func(*options)

type options struct {
	logger  logging.Logger
	backend store.Backend
}

// WithLogger injects the logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackend injects the storage backend. The container takes ownership and
// closes it on Close.
func WithBackend(backend store.Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// NewContainer creates and wires all application dependencies, then loads the
// ledger. A corrupt stored ledger is not an error: the container starts with an
// empty ledger and reports the problem through LoadWarning. Any other load
// failure is returned, since persisting over unreadable data would destroy it.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	backend := o.backend
	if backend == nil {
		var err error
		backend, err = NewBackend(cfg)
		if err != nil {
			return nil, err
		}
	}

	ledger := store.NewLedgerStore(backend, logger, store.WithKey(cfg.Storage.Key))

	c := &Container{
		logger:  logger,
		config:  cfg,
		backend: backend,
		ledger:  ledger,
		exporter: exporter.NewExporter(exporter.Options{
			Delimiter: cfg.Delimiter(),
			QuoteAll:  cfg.CSV.QuoteAll,
		}, logger),
		reports: report.NewGenerator(logger, cfg.Display.CurrencySymbol),
	}

	if _, err := ledger.Load(); err != nil {
		var corrupt *ledgererror.CorruptDataError
		if !errors.As(err, &corrupt) {
			if closeErr := backend.Close(); closeErr != nil {
				logger.WithError(closeErr).Warn("Failed to close storage backend")
			}
			return nil, fmt.Errorf("failed to load ledger: %w", err)
		}
		c.loadWarning = corrupt
	}

	c.tracker = aggregator.NewTracker(ledger, logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Storage.Backend),
		logging.F(logging.FieldCount, ledger.Len()))

	return c, nil
}

// NewBackend creates the storage backend selected by cfg.Storage.Backend.
func NewBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile, "":
		return store.NewFileBackend(cfg.DataDirectory())
	case config.BackendSQLite:
		return store.NewSQLiteBackend(cfg.SQLitePath())
	case config.BackendMemory:
		return store.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLedger returns the loaded ledger store.
func (c *Container) GetLedger() *store.LedgerStore {
	return c.ledger
}

// GetTracker returns the aggregate tracker, kept current with the ledger.
func (c *Container) GetTracker() *aggregator.Tracker {
	return c.tracker
}

// GetExporter returns the CSV exporter configured from csv.* settings.
func (c *Container) GetExporter() *exporter.Exporter {
	return c.exporter
}

// GetReportGenerator returns the report renderer.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// LoadWarning returns the corrupt-data error hit while loading, or nil.
func (c *Container) LoadWarning() *ledgererror.CorruptDataError {
	return c.loadWarning
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if c.backend == nil {
		return nil
	}
	if err := c.backend.Close(); err != nil {
		return fmt.Errorf("failed to close storage backend: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
