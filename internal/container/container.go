// Package container provides dependency injection for the fintrack application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/csvio"
	"fjacquet/fintrack/internal/ledger"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     store.Store
	ledger    *ledger.Ledger
	generator *report.Generator
}

// NewContainer creates and wires all application dependencies, loading the
// persisted ledger from the configured backend.
//
// Parameters:
//   - ctx: Context for the initial load
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(ctx, cfg, logger)
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	st, err := store.New(cfg.Data.Backend, cfg.DataPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return NewContainerWithStore(ctx, cfg, logger, st)
}

// NewContainerWithStore wires the container around an already opened store.
// The container takes ownership of st and closes it on failure.
func NewContainerWithStore(ctx context.Context, cfg *config.Config, logger logging.Logger, st store.Store) (*Container, error) {
	if cfg == nil || logger == nil || st == nil {
		return nil, fmt.Errorf("configuration, logger and store are required")
	}

	csvio.SetLogger(logger)

	snap, err := st.Load(ctx)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	l := ledger.New()
	if err := l.Restore(snap); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to restore ledger: %w", err)
	}

	logger.Info("Container initialized successfully",
		logging.F(logging.FieldComponent, logging.ComponentContainer),
		logging.F(logging.FieldBackend, cfg.Data.Backend),
		logging.F(logging.FieldFile, cfg.DataPath()),
		logging.F(logging.FieldUsersCount, len(snap.Users)),
		logging.F(logging.FieldCount, snap.TransactionCount()))

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     st,
		ledger:    l,
		generator: report.NewGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the container's store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetLedger returns the ledger restored from the store.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetReportGenerator returns the report renderer.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// Persist saves the ledger's current state to the store.
func (c *Container) Persist(ctx context.Context) error {
	snap := c.ledger.Snapshot()
	if err := c.store.Save(ctx, snap); err != nil {
		c.logger.WithError(err).Error("Failed to persist ledger")
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	c.logger.Debug("Ledger persisted",
		logging.F(logging.FieldBackend, c.config.Data.Backend),
		logging.F(logging.FieldCount, snap.TransactionCount()))
	return nil
}

// Close releases the store.
func (c *Container) Close() error {
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
