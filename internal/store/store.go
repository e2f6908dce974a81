// Package store provides functionality for storing and retrieving ledger snapshots.
package store

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/logging"
)

// Backend names accepted by New.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store persists and reloads a whole ledger snapshot.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}

// New creates the store for the given backend. path is ignored by the
// memory backend.
func New(backend, path string, logger logging.Logger) (Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.WithField(logging.FieldComponent, logging.ComponentStore)

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendYAML:
		return NewYAMLStore(path, logger), nil
	case BackendSQLite:
		return NewSQLiteStore(path, logger)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
