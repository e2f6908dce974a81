package store

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// ErrClosed is returned when a closed store is used.
var ErrClosed = errors.New("store is closed")

// PersistError represents a failure while loading or saving a snapshot.
type PersistError struct {
	Backend string
	Op      string
	Path    string
	Err     error
}

func (e *PersistError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s store: %s %s: %v", e.Backend, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
