package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is returned when registering a username that is taken.
	ErrAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned for an unknown user or a wrong credential.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoActiveSession is returned by session-scoped operations when nobody is logged in.
	ErrNoActiveSession = errors.New("no active session")
)

// AccountError represents a failed registration or login.
type AccountError struct {
	Op       string
	Username string
	Err      error
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Username, e.Err)
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

// SessionError represents an operation attempted without a logged-in user.
type SessionError struct {
	Operation string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, ErrNoActiveSession)
}

func (e *SessionError) Unwrap() error {
	return ErrNoActiveSession
}

// RestoreError represents a snapshot that cannot be loaded into a ledger.
type RestoreError struct {
	Username string
	Reason   string
	Err      error
}

func (e *RestoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("restore %q: %s: %v", e.Username, e.Reason, e.Err)
	}
	return fmt.Sprintf("restore %q: %s", e.Username, e.Reason)
}

func (e *RestoreError) Unwrap() error {
	return e.Err
}
