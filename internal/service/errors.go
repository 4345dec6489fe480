package service

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by the vault. Callers match them with [errors.Is];
// every returned error wraps exactly one of them.
var (
	// ErrNoActiveSession is returned by every vault operation attempted
	// before a session key has been activated.
	ErrNoActiveSession = errors.New("no active session")

	// ErrNotFound is returned when neither backend holds the requested entry.
	ErrNotFound = errors.New("not found")

	// ErrIOFailure wraps any backend read, write, list or initialization
	// failure.
	ErrIOFailure = errors.New("storage I/O failure")

	// ErrPersistFailure is matched by [*PersistError].
	ErrPersistFailure = errors.New("persist failure")

	// ErrDecodeFailure is returned when a stored record cannot be parsed
	// into its envelope or its ciphertext is malformed.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrInvalidName is returned for document names and note titles that
	// cannot be stored.
	ErrInvalidName = errors.New("invalid name")
)

// Backend labels used in [PersistError].
const (
	BackendKeyValue = "key-value"
	BackendFile     = "file"
)

// PersistError reports a save that failed on at least one backend. Writes
// are not rolled back, so a backend whose error is nil holds the new value.
type PersistError struct {
	Name     string
	KeyValue error
	File     error
}

func (e *PersistError) Error() string {
	parts := make([]string, 0, 2)
	if e.KeyValue != nil {
		parts = append(parts, BackendKeyValue+": "+e.KeyValue.Error())
	}
	if e.File != nil {
		parts = append(parts, BackendFile+": "+e.File.Error())
	}
	return fmt.Sprintf("%s for %q: %s", ErrPersistFailure, e.Name, strings.Join(parts, "; "))
}

// Unwrap exposes ErrPersistFailure together with the backend causes.
func (e *PersistError) Unwrap() []error {
	errs := []error{ErrPersistFailure}
	if e.KeyValue != nil {
		errs = append(errs, e.KeyValue)
	}
	if e.File != nil {
		errs = append(errs, e.File)
	}
	return errs
}

// FailedBackends names the backends whose write failed.
func (e *PersistError) FailedBackends() []string {
	var failed []string
	if e.KeyValue != nil {
		failed = append(failed, BackendKeyValue)
	}
	if e.File != nil {
		failed = append(failed, BackendFile)
	}
	return failed
}
