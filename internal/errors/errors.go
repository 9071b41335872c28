// Package errors defines the typed errors shared by the config reader, the
// theme provider and the bridge cache.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// EntryError represents a single config key that could not be read or decoded.
type EntryError struct {
	Component string
	Key       string
	Err       error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s/%s: %v", e.Component, e.Key, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// ContractError is raised (as a panic value) when a cache slot is read
// before anything was loaded into it.
type ContractError struct {
	Slot string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s not loaded", e.Slot)
}

// IsNotFound reports whether every entry error in err is a missing key.
// A nil error is not a not-found error.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !IsNotFound(e) {
				return false
			}
		}

		return true
	}

	return errors.Is(err, fs.ErrNotExist)
}

// EntryErrors flattens err into the entry errors it carries.
func EntryErrors(err error) []*EntryError {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*EntryError
		for _, e := range joined.Unwrap() {
			out = append(out, EntryErrors(e)...)
		}

		return out
	}

	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		return []*EntryError{entryErr}
	}

	return nil
}
