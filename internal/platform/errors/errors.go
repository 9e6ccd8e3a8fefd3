// Package errors provides error types and utilities for enumchain.
// It extends the standard errors package with additional context and wrapping capabilities.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrToolMissing indicates a required external tool is not on PATH
	ErrToolMissing = errors.New("required tool missing")

	// ErrListNotFound indicates the target list file does not exist
	ErrListNotFound = errors.New("target list file not found")

	// ErrNoTargets indicates the resolved target set is empty
	ErrNoTargets = errors.New("no valid targets")

	// ErrLaunchFailed indicates a subprocess could not even be started
	ErrLaunchFailed = errors.New("failed to launch subprocess")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// IsToolMissing reports whether the error is a missing-tool error
func IsToolMissing(err error) bool {
	return Is(err, ErrToolMissing)
}

// IsLaunchFailed reports whether the error is a subprocess launch failure
func IsLaunchFailed(err error) bool {
	return Is(err, ErrLaunchFailed)
}
