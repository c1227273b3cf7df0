// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and mapped to HTTP responses by the
// adapter layer.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates user input failed a presence check.
	ErrValidation = errors.New("validation failed")

	// ErrCorruptStore indicates the backing data file exists but cannot
	// be parsed into the expected shape. Deliberately not recovered:
	// treating a corrupt file as an empty store would silently discard
	// the signal that data may have been lost.
	ErrCorruptStore = errors.New("data store corrupt")

	// ErrStoreIO indicates reading or writing the backing file failed.
	ErrStoreIO = errors.New("data store i/o failure")

	// ErrUnavailable indicates an external dependency could not be
	// reached or returned garbage.
	ErrUnavailable = errors.New("unavailable")

	// ErrRegeneration indicates the static-site build step failed.
	ErrRegeneration = errors.New("regeneration failed")
)

// ValidationError provides field context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with field context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// CorruptStoreError carries the path and parse failure for a corrupt
// data file.
type CorruptStoreError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("data store %q corrupt: %s", e.Path, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *CorruptStoreError) Unwrap() error {
	return ErrCorruptStore
}

// NewCorruptStoreError creates a corrupt store error with context.
func NewCorruptStoreError(path, reason string) error {
	return &CorruptStoreError{Path: path, Reason: reason}
}

// StoreIOError carries the failing operation and path for an I/O error.
type StoreIOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StoreIOError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *StoreIOError) Unwrap() error {
	return ErrStoreIO
}

// NewStoreIOError creates a store I/O error with context.
func NewStoreIOError(op, path string, err error) error {
	return &StoreIOError{Op: op, Path: path, Err: err}
}

// UnavailableError provides context for unavailable dependencies.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}
	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// RegenerationError carries the build step's combined output.
type RegenerationError struct {
	Output string
	Err    error
}

// Error implements the error interface.
func (e *RegenerationError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("regeneration failed: %v: %s", e.Err, e.Output)
	}
	return fmt.Sprintf("regeneration failed: %v", e.Err)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *RegenerationError) Unwrap() error {
	return ErrRegeneration
}

// NewRegenerationError creates a regeneration error with the build output.
func NewRegenerationError(output string, err error) error {
	return &RegenerationError{Output: output, Err: err}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsCorruptStore checks if an error is a corrupt store error.
func IsCorruptStore(err error) bool {
	return errors.Is(err, ErrCorruptStore)
}

// IsStoreIO checks if an error is a store I/O error.
func IsStoreIO(err error) bool {
	return errors.Is(err, ErrStoreIO)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsRegeneration checks if an error is a regeneration error.
func IsRegeneration(err error) bool {
	return errors.Is(err, ErrRegeneration)
}
