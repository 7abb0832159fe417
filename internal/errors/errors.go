// Package errors defines the typed errors that cross the analysis
// pipeline boundary. Only two conditions ever reach a caller: an
// unsupported submission (caller-correctable) and an internal analysis
// failure (opaque, never partially applied).
package errors

import (
	"fmt"
	"time"

	"github.com/quantalab/qce/internal/types"
)

// ErrorType classifies pipeline errors.
type ErrorType string

const (
	ErrorTypeUnsupported ErrorType = "unsupported_input"
	ErrorTypeAnalysis    ErrorType = "analysis"
	ErrorTypeConfig      ErrorType = "config"
)

// UnsupportedInputError reports a submission whose notation could not be
// identified. It is not retryable with the same input.
type UnsupportedInputError struct {
	Type      ErrorType
	Language  types.Language
	Details   string
	Timestamp time.Time
}

// NewUnsupportedInputError creates an unsupported-input error from a
// failed detection.
func NewUnsupportedInputError(lang types.Language, details string) *UnsupportedInputError {
	return &UnsupportedInputError{
		Type:      ErrorTypeUnsupported,
		Language:  lang,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface.
func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported language %q: %s", e.Language, e.Details)
}

// AnalysisError wraps an unexpected internal failure in the analyzer
// chain. The underlying cause is preserved for errors.Is/As.
type AnalysisError struct {
	Type       ErrorType
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewAnalysisError creates an analysis error with context.
func NewAnalysisError(op string, err error) *AnalysisError {
	return &AnalysisError{
		Type:       ErrorTypeAnalysis,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed during %s: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error.
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}
