package juggle

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownType indicates a declared type has no registered coercion
	// routine. This is a schema bug, not a value problem.
	ErrUnknownType = errors.New("unknown coercion type")

	// ErrCoerce indicates a value could not be interpreted under its
	// declared type (e.g. unparsable temporal text).
	ErrCoerce = errors.New("coercion failed")

	// ErrInvalidSchema indicates a declarative schema definition carries an
	// unknown type token.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrMissingHasher indicates a required hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a schema or registry configuration error.
// It wraps a sentinel error with context about the field and declared type.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrUnknownType, ErrInvalidSchema)
	Field string // Field name that triggered the error
	Type  Type   // Declared type that was unknown/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Type != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Type, e.Field)
	}
	if e.Type != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Type)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CoerceError represents a value that could not be coerced to its
// declared type. It wraps ErrCoerce with the field, type and cause.
type CoerceError struct {
	Field string // Field name that failed ("" for direct Coerce calls)
	Type  Type   // Declared type the value was coerced toward
	Value any    // Offending input value
	Cause error  // Original error from the underlying conversion
}

func (e *CoerceError) Error() string {
	field := e.Field
	if field == "" {
		field = "value"
	}
	if e.Cause != nil {
		return fmt.Sprintf("coerce %s to %s: %v", field, e.Type, e.Cause)
	}
	return fmt.Sprintf("coerce %s to %s: cannot convert %T", field, e.Type, e.Value)
}

func (e *CoerceError) Unwrap() error {
	return ErrCoerce
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for schema/registry mismatches.
func newConfigError(sentinel error, typ Type, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Type:  typ,
		Field: field,
	}
}

// newCoerceError creates a CoerceError for failed value conversions.
func newCoerceError(typ Type, field string, value any, cause error) error {
	return &CoerceError{
		Field: field,
		Type:  typ,
		Value: value,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
