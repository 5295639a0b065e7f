// Package errors provides the typed errors surfaced by the pricing core.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a malformed request
	TypeInput Type = "INPUT_ERROR"

	// TypeInvalidQuantity indicates an addition with a negative quantity
	TypeInvalidQuantity Type = "INVALID_QUANTITY"

	// TypeUnknownIngredient indicates a value outside the ingredient enumeration
	TypeUnknownIngredient Type = "UNKNOWN_INGREDIENT"

	// TypeUnknownSandwich indicates a value outside the sandwich enumeration
	TypeUnknownSandwich Type = "UNKNOWN_SANDWICH"

	// TypeParsing indicates a menu file could not be parsed
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a domain error with context
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same type, so that
// errors.Is(err, errors.New(TypeInvalidQuantity, "")) matches any message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...any) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if err, or anything it wraps, is an *Error of type t
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf returns the type of the first *Error in err's chain, or TypeInternal
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// InvalidQuantity creates an invalid quantity error
func InvalidQuantity(ingredient string, quantity int64) *Error {
	return Newf(TypeInvalidQuantity, "quantity for %s must not be negative, got %d", ingredient, quantity).
		WithContext("ingredient", ingredient).
		WithContext("quantity", quantity)
}

// QuantityTooLarge creates an invalid quantity error for a summed quantity above limit
func QuantityTooLarge(ingredient string, limit int64) *Error {
	return Newf(TypeInvalidQuantity, "total quantity for %s exceeds %d", ingredient, limit).
		WithContext("ingredient", ingredient).
		WithContext("limit", limit)
}

// UnknownIngredient creates an unknown ingredient error
func UnknownIngredient(name string) *Error {
	return Newf(TypeUnknownIngredient, "unknown ingredient: %s", name)
}

// UnknownSandwich creates an unknown sandwich error
func UnknownSandwich(name string) *Error {
	return Newf(TypeUnknownSandwich, "unknown sandwich: %s", name)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}
