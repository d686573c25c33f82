// Package errors provides the typed error taxonomy shared by all layers.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a cost input outside its stated bounds
	TypeInput Type = "INPUT_ERROR"

	// TypeCatalog indicates an undefined tier/class combination
	TypeCatalog Type = "CATALOG_ERROR"

	// TypePricing indicates the resolver produced no usable price
	TypePricing Type = "PRICING_ERROR"

	// TypeParsing indicates a parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeNotSupported indicates an unknown provider or operation
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
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

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
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
func Newf(errType Type, format string, args ...interface{}) *Error {
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

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType reports whether err or any error it wraps has the given type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf returns the type of err, or TypeInternal for untyped errors
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Inputf creates a formatted input error
func Inputf(format string, args ...interface{}) *Error {
	return Newf(TypeInput, format, args...)
}

// Catalog creates a catalog lookup error for an undefined rate combination
func Catalog(tier, class string) *Error {
	return Newf(TypeCatalog, "no usage rate for tier %q, class %q", tier, class).
		WithContext("tier", tier).
		WithContext("class", class)
}

// PriceUnavailable creates a pricing error from an unavailable resolution
func PriceUnavailable(provider, instanceType, reason, detail string) *Error {
	e := Newf(TypePricing, "price unavailable for %s instance %q: %s", provider, instanceType, reason).
		WithContext("provider", provider).
		WithContext("instance_type", instanceType).
		WithContext("reason", reason)
	if detail != "" {
		e = e.WithContext("detail", detail)
	}
	return e
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// NotSupported creates a not supported error
func NotSupported(kind, value string) *Error {
	return Newf(TypeNotSupported, "%s not supported: %s", kind, value)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
