package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrInvalidArgument is matched by every InvalidArgumentError through errors.Is.
var ErrInvalidArgument = stdErrors.New("invalid argument")

// InvalidArgumentError reports a malformed input supplied to an operation, such
// as an inverted range or an empty sequence.
type InvalidArgumentError struct {
	Op      string
	Message string
}

// NewInvalidArgumentError constructs an InvalidArgumentError for op.
func NewInvalidArgumentError(op, format string, args ...any) error {
	return &InvalidArgumentError{Op: op, Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("invalid argument: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// SelectorError wraps a CSS selector that failed to compile.
type SelectorError struct {
	Selector string
	Err      error
}

// NewSelectorError constructs a SelectorError.
func NewSelectorError(selector string, err error) error {
	return &SelectorError{Selector: selector, Err: err}
}

func (e *SelectorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("selector error: %q: %v", e.Selector, e.Err)
}

// Unwrap exposes the compiler error.
func (e *SelectorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
