package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when a report path does not exist.
	ErrFileNotFound = errors.New("coverage file not found")
	// ErrUnknownFormat is returned when no adapter matches the content or
	// the requested format name.
	ErrUnknownFormat = errors.New("unknown coverage format")
	// ErrInvalidFormat is returned when content routed to an adapter fails
	// that adapter's signature check.
	ErrInvalidFormat = errors.New("invalid coverage report")
)

// ParseError wraps a decoding failure of a report's JSON, XML or source map.
type ParseError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s report %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s report: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError for format.
func NewParseError(format Format, err error) error {
	return &ParseError{Format: format, Err: err}
}

// InvalidFormatError reports content that does not carry the signature of
// the adapter it was routed to.
func InvalidFormatError(p IParser) error {
	return fmt.Errorf("%w: content is not a %s report", ErrInvalidFormat, p.Name())
}
