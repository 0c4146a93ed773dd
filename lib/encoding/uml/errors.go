package uml

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLineFormat       = errors.New("invalid line format")
	ErrUnknownDataType         = errors.New("unknown data type")
	ErrMissingReference        = errors.New("missing reference")
	ErrUnsupportedArrayElement = errors.New("unsupported array element")
	ErrMalformedTableHeader    = errors.New("malformed table header")
	ErrUnterminatedTable       = errors.New("unterminated table")
)

// ParseError is returned for every malformed input. Kind is one of the Err*
// sentinels above, so callers can use errors.Is(err, ErrUnknownDataType).
type ParseError struct {
	Kind   error
	Line   string // raw text of the offending line
	LineNo int    // 1-based, 0 when parsing a line outside of a Reader
	Detail string
}

func newParseError(kind error, line string, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:   kind,
		Line:   line,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.LineNo > 0 {
		return fmt.Sprintf("%s (line %d: %q)", msg, e.LineNo, e.Line)
	}
	return fmt.Sprintf("%s (line %q)", msg, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// atLine stamps the line number on a ParseError coming out of ParseField
func atLine(err error, lineNo int) error {
	var perr *ParseError
	if errors.As(err, &perr) && perr.LineNo == 0 {
		perr.LineNo = lineNo
	}
	return err
}
