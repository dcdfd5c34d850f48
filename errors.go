package artikel

import "fmt"

// ErrorCode classifies the hard-failure disposition of an *Error.
// Local recoveries and soft field failures never surface as an *Error;
// only the hard failures listed below do.
type ErrorCode string

// Error codes returned by Extract and ExtractBytes.
const (
	// EInvalid marks programmer-error input. No function in this
	// package currently returns it; Options.URL is not validated.
	EInvalid ErrorCode = "invalid"

	// EEncoding marks a byte buffer for which no character encoding
	// could be hypothesized by the decoder.
	EEncoding ErrorCode = "encoding"

	// EParse marks catastrophic parser failure. In practice this never
	// occurs: the HTML parser is tolerant of arbitrarily malformed
	// markup by design.
	EParse ErrorCode = "parse"

	// EExtraction marks an internal invariant violation during
	// extraction. It should never occur; any code path that could
	// produce it on attacker-controlled HTML is a defect.
	EExtraction ErrorCode = "extraction"
)

// Error is the typed error returned by this package's public functions.
// Absence of content is never an Error — an empty ExtractResult with a
// nil error is a valid, expected outcome.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("artikel: %s: %s", e.Code, e.Message)
}

// Errorf constructs an *Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Code returns the ErrorCode carried by err, or "" if err is nil or not
// an *Error produced by this package.
func Code(err error) ErrorCode {
	var e *Error
	if err == nil {
		return ""
	}
	if ae, ok := err.(*Error); ok {
		e = ae
	}
	if e == nil {
		return ""
	}
	return e.Code
}
