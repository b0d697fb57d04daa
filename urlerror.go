package pgclient

import (
	"errors"
	"fmt"
)

// ErrMissingHost is returned when a connection URL names neither an
// authority host nor a `host` query parameter.
var ErrMissingHost = errors.New("missing host in URL")

// ErrInvalidUTF8 is the cause wrapped by a FieldError when a
// percent-decoded URL component is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("percent-decoded value is not valid UTF-8")

// errQueryHostNotSocket is the cause wrapped by a FieldError when a
// query-only host is not a socket path.
var errQueryHostNotSocket = errors.New("query host must be a socket path (start with / or @)")

// InvalidURLError reports that the input was not a parseable URL.
type InvalidURLError struct {
	Cause error
}

func (e *InvalidURLError) Error() string { return fmt.Sprintf("invalid URL: %v", e.Cause) }
func (e *InvalidURLError) Unwrap() error { return e.Cause }

// SchemeError reports a URL scheme other than postgres or postgresql.
type SchemeError struct {
	Scheme string
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf("invalid URL scheme: expected %q or %q, got %q", schemePrimary, schemeAlias, e.Scheme)
}

// FragmentError reports a URL fragment, which connection URLs never carry.
type FragmentError struct {
	Fragment string
}

func (e *FragmentError) Error() string { return fmt.Sprintf("invalid URL fragment: %q", e.Fragment) }

// MissingParameterError reports a required parameter given through neither
// of its channels.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q in URL", e.Name)
}

// ConflictingParameterError reports a field specified both as a URL
// component and as a query parameter.
type ConflictingParameterError struct {
	Name string
}

func (e *ConflictingParameterError) Error() string {
	return fmt.Sprintf("parameter %q specified in both URL and query string", e.Name)
}

// UnknownParameterError reports a query key outside the recognized set.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown query parameter: %q", e.Name)
}

// UnsupportedParameterError reports a parameter that is valid in general
// but not for the chosen endpoint kind.
type UnsupportedParameterError struct {
	Name string
}

func (e *UnsupportedParameterError) Error() string {
	return fmt.Sprintf("unsupported parameter for this connection type: %q", e.Name)
}

// FieldError reports that a recognized field failed validation. Cause is
// either ErrInvalidUTF8 or the field validator's own error (for
// identifiers, one of the Err*Identifier* sentinels), so callers can branch
// with errors.Is.
type FieldError struct {
	Field string
	Cause error
}

func (e *FieldError) Error() string { return fmt.Sprintf("invalid %s: %v", e.Field, e.Cause) }
func (e *FieldError) Unwrap() error { return e.Cause }
