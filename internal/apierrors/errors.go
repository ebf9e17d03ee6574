// Package apierrors provides shared error types for the ConvertKit client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingAPISecret is returned when no API secret is provided.
	ErrMissingAPISecret = errors.New("API secret is required")

	// ErrAssertion is matched by every AssertionError.
	ErrAssertion = errors.New("assertion failed")
)

// AssertionError reports a violated precondition on input shape, type or
// emptiness.
type AssertionError struct {
	Message string
}

// Assertf builds an AssertionError from a format string.
func Assertf(format string, args ...any) *AssertionError {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}

// ConvertKitError implements the ConvertKitError interface.
func (e *AssertionError) ConvertKitError() {}

// RequestFailure represents a transport-level failure: the request never
// produced a response.
type RequestFailure struct {
	Request *http.Request
	Err     error
}

// Error reports the cause without the request URL, whose query carries the
// credentials.
func (e *RequestFailure) Error() string {
	cause := e.Err
	var urlErr *url.Error
	if errors.As(cause, &urlErr) {
		cause = urlErr.Err
	}
	return fmt.Sprintf("request to %q failed: %v", requestPath(e.Request), cause)
}

// Unwrap returns the underlying error.
func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// ConvertKitError implements the ConvertKitError interface.
func (e *RequestFailure) ConvertKitError() {}

// APIError represents a response from the ConvertKit API with a status code
// of 299 or above.
type APIError struct {
	Request    *http.Request
	Response   *http.Response
	StatusCode int
	Message    string // if returned by server
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request to %q failed with code %d: %s", requestPath(e.Request), e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request to %q failed with code %d", requestPath(e.Request), e.StatusCode)
}

// Code returns the HTTP status code of the failed exchange.
func (e *APIError) Code() int {
	return e.StatusCode
}

// ConvertKitError implements the ConvertKitError interface.
func (e *APIError) ConvertKitError() {}

// ErrorCode classifies codec failures.
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeDepth
	CodeSyntax
	CodeNotObject
	CodeUnsupported
	CodeType
)

func (c ErrorCode) String() string {
	switch c {
	case CodeDepth:
		return "maximum nesting depth exceeded"
	case CodeSyntax:
		return "syntax error"
	case CodeNotObject:
		return "not an object"
	case CodeUnsupported:
		return "unsupported value"
	case CodeType:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// CodecError represents a JSON encode or decode failure.
type CodecError struct {
	Op   string // "decode" or "encode"
	Code ErrorCode
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("JSON %s failed (%s): %v", e.Op, e.Code, e.Err)
}

// Unwrap returns the underlying error.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// ConvertKitError implements the ConvertKitError interface.
func (e *CodecError) ConvertKitError() {}

func requestPath(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	return req.URL.Path
}
