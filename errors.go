package convertkit

import (
	"github.com/listinterop/convertkit-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrMissingAPISecret is returned when no API secret is provided.
	ErrMissingAPISecret = apierrors.ErrMissingAPISecret

	// ErrAssertion matches every AssertionError, including one wrapped by a
	// CodecError for a JSON document that is not an object.
	ErrAssertion = apierrors.ErrAssertion
)

// ConvertKitError is implemented by all SDK errors.
type ConvertKitError interface {
	error
	ConvertKitError() // marker method
}

// AssertionError reports input of the wrong shape, type or emptiness.
type AssertionError = apierrors.AssertionError

// RequestFailure reports that the transport could not complete the
// exchange. Request is the request that was attempted.
type RequestFailure = apierrors.RequestFailure

// APIError reports a response with a status code of 299 or above. Both the
// request and the response are retained; the response body can be read
// again.
type APIError = apierrors.APIError

// CodecError reports a JSON encode or decode failure.
type CodecError = apierrors.CodecError

// ErrorCode classifies a CodecError.
type ErrorCode = apierrors.ErrorCode

// Codec error codes.
const (
	CodeUnknown     = apierrors.CodeUnknown
	CodeDepth       = apierrors.CodeDepth
	CodeSyntax      = apierrors.CodeSyntax
	CodeNotObject   = apierrors.CodeNotObject
	CodeUnsupported = apierrors.CodeUnsupported
	CodeType        = apierrors.CodeType
)

var (
	_ ConvertKitError = (*AssertionError)(nil)
	_ ConvertKitError = (*RequestFailure)(nil)
	_ ConvertKitError = (*APIError)(nil)
	_ ConvertKitError = (*CodecError)(nil)
)
