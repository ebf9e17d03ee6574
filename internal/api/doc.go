// Package api provides HTTP client functionality for communicating with the
// ConvertKit v3 API. It handles authentication, request/response
// serialization and classification of failed exchanges.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both methods require an API key and an API secret. Every request carries
// exactly one of them as a query parameter: api_secret for tag creation,
// api_key for everything else.
//
// # Error Handling
//
// A completed exchange is classified in three tiers:
//
//   - The transport returned an error: [apierrors.RequestFailure].
//   - The server answered with a status of 299 or above: [apierrors.APIError].
//   - The body could not be decoded: [apierrors.CodecError].
//
// Requests are never retried.
//
// # Thread Safety
//
// The [Client] holds no mutable state after construction. It is safe for
// concurrent use only if the configured [Doer] is.
package api
