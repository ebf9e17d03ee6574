package convertkit

import (
	"time"

	"github.com/listinterop/convertkit-go/internal/api"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = api.DefaultBaseURL
	// DefaultTimeout applies to the default HTTP client only.
	DefaultTimeout = api.DefaultTimeout
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer = api.Doer

// RequestBuilder constructs an outgoing request. The default is
// http.NewRequestWithContext.
type RequestBuilder = api.RequestBuilder

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	httpClient     Doer
	requestBuilder RequestBuilder
	timeout        time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Trailing slashes are removed.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets the transport used to send requests.
func WithHTTPClient(client Doer) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithRequestBuilder sets the function used to construct requests.
func WithRequestBuilder(fn RequestBuilder) Option {
	return func(c *clientConfig) {
		c.requestBuilder = fn
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It has no effect when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}
