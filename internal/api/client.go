package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/listinterop/convertkit-go/internal/apierrors"
	"github.com/listinterop/convertkit-go/internal/codec"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.convertkit.com/v3"
	// DefaultTimeout applies to the default HTTP client only.
	DefaultTimeout = 30 * time.Second
)

// Doer sends an HTTP request and returns its response.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestBuilder constructs an outgoing request.
type RequestBuilder func(ctx context.Context, method, url string, body io.Reader) (*http.Request, error)

// Auth selects the credential attached to a request.
type Auth int

const (
	// AuthKey sends the API key as the api_key query parameter.
	AuthKey Auth = iota
	// AuthSecret sends the API secret as the api_secret query parameter.
	AuthSecret
)

// Config holds the configuration for NewClient.
type Config struct {
	BaseURL        string
	APIKey         string
	APISecret      string
	HTTPClient     Doer
	RequestBuilder RequestBuilder
	Timeout        time.Duration
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient Doer
	newRequest RequestBuilder
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets the transport.
func WithHTTPClient(client Doer) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithRequestBuilder replaces http.NewRequestWithContext.
func WithRequestBuilder(fn RequestBuilder) Option {
	return func(c *Config) {
		c.RequestBuilder = fn
	}
}

// New creates a new API client.
func New(apiKey, apiSecret string, opts ...Option) (*Client, error) {
	cfg := Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// NewClient creates a new API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if cfg.APISecret == "" {
		return nil, apierrors.ErrMissingAPISecret
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	newRequest := cfg.RequestBuilder
	if newRequest == nil {
		newRequest = http.NewRequestWithContext
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: httpClient,
		newRequest: newRequest,
	}, nil
}

// BaseURL returns the base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a request and returns the raw body of a successful response.
// A non-nil body is JSON encoded.
func (c *Client) Do(ctx context.Context, method, path string, auth Auth, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		data, err := codec.Encode(body)
		if err != nil {
			return nil, err
		}
		payload = data
	}

	var bodyReader io.Reader
	if len(payload) > 0 {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, c.endpoint(path, auth), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apierrors.RequestFailure{Request: req, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierrors.RequestFailure{Request: req, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode >= 299 {
		return nil, parseErrorResponse(req, resp, data)
	}

	return data, nil
}

func (c *Client) endpoint(path string, auth Auth) string {
	query := url.Values{}
	switch auth {
	case AuthSecret:
		query.Set("api_secret", c.apiSecret)
	default:
		query.Set("api_key", c.apiKey)
	}
	return c.baseURL + path + "?" + query.Encode()
}
