package sie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production SIE API base address.
	DefaultBaseURL = "https://www.banxico.org.mx/SieAPIRest/service/v1"
	// DefaultTimeout is the upper bound on how long a fetch may wait.
	DefaultTimeout = 30 * time.Second
	// defaultUserAgent identifies this adapter to the upstream API.
	defaultUserAgent = "sie-mcp/1.0"
)

// Client issues single-attempt GET requests against the SIE API. It is
// stateless across calls and safe for concurrent use; each fetch gets
// an independent timeout and failure outcome.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the per-request timeout bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a Client for the given base URL and access token.
// The token must be non-empty; callers that cannot guarantee a token
// must short-circuit before constructing a client.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("sie: access token must not be empty")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: DefaultTimeout},
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Fetch issues one GET to {base}/{endpointPath} with the token attached
// as a query parameter and decodes the enveloped JSON body. It makes a
// single attempt: no retries, no backoff. Failures are returned as
// *FetchError values classified by kind.
func (c *Client) Fetch(ctx context.Context, endpointPath string) (*Payload, error) {
	if endpointPath == "" {
		return nil, &FetchError{Kind: KindTransport, Err: errors.New("empty endpoint path")}
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(endpointPath, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}

	q := req.URL.Query()
	q.Set("token", c.token)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		fe := classifyTransportError(err)
		c.logger.Error("SIE request failed", "endpoint", endpointPath, "kind", fe.Kind.String(), "error", err)
		return nil, fe
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.logger.Error("SIE request returned non-success status", "endpoint", endpointPath, "status", resp.StatusCode)
		return nil, &FetchError{Kind: KindHTTPStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.logger.Error("SIE response is not valid JSON", "endpoint", endpointPath, "error", err)
		return nil, &FetchError{Kind: KindDecode, Err: err}
	}
	if env.BMX == nil {
		c.logger.Error("SIE response lacks the bmx wrapper", "endpoint", endpointPath)
		return nil, &FetchError{Kind: KindDecode, Err: errors.New("missing bmx wrapper key")}
	}

	c.logger.Debug("SIE request succeeded", "endpoint", endpointPath, "series", len(env.BMX.Series))
	return env.BMX, nil
}

// classifyTransportError separates timeouts from connection-level
// failures for errors raised before an HTTP status was obtained.
func classifyTransportError(err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	return &FetchError{Kind: KindTransport, Err: err}
}
