// Package wealthplay provides a client for the WealthPlay backend API
package wealthplay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jugadveer/wealthplay-cli/internal/common"
	"github.com/jugadveer/wealthplay-cli/internal/csrf"
	"github.com/jugadveer/wealthplay-cli/internal/interfaces"
)

const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second

	csrfHeader = "X-CSRFToken"
)

// Client talks to the WealthPlay backend. Session identity travels in the
// cookie jar; mutating requests additionally carry the CSRF token header.
type Client struct {
	baseURL    *url.URL
	jar        http.CookieJar
	httpClient *http.Client
	tokens     interfaces.TokenSource
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTokenSource substitutes the CSRF token provider. Tests use this to
// avoid touching the shared cookie jar.
func WithTokenSource(ts interfaces.TokenSource) ClientOption {
	return func(c *Client) {
		c.tokens = ts
	}
}

// NewClient creates a new WealthPlay client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: parsed,
		jar:     jar,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: DefaultTimeout,
		},
		logger:  common.NewSilentLogger(),
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tokens == nil {
		c.tokens = csrf.NewCookieSource(jar, parsed,
			csrf.WithHTTPClient(c.httpClient),
			csrf.WithLogger(c.logger),
		)
	}

	return c, nil
}

// Tokens exposes the client's CSRF token source.
func (c *Client) Tokens() interfaces.TokenSource {
	return c.tokens
}

// EnsureToken resolves the CSRF token ahead of a credential post, fetching
// it from the bootstrap endpoint when the jar is empty.
func (c *Client) EnsureToken(ctx context.Context) string {
	tok, _ := c.tokens.Token(ctx)
	return tok
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("WealthPlay API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// IsAuthError reports whether the error is the expected "not authenticated"
// signal rather than a fault.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// do executes a rate-limited request and decodes the JSON response into
// result. Mutating requests get the CSRF header from a synchronous jar scan;
// async token resolution cannot block header construction here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	ref := &url.URL{Path: path}
	if query != nil {
		ref.RawQuery = query.Encode()
	}
	reqURL := c.baseURL.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		// Multipart callers pass the writer's content type so the boundary
		// survives; everything else defaults to JSON.
		req.Header.Set("Content-Type", contentType)
	}

	if method != http.MethodGet && method != http.MethodHead {
		if tok := c.tokens.CachedToken(); tok != "" {
			req.Header.Set(csrfHeader, tok)
		}
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("WealthPlay API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
			Endpoint:   path,
		}
		// 401/403 on a session probe means "anonymous", not a fault
		if apiErr.IsAuthError() {
			c.logger.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("not authenticated")
		} else {
			c.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("API request failed")
		}
		return apiErr
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorMessage pulls the backend's error field out of a failure body,
// falling back to the raw text.
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Error != "":
			return body.Error
		case body.Message != "":
			return body.Message
		case body.Detail != "":
			return body.Detail
		}
	}
	return string(raw)
}

// get performs a GET request
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", result)
}

// postJSON performs a POST with a JSON-encoded payload
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, result interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, http.MethodPost, path, nil, body, "application/json", result)
}

// postForm performs a POST with a multipart form payload. The content type
// comes from the multipart writer so the transport keeps the boundary.
func (c *Client) postForm(ctx context.Context, path string, fields map[string]string, result interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType(), result)
}

// delete performs a DELETE request
func (c *Client) delete(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", result)
}

// Ensure Client implements the full API surface
var (
	_ interfaces.AuthAPI      = (*Client)(nil)
	_ interfaces.CourseAPI    = (*Client)(nil)
	_ interfaces.ProgressAPI  = (*Client)(nil)
	_ interfaces.GoalsAPI     = (*Client)(nil)
	_ interfaces.PortfolioAPI = (*Client)(nil)
	_ interfaces.ScenarioAPI  = (*Client)(nil)
	_ interfaces.MentorAPI    = (*Client)(nil)
)
