// Package csrf resolves and caches the anti-forgery token the backend
// expects on every mutating request.
package csrf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jugadveer/wealthplay-cli/internal/common"
	"github.com/jugadveer/wealthplay-cli/internal/interfaces"
)

// CookieName is the cookie the backend issues the token under.
const CookieName = "csrftoken"

// DefaultBootstrapPath is the endpoint that mints a token for cookie-less
// sessions.
const DefaultBootstrapPath = "/api/csrf-token/"

// CookieSource resolves the token from a shared cookie jar, falling back to
// the bootstrap endpoint and writing the result back into the jar. Every
// Token call re-derives the value from the jar rather than memoizing it in
// the source itself; the jar is the cache.
type CookieSource struct {
	jar           http.CookieJar
	baseURL       *url.URL
	httpClient    *http.Client
	bootstrapPath string
	logger        *common.Logger
}

// SourceOption configures a CookieSource.
type SourceOption func(*CookieSource)

// WithHTTPClient sets the HTTP client used for the bootstrap fetch.
func WithHTTPClient(c *http.Client) SourceOption {
	return func(s *CookieSource) {
		s.httpClient = c
	}
}

// WithBootstrapPath overrides the token bootstrap endpoint.
func WithBootstrapPath(path string) SourceOption {
	return func(s *CookieSource) {
		s.bootstrapPath = path
	}
}

// WithLogger sets the logger.
func WithLogger(logger *common.Logger) SourceOption {
	return func(s *CookieSource) {
		s.logger = logger
	}
}

// NewCookieSource creates a token source backed by the given jar. The jar is
// shared with the HTTP client layer so that cookies written here are visible
// to every subsequent request.
func NewCookieSource(jar http.CookieJar, baseURL *url.URL, opts ...SourceOption) *CookieSource {
	s := &CookieSource{
		jar:           jar,
		baseURL:       baseURL,
		httpClient:    &http.Client{Jar: jar},
		bootstrapPath: DefaultBootstrapPath,
		logger:        common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CachedToken scans the jar for the token cookie. It never touches the
// network.
func (s *CookieSource) CachedToken() string {
	for _, c := range s.jar.Cookies(s.baseURL) {
		if c.Name == CookieName {
			return c.Value
		}
	}
	return ""
}

// Token returns the cached token, or fetches one from the bootstrap endpoint
// and stores it in the jar. A failed fetch degrades to "" so the caller can
// proceed and surface the server's rejection instead.
func (s *CookieSource) Token(ctx context.Context) (string, error) {
	if tok := s.CachedToken(); tok != "" {
		return tok, nil
	}

	tok, err := s.fetchToken(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not fetch CSRF token")
		return "", nil
	}

	if tok != "" {
		s.jar.SetCookies(s.baseURL, []*http.Cookie{{
			Name:     CookieName,
			Value:    tok,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		}})
	}

	return tok, nil
}

func (s *CookieSource) fetchToken(ctx context.Context) (string, error) {
	reqURL := s.baseURL.ResolveReference(&url.URL{Path: s.bootstrapPath})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token bootstrap returned status %d", resp.StatusCode)
	}

	var body struct {
		CSRFToken string `json:"csrfToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return body.CSRFToken, nil
}

// StaticSource returns a fixed token. Used in tests to avoid a cookie jar.
type StaticSource string

// Token implements interfaces.TokenSource.
func (s StaticSource) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// CachedToken implements interfaces.TokenSource.
func (s StaticSource) CachedToken() string {
	return string(s)
}

// Ensure both sources implement TokenSource
var (
	_ interfaces.TokenSource = (*CookieSource)(nil)
	_ interfaces.TokenSource = StaticSource("")
)
