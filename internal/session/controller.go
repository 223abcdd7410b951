// Package session owns the current-user state and the login, signup and
// logout flows. It is the single writer of session state; everything else
// reads immutable snapshots.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jugadveer/wealthplay-cli/internal/clients/wealthplay"
	"github.com/jugadveer/wealthplay-cli/internal/common"
	"github.com/jugadveer/wealthplay-cli/internal/interfaces"
	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// State is the controller's resolution state.
type State int

const (
	// Unresolved means the initial session probe has not completed yet.
	Unresolved State = iota
	// Anonymous means the probe resolved to "no session".
	Anonymous
	// Authenticated means a user is signed in.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable read of the session at a point in time.
type Snapshot struct {
	User    *models.UserIdentity
	Loading bool
}

// State derives the resolution state from the snapshot fields.
func (s Snapshot) State() State {
	switch {
	case s.Loading:
		return Unresolved
	case s.User == nil:
		return Anonymous
	default:
		return Authenticated
	}
}

// Result is the uniform outcome of login, signup and logout. No error type
// escapes the controller; callers branch on Success and show Error.
type Result struct {
	Success         bool
	Error           string
	NeedsOnboarding bool
}

// ResetFunc is invoked after logout with a cache-busted root target. The
// front end uses it to discard every view and return to the landing screen,
// which also prevents a redirect loop back into a protected view.
type ResetFunc func(target string)

// Generic fallback messages, used only when nothing more specific exists.
const (
	loginFallback  = "Login failed. Please check your credentials."
	signupFallback = "Signup failed. Please try again."
)

// Controller is the session state machine.
type Controller struct {
	mu      sync.Mutex
	api     interfaces.AuthAPI
	logger  *common.Logger
	user    *models.UserIdentity
	loading bool
	onReset ResetFunc
	subs    []func(Snapshot)
}

// ControllerOption configures the controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *common.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithResetFunc sets the post-logout reset hook.
func WithResetFunc(fn ResetFunc) ControllerOption {
	return func(c *Controller) {
		c.onReset = fn
	}
}

// NewController creates a controller in the unresolved state. Callers run
// CheckAuth once at startup to resolve it.
func NewController(api interfaces.AuthAPI, opts ...ControllerOption) *Controller {
	c := &Controller{
		api:     api,
		logger:  common.NewSilentLogger(),
		loading: true,
		onReset: func(string) {},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{User: c.user, Loading: c.loading}
}

// Subscribe registers a listener invoked after every state change.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Controller) setState(user *models.UserIdentity, loading bool) {
	c.mu.Lock()
	c.user = user
	c.loading = loading
	snap := Snapshot{User: c.user, Loading: c.loading}
	subs := make([]func(Snapshot), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// CheckAuth probes the backend for the current user. Success transitions to
// authenticated; any failure, including the expected 401/403, transitions to
// anonymous. Loading clears either way.
func (c *Controller) CheckAuth(ctx context.Context) Snapshot {
	user, err := c.api.Profile(ctx)
	if err != nil {
		var apiErr *wealthplay.APIError
		if !errors.As(err, &apiErr) || !apiErr.IsAuthError() {
			c.logger.Error().Err(err).Msg("auth check failed")
		}
		c.setState(nil, false)
		return c.Snapshot()
	}

	c.setState(user, false)
	return c.Snapshot()
}

// Login authenticates with the backend. Empty fields fail fast locally with
// no network call. A server success triggers a CheckAuth refresh; login
// never routes through onboarding.
func (c *Controller) Login(ctx context.Context, username, password string) Result {
	if err := validateLogin(username, password); err != nil {
		return Result{Success: false, Error: err.Error()}
	}

	resp, err := c.api.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return Result{Success: false, Error: c.failureMessage(err, loginFallback)}
	}

	if !resp.Success {
		msg := firstNonEmpty(resp.Error, resp.Message, loginFallback)
		return Result{Success: false, Error: msg}
	}

	c.CheckAuth(ctx)
	return Result{Success: true, NeedsOnboarding: false}
}

// Signup registers a new account. Validation rules run in a fixed order and
// the first failure short-circuits with its message. needsOnboarding comes
// back exactly as the server reported it.
func (c *Controller) Signup(ctx context.Context, username, email, password, password2 string) Result {
	if err := validateSignup(username, email, password, password2); err != nil {
		return Result{Success: false, Error: err.Error()}
	}

	resp, err := c.api.Signup(ctx, strings.TrimSpace(username), strings.TrimSpace(email), password, password2)
	if err != nil {
		return Result{Success: false, Error: c.failureMessage(err, signupFallback)}
	}

	if !resp.Success {
		msg := firstNonEmpty(resp.Error, resp.Message, signupFallback)
		return Result{Success: false, Error: msg}
	}

	c.CheckAuth(ctx)
	return Result{Success: true, NeedsOnboarding: resp.NeedsOnboarding}
}

// Logout posts the logout event best-effort, unconditionally clears the
// user, then resets the front end to a cache-busted root target so no stale
// view state survives.
func (c *Controller) Logout(ctx context.Context) Result {
	if err := c.api.Logout(ctx); err != nil {
		// Network failure is swallowed; the local session still ends.
		c.logger.Debug().Err(err).Msg("logout request failed")
	}

	c.setState(nil, false)
	c.onReset(fmt.Sprintf("/?%d", time.Now().UnixMilli()))
	return Result{Success: true}
}

// failureMessage applies the fallback chain: server error field (already
// folded into APIError.Message) → transport error text → generic fallback.
func (c *Controller) failureMessage(err error, fallback string) string {
	var apiErr *wealthplay.APIError
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.Message); msg != "" {
			return (&AuthRejected{Message: msg}).Error()
		}
		return fallback
	}

	te := &TransportError{Op: "auth request", Err: err}
	c.logger.Error().Err(te).Msg("auth request failed")
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

func validateLogin(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	return nil
}

// validateSignup checks fields in a fixed order; the first failing rule
// wins and nothing is sent to the backend.
func validateSignup(username, email, password, password2 string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	if len(trimmed) < 3 {
		return &ValidationError{Field: "username", Message: "Username must be at least 3 characters"}
	}
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	if password != password2 {
		return &ValidationError{Field: "password2", Message: "Passwords do not match."}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
