package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jugadveer/wealthplay-cli/internal/clients/wealthplay"
	"github.com/jugadveer/wealthplay-cli/internal/interfaces"
	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// fakeAuthAPI counts calls and serves canned responses.
type fakeAuthAPI struct {
	profile     *models.UserIdentity
	profileErr  error
	loginResp   *models.AuthResponse
	loginErr    error
	signupResp  *models.AuthResponse
	signupErr   error
	logoutErr   error
	loginCalls  int
	signupCalls int
	logoutCalls int
	probeCalls  int
}

func (f *fakeAuthAPI) Profile(ctx context.Context) (*models.UserIdentity, error) {
	f.probeCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Signup(ctx context.Context, username, email, password, password2 string) (*models.AuthResponse, error) {
	f.signupCalls++
	return f.signupResp, f.signupErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthAPI) SaveOnboarding(ctx context.Context, answers models.OnboardingAnswers) (*models.OnboardingResult, error) {
	return &models.OnboardingResult{Status: "success"}, nil
}

var _ interfaces.AuthAPI = (*fakeAuthAPI)(nil)

func TestInitialStateIsUnresolved(t *testing.T) {
	c := NewController(&fakeAuthAPI{})
	snap := c.Snapshot()
	assert.Equal(t, Unresolved, snap.State())
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.User)
}

func TestCheckAuthResolvesAuthenticated(t *testing.T) {
	api := &fakeAuthAPI{profile: &models.UserIdentity{Username: "bob"}}
	c := NewController(api)

	snap := c.CheckAuth(context.Background())
	assert.Equal(t, Authenticated, snap.State())
	assert.Equal(t, "bob", snap.User.Username)
	assert.False(t, snap.Loading)
}

func TestCheckAuthTreats401AsAnonymous(t *testing.T) {
	api := &fakeAuthAPI{profileErr: &wealthplay.APIError{StatusCode: 401, Endpoint: "/api/users/profile/"}}
	c := NewController(api)

	snap := c.CheckAuth(context.Background())
	assert.Equal(t, Anonymous, snap.State())
	assert.False(t, snap.Loading)
}

func TestLoginValidationSkipsNetwork(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		wantErr  string
	}{
		{"empty username", "", "secret", "Username is required"},
		{"blank username", "   ", "secret", "Username is required"},
		{"empty password", "bob", "", "Password is required"},
		{"both empty", "", "", "Username is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAuthAPI{}
			c := NewController(api)

			result := c.Login(context.Background(), tc.username, tc.password)
			assert.False(t, result.Success)
			assert.Equal(t, tc.wantErr, result.Error)
			assert.Zero(t, api.loginCalls, "validation failures must not reach the network")
		})
	}
}

func TestLoginSuccessRefreshesSession(t *testing.T) {
	api := &fakeAuthAPI{
		loginResp: &models.AuthResponse{Success: true},
		profile:   &models.UserIdentity{Username: "bob"},
	}
	c := NewController(api)

	result := c.Login(context.Background(), "bob", "hunter22")
	require.True(t, result.Success)
	assert.False(t, result.NeedsOnboarding, "login never routes through onboarding")
	assert.Equal(t, 1, api.probeCalls, "success triggers a checkAuth refresh")
	assert.Equal(t, Authenticated, c.Snapshot().State())
}

func TestLoginRejectionKeepsSessionUntouched(t *testing.T) {
	api := &fakeAuthAPI{
		loginResp: &models.AuthResponse{Success: false, Error: "Invalid credentials"},
	}
	c := NewController(api)

	result := c.Login(context.Background(), "bob", "wrong")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Error)
	assert.Zero(t, api.probeCalls)
	assert.Equal(t, Unresolved, c.Snapshot().State(), "a failed login must not mutate session state")
}

func TestLoginFailureMessageChain(t *testing.T) {
	cases := []struct {
		name string
		api  *fakeAuthAPI
		want string
	}{
		{
			"server error field",
			&fakeAuthAPI{loginErr: &wealthplay.APIError{StatusCode: 401, Message: "Invalid credentials"}},
			"Invalid credentials",
		},
		{
			"empty server message falls back to generic",
			&fakeAuthAPI{loginErr: &wealthplay.APIError{StatusCode: 500}},
			"Login failed. Please check your credentials.",
		},
		{
			"transport error message",
			&fakeAuthAPI{loginErr: errors.New("dial tcp: connection refused")},
			"dial tcp: connection refused",
		},
		{
			"rejection with no message",
			&fakeAuthAPI{loginResp: &models.AuthResponse{Success: false}},
			"Login failed. Please check your credentials.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(tc.api)
			result := c.Login(context.Background(), "bob", "pw")
			assert.False(t, result.Success)
			assert.Equal(t, tc.want, result.Error)
		})
	}
}

func TestSignupValidationOrder(t *testing.T) {
	cases := []struct {
		name                                 string
		username, email, password, password2 string
		wantErr                              string
	}{
		{"username first", "", "", "", "", "Username is required"},
		{"short username", "ab", "a@b.c", "secret1", "secret1", "Username must be at least 3 characters"},
		{"email next", "bob", "", "secret1", "secret1", "Email is required"},
		{"password next", "bob", "a@b.c", "", "", "Password is required"},
		{"short password", "bob", "a@b.c", "12345", "12345", "Password must be at least 6 characters"},
		{"mismatch last", "bob", "a@b.c", "123456", "654321", "Passwords do not match."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAuthAPI{}
			c := NewController(api)

			result := c.Signup(context.Background(), tc.username, tc.email, tc.password, tc.password2)
			assert.False(t, result.Success)
			assert.Equal(t, tc.wantErr, result.Error)
			assert.Zero(t, api.signupCalls)
		})
	}
}

func TestSignupReportsNeedsOnboardingFromServer(t *testing.T) {
	api := &fakeAuthAPI{
		signupResp: &models.AuthResponse{Success: true, NeedsOnboarding: true},
		profile:    &models.UserIdentity{Username: "newbie"},
	}
	c := NewController(api)

	result := c.Signup(context.Background(), "newbie", "n@e.w", "secret1", "secret1")
	require.True(t, result.Success)
	assert.True(t, result.NeedsOnboarding)
	assert.Equal(t, 1, api.probeCalls)
}

func TestLogoutClearsUserEvenOnNetworkFailure(t *testing.T) {
	var resetTarget string
	api := &fakeAuthAPI{
		profile:   &models.UserIdentity{Username: "bob"},
		logoutErr: errors.New("network down"),
	}
	c := NewController(api, WithResetFunc(func(target string) { resetTarget = target }))
	c.CheckAuth(context.Background())
	require.Equal(t, Authenticated, c.Snapshot().State())

	result := c.Logout(context.Background())
	assert.True(t, result.Success, "logout network failure is swallowed")
	assert.Equal(t, Anonymous, c.Snapshot().State())
	assert.Equal(t, 1, api.logoutCalls)
	assert.Regexp(t, `^/\?\d+$`, resetTarget, "reset target is a cache-busted root URL")
}

func TestSubscribersSeeStateChanges(t *testing.T) {
	api := &fakeAuthAPI{profile: &models.UserIdentity{Username: "bob"}}
	c := NewController(api)

	var states []State
	c.Subscribe(func(snap Snapshot) {
		states = append(states, snap.State())
	})

	c.CheckAuth(context.Background())
	c.Logout(context.Background())

	require.Equal(t, []State{Authenticated, Anonymous}, states)
}
