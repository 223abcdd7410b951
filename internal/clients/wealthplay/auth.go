package wealthplay

import (
	"context"
	"fmt"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// Profile probes the session. 401/403 comes back as an *APIError with
// IsAuthError()==true and means "anonymous".
func (c *Client) Profile(ctx context.Context) (*models.UserIdentity, error) {
	var user models.UserIdentity
	if err := c.get(ctx, "/api/users/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login posts credentials as a multipart form. The CSRF token is resolved
// first so a cold session can still authenticate.
func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	c.EnsureToken(ctx)

	var resp models.AuthResponse
	err := c.postForm(ctx, "/api/courses/auth/login/", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup posts the registration form.
func (c *Client) Signup(ctx context.Context, username, email, password, password2 string) (*models.AuthResponse, error) {
	c.EnsureToken(ctx)

	var resp models.AuthResponse
	err := c.postForm(ctx, "/api/courses/auth/signup/", map[string]string{
		"username":  username,
		"email":     email,
		"password":  password,
		"password2": password2,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout posts the logout event. Any 2xx is success; the body is ignored.
func (c *Client) Logout(ctx context.Context) error {
	c.EnsureToken(ctx)
	return c.postJSON(ctx, "/api/courses/auth/logout/", struct{}{}, nil)
}

// SaveOnboarding stores the signup questionnaire and returns the assigned
// level and XP.
func (c *Client) SaveOnboarding(ctx context.Context, answers models.OnboardingAnswers) (*models.OnboardingResult, error) {
	var result models.OnboardingResult
	if err := c.postJSON(ctx, "/api/users/onboarding/", answers, &result); err != nil {
		return nil, err
	}
	if result.Status != "success" {
		return nil, fmt.Errorf("onboarding save rejected with status %q", result.Status)
	}
	return &result, nil
}
