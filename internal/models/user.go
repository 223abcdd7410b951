// Package models defines the data structures exchanged with the WealthPlay backend
package models

// UserIdentity is the profile payload returned by the session probe.
// The backend owns every field; the client never derives identity locally.
type UserIdentity struct {
	ID                  int    `json:"id"`
	Username            string `json:"username"`
	Email               string `json:"email"`
	Level               string `json:"level"`
	LevelDisplay        string `json:"level_display"`
	XP                  int    `json:"xp"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	RiskAppetite        string `json:"risk_appetite"`
	InvestmentGoal      string `json:"investment_goal"`
	Timeline            string `json:"timeline"`
}

// AuthResponse is the backend's business result for login and signup.
// Success=false with an Error string is a rejection, not a transport fault.
type AuthResponse struct {
	Success         bool   `json:"success"`
	Error           string `json:"error"`
	Message         string `json:"message"`
	NeedsOnboarding bool   `json:"needs_onboarding"`
	Redirect        string `json:"redirect"`
}

// OnboardingAnswers carries the signup questionnaire posted once after signup.
type OnboardingAnswers struct {
	Level          string `json:"level"`
	RiskAppetite   string `json:"risk_appetite"`
	Experience     string `json:"investment_experience"`
	InvestmentGoal string `json:"investment_goal"`
	Timeline       string `json:"timeline"`
}

// OnboardingResult is the backend's acknowledgement of a saved questionnaire.
type OnboardingResult struct {
	Status       string `json:"status"`
	Level        string `json:"level"`
	LevelDisplay string `json:"level_display"`
	XP           int    `json:"xp"`
}
