package views

import (
	"context"
	"fmt"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// renderLanding shows the public landing screen with login and signup.
// Returns true when the user quits.
func (a *App) renderLanding(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n== WealthPlay ==")
	fmt.Fprintln(a.out, "  1) Log in")
	fmt.Fprintln(a.out, "  2) Sign up")
	fmt.Fprintln(a.out, "  q) Quit")

	switch a.promptLine("Choose") {
	case "1":
		a.renderLogin(ctx)
	case "2":
		a.renderSignup(ctx)
	case "q":
		return true
	}
	return false
}

func (a *App) renderLogin(ctx context.Context) {
	username := a.promptLine("Username")
	password := a.promptPassword("Password")

	result := a.session.Login(ctx, username, password)
	if !result.Success {
		a.alert(result.Error)
		return
	}
	fmt.Fprintln(a.out, "Welcome back!")
}

func (a *App) renderSignup(ctx context.Context) {
	username := a.promptLine("Username")
	email := a.promptLine("Email")
	password := a.promptPassword("Password")
	password2 := a.promptPassword("Confirm password")

	result := a.session.Signup(ctx, username, email, password, password2)
	if !result.Success {
		a.alert(result.Error)
		return
	}

	fmt.Fprintln(a.out, "Account created.")
	if result.NeedsOnboarding {
		a.open(ctx, "/onboarding", a.renderOnboarding)
	}
}

// renderOnboarding collects the questionnaire shown once after signup.
func (a *App) renderOnboarding(ctx context.Context) {
	fmt.Fprintln(a.out, "\n-- Tell us about yourself --")

	answers := models.OnboardingAnswers{
		Level:          a.promptLine("Experience level (beginner/intermediate/advanced)"),
		RiskAppetite:   a.promptLine("Risk appetite (safe/balanced/aggressive)"),
		Experience:     a.promptLine("Investment experience (beginner/basics/experienced/very_experienced)"),
		InvestmentGoal: a.promptLine("Main goal (long_term_wealth/specific_goals/learning/extra_income)"),
		Timeline:       a.promptLine("Timeline (less_than_1/1_to_5/more_than_5)"),
	}

	result, err := a.client.SaveOnboarding(ctx, answers)
	if err != nil {
		a.alert(fmt.Sprintf("Could not save onboarding: %v", err))
		return
	}

	fmt.Fprintf(a.out, "You're set up as %s with %d XP.\n", result.LevelDisplay, result.XP)

	// Refresh derived profile fields (onboarding_completed in particular)
	a.session.CheckAuth(ctx)
}

func (a *App) renderLogout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
}
