// Package guard decides whether a protected view may render for the current
// session. It is a pure function of the session snapshot and target path.
package guard

import "github.com/jugadveer/wealthplay-cli/internal/session"

// Well-known navigation targets.
const (
	PublicRoot     = "/"
	AuthedHome     = "/dashboard"
	OnboardingPath = "/onboarding"
)

// Action is the guard's verdict.
type Action int

const (
	// Pending means the session is still unresolved; show a neutral
	// indicator and make no redirect decision yet.
	Pending Action = iota
	// Redirect means navigate to Decision.Target instead of rendering.
	Redirect
	// Render means show the requested view.
	Render
)

// Decision is the guard's output for one navigation.
type Decision struct {
	Action Action
	Target string
}

// Decide gates access to a protected path.
//
// An unresolved session yields Pending rather than a redirect, so the user
// never sees a flash-redirect before the auth probe lands. A user who has
// not completed onboarding is never forced into it from other protected
// paths; onboarding is only offered right after signup.
func Decide(snap session.Snapshot, targetPath string) Decision {
	if snap.Loading {
		return Decision{Action: Pending}
	}

	if snap.User == nil {
		return Decision{Action: Redirect, Target: PublicRoot}
	}

	if targetPath == OnboardingPath && snap.User.OnboardingCompleted {
		return Decision{Action: Redirect, Target: AuthedHome}
	}

	return Decision{Action: Render}
}
