package views

import (
	"context"
	"fmt"
)

// renderHome is the authenticated main menu. Returns true when the user
// quits.
func (a *App) renderHome(ctx context.Context) bool {
	snap := a.session.Snapshot()
	if snap.User != nil {
		fmt.Fprintf(a.out, "\n== Dashboard — %s (level %s, %d XP) ==\n",
			snap.User.Username, snap.User.Level, snap.User.XP)
	}

	fmt.Fprintln(a.out, "  1) Courses")
	fmt.Fprintln(a.out, "  2) Goals")
	fmt.Fprintln(a.out, "  3) Portfolio")
	fmt.Fprintln(a.out, "  4) Scenario quiz")
	fmt.Fprintln(a.out, "  5) Log out")
	fmt.Fprintln(a.out, "  q) Quit")

	switch a.promptLine("Choose") {
	case "1":
		a.open(ctx, "/course", a.renderCourses)
	case "2":
		a.open(ctx, "/goals", a.renderGoals)
	case "3":
		a.open(ctx, "/portfolio", a.renderPortfolio)
	case "4":
		a.open(ctx, "/scenario", a.renderScenario)
	case "5":
		a.renderLogout(ctx)
	case "q":
		return true
	}
	return false
}
