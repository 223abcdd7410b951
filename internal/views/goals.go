package views

import (
	"context"
	"fmt"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// renderGoals shows the savings goals and the create/update/delete actions.
// Every mutation is followed by a full list reload; nothing merges locally.
func (a *App) renderGoals(ctx context.Context) {
	for {
		goals, err := a.client.Goals(ctx)
		if err != nil {
			a.alert(fmt.Sprintf("Could not load goals: %v", err))
			return
		}

		fmt.Fprintln(a.out, "\n-- Goals --")
		if len(goals) == 0 {
			fmt.Fprintln(a.out, "  (no goals yet)")
		}
		for i, g := range goals {
			fmt.Fprintf(a.out, "  %d) %s — %.0f/%.0f (%.1f%%), SIP %.0f/mo, %d months left\n",
				i+1, g.Name, g.CurrentAmount, g.TargetAmount, g.ProgressPercent, g.MonthlySIP, g.TimeToGoal)
		}

		fmt.Fprintln(a.out, "  n) New goal   u) Update goal   d) Delete goal   0) Back")
		switch a.promptLine("Choose") {
		case "n":
			input := a.promptGoalInput()
			if err := a.client.CreateGoal(ctx, input); err != nil {
				a.alert(fmt.Sprintf("Could not create goal: %v", err))
			}
		case "u":
			idx := a.promptInt("Which goal (number)")
			if idx < 1 || idx > len(goals) {
				continue
			}
			input := a.promptGoalInput()
			if err := a.client.UpdateGoal(ctx, goals[idx-1].ID, input); err != nil {
				a.alert(fmt.Sprintf("Could not update goal: %v", err))
			}
		case "d":
			idx := a.promptInt("Which goal (number)")
			if idx < 1 || idx > len(goals) {
				continue
			}
			if err := a.client.DeleteGoal(ctx, goals[idx-1].ID); err != nil {
				a.alert(fmt.Sprintf("Could not delete goal: %v", err))
			}
		case "0":
			return
		}
	}
}

func (a *App) promptGoalInput() models.GoalInput {
	return models.GoalInput{
		Name:          a.promptLine("Goal name"),
		Icon:          a.promptLine("Icon (optional)"),
		TargetAmount:  a.promptFloat("Target amount"),
		CurrentAmount: a.promptFloat("Already saved"),
		MonthlySIP:    a.promptFloat("Monthly SIP"),
		TimeToGoal:    a.promptInt("Months to goal"),
	}
}
