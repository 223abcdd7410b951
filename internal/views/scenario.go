package views

import (
	"context"
	"fmt"
	"strconv"
)

// renderScenario runs one scenario quiz: start, answer each question, show
// the result sheet.
func (a *App) renderScenario(ctx context.Context) {
	start, err := a.client.StartQuiz(ctx)
	if err != nil {
		a.alert(fmt.Sprintf("Could not start a scenario run: %v", err))
		return
	}

	for {
		question, err := a.client.Question(ctx, start.RunID)
		if err != nil {
			a.alert(fmt.Sprintf("Could not load the question: %v", err))
			return
		}
		if question.Completed || question.Scenario == nil {
			break
		}

		fmt.Fprintf(a.out, "\n-- Scenario %d/%d: %s --\n%s\nStarting balance: %.2f\n",
			question.QuestionNumber, question.TotalQuestions,
			question.Scenario.Title, question.Scenario.Description, question.Scenario.StartingBalance)

		for i, choice := range question.Choices {
			fmt.Fprintf(a.out, "  %d) %s\n", i+1, choice.Text)
		}

		pick, err := strconv.Atoi(a.promptLine("Your decision"))
		if err != nil || pick < 1 || pick > len(question.Choices) {
			continue
		}
		chosen := question.Choices[pick-1]

		outcome, err := a.client.SubmitAnswer(ctx, start.RunID, chosen.ID, chosen.Score)
		if err != nil {
			a.alert(fmt.Sprintf("Could not submit the decision: %v", err))
			return
		}

		if chosen.Content.Mentor != "" {
			fmt.Fprintf(a.out, "Mentor: %s\n", chosen.Content.Mentor)
		}
		if chosen.Content.WhyMatters != "" {
			fmt.Fprintf(a.out, "Why it matters: %s\n", chosen.Content.WhyMatters)
		}
		fmt.Fprintf(a.out, "Score so far: %d\n", outcome.TotalScore)

		if outcome.Completed {
			break
		}
	}

	result, err := a.client.Result(ctx, start.RunID)
	if err != nil {
		a.alert(fmt.Sprintf("Could not load the result: %v", err))
		return
	}

	fmt.Fprintf(a.out, "\n== Run complete: %d/%d (%.0f%%) — %s ==\n",
		result.TotalScore, result.MaxScore, result.ScorePercent, result.Verdict)
}
