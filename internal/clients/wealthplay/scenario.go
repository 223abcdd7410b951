package wealthplay

import (
	"context"
	"fmt"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// StartQuiz opens a new scenario run and returns its id.
func (c *Client) StartQuiz(ctx context.Context) (*models.QuizStart, error) {
	var start models.QuizStart
	if err := c.postJSON(ctx, "/api/scenario/api/start/", struct{}{}, &start); err != nil {
		return nil, err
	}
	if !start.Success {
		return nil, fmt.Errorf("scenario start rejected")
	}
	return &start, nil
}

// Question retrieves the current question for a run. A finished run yields
// Completed=true with no scenario.
func (c *Client) Question(ctx context.Context, runID int) (*models.QuizQuestion, error) {
	var q models.QuizQuestion
	if err := c.get(ctx, fmt.Sprintf("/api/scenario/api/quiz/%d/", runID), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// SubmitAnswer records a decision for the current question.
func (c *Client) SubmitAnswer(ctx context.Context, runID, choiceID, score int) (*models.AnswerOutcome, error) {
	var outcome models.AnswerOutcome
	err := c.postJSON(ctx, fmt.Sprintf("/api/scenario/api/quiz/%d/answer/", runID), map[string]int{
		"choice_id": choiceID,
		"score":     score,
	}, &outcome)
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// Result retrieves the final score sheet for a completed run.
func (c *Client) Result(ctx context.Context, runID int) (*models.QuizResult, error) {
	var result models.QuizResult
	if err := c.get(ctx, fmt.Sprintf("/api/scenario/api/quiz/%d/result/", runID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
