package wealthplay

import (
	"context"
	"net/url"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

func moduleQuery(courseID, moduleID string) url.Values {
	return url.Values{
		"course_id": []string{courseID},
		"module_id": []string{moduleID},
	}
}

// FlippedCards retrieves the ids of cards the user has already flipped.
func (c *Client) FlippedCards(ctx context.Context, courseID, moduleID string) ([]string, error) {
	var resp struct {
		FlippedCards []string `json:"flipped_cards"`
	}
	if err := c.get(ctx, "/api/users/progress/flashcards/", moduleQuery(courseID, moduleID), &resp); err != nil {
		return nil, err
	}
	return resp.FlippedCards, nil
}

// MCQProgress retrieves the per-question answer records for a module.
func (c *Client) MCQProgress(ctx context.Context, courseID, moduleID string) (map[string]models.MCQOutcome, error) {
	var resp struct {
		MCQProgress map[string]models.MCQOutcome `json:"mcq_progress"`
	}
	if err := c.get(ctx, "/api/users/progress/mcqs/", moduleQuery(courseID, moduleID), &resp); err != nil {
		return nil, err
	}
	if resp.MCQProgress == nil {
		resp.MCQProgress = map[string]models.MCQOutcome{}
	}
	return resp.MCQProgress, nil
}

// ModuleProgress retrieves the authoritative progress snapshot.
func (c *Client) ModuleProgress(ctx context.Context, courseID, moduleID string) (*models.ModuleProgress, error) {
	var snap models.ModuleProgress
	if err := c.get(ctx, "/api/users/progress/module/", moduleQuery(courseID, moduleID), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// RecordFlip reports a first flip of a card. Re-flips of a known card award
// zero XP; the backend enforces that, the tracker avoids even calling.
func (c *Client) RecordFlip(ctx context.Context, courseID, moduleID, cardID string) (*models.FlipResult, error) {
	var result models.FlipResult
	err := c.postJSON(ctx, "/api/users/progress/flashcards/flip/", map[string]string{
		"course_id":    courseID,
		"module_id":    moduleID,
		"flashcard_id": cardID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RecordAnswer reports an MCQ submission. The locally computed verdict rides
// along as a fallback; the server's verdict in the response wins.
func (c *Client) RecordAnswer(ctx context.Context, courseID, moduleID, mcqID string, choice int, selected string, correct bool) (*models.AnswerResult, error) {
	var result models.AnswerResult
	err := c.postJSON(ctx, "/api/users/progress/mcqs/answer/", map[string]interface{}{
		"course_id":       courseID,
		"module_id":       moduleID,
		"mcq_id":          mcqID,
		"choice":          choice,
		"selected_answer": selected,
		"correct":         correct,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CompleteModule posts the module completion event.
func (c *Client) CompleteModule(ctx context.Context, courseID, moduleID string) (*models.CompletionResult, error) {
	var result models.CompletionResult
	err := c.postJSON(ctx, "/api/users/progress/module/complete/", map[string]string{
		"course_id": courseID,
		"module_id": moduleID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AwardXP posts a direct XP grant (scenario rewards use this).
func (c *Client) AwardXP(ctx context.Context, amount int, reason string) error {
	return c.postJSON(ctx, "/api/users/award-xp/", map[string]interface{}{
		"amount": amount,
		"reason": reason,
	}, nil)
}
