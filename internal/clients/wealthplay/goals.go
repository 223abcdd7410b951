package wealthplay

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

var goalValidate = validator.New()

// Goals retrieves the full goal list.
func (c *Client) Goals(ctx context.Context) ([]models.Goal, error) {
	var resp struct {
		Goals []models.Goal `json:"goals"`
	}
	if err := c.get(ctx, "/api/users/goals/api/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Goals, nil
}

// CreateGoal validates and posts a new goal. Callers reload the list after
// a successful create; the response body is not merged locally.
func (c *Client) CreateGoal(ctx context.Context, input models.GoalInput) error {
	if err := goalValidate.Struct(input); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.postJSON(ctx, "/api/users/goals/api/create/", input, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("goal create rejected: %s", resp.Error)
	}
	return nil
}

// UpdateGoal validates and posts changes to an existing goal.
func (c *Client) UpdateGoal(ctx context.Context, goalID int, input models.GoalInput) error {
	if err := goalValidate.Struct(input); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/api/users/goals/api/%d/update/", goalID), input, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("goal update rejected: %s", resp.Error)
	}
	return nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, goalID int) error {
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.delete(ctx, fmt.Sprintf("/api/users/goals/api/%d/delete/", goalID), &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("goal delete rejected: %s", resp.Error)
	}
	return nil
}
