package models

// Goal is a savings goal, fully owned by the backend. The client holds a
// fetched list and reloads it after every mutation rather than merging.
type Goal struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Icon            string  `json:"icon"`
	TargetAmount    float64 `json:"target_amount"`
	CurrentAmount   float64 `json:"current_amount"`
	MonthlySIP      float64 `json:"monthly_sip"`
	TimeToGoal      int     `json:"time_to_goal_months"`
	ProgressPercent float64 `json:"progress_percent"`
	RemainingAmount float64 `json:"remaining_amount"`
}

// GoalInput is the create/update payload for a goal.
type GoalInput struct {
	Name          string  `json:"name" validate:"required"`
	Icon          string  `json:"icon,omitempty"`
	TargetAmount  float64 `json:"target_amount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" validate:"gte=0"`
	MonthlySIP    float64 `json:"monthly_sip" validate:"required,gt=0"`
	TimeToGoal    int     `json:"time_to_goal" validate:"required,gt=0"`
}
