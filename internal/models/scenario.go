package models

// QuizStart is the response to starting a scenario run.
type QuizStart struct {
	Success bool `json:"success"`
	RunID   int  `json:"runId"`
}

// QuizQuestion is the current question in a scenario run. When the run is
// finished the backend returns Completed=true instead of a scenario.
type QuizQuestion struct {
	RunID          int              `json:"run_id"`
	Completed      bool             `json:"completed"`
	Scenario       *Scenario        `json:"scenario"`
	QuestionNumber int              `json:"question_number"`
	TotalQuestions int              `json:"total_questions"`
	Choices        []ScenarioChoice `json:"choices"`
	TotalScore     int              `json:"total_score"`
}

// Scenario is the situation being presented.
type Scenario struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	StartingBalance float64 `json:"starting_balance"`
}

// ScenarioChoice is one decision option with its simulated impact.
type ScenarioChoice struct {
	ID      int            `json:"id"`
	Text    string         `json:"text"`
	Type    string         `json:"type"`
	Score   int            `json:"score"`
	Impact  ScenarioImpact `json:"impact"`
	Content ScenarioNotes  `json:"content"`
}

// ScenarioImpact is the simulated effect of picking a choice.
type ScenarioImpact struct {
	Balance    float64 `json:"balance"`
	Confidence int     `json:"confidence"`
	Risk       int     `json:"risk"`
	GrowthRate float64 `json:"growth_rate"`
}

// ScenarioNotes carries the mentor commentary attached to a choice.
type ScenarioNotes struct {
	WhyMatters string `json:"why_matters"`
	Mentor     string `json:"mentor"`
}

// AnswerOutcome is the response to submitting a scenario decision.
type AnswerOutcome struct {
	Success    bool   `json:"success"`
	TotalScore int    `json:"total_score"`
	Completed  bool   `json:"completed"`
	Feedback   string `json:"feedback"`
}

// QuizResult is the final score sheet for a completed run.
type QuizResult struct {
	RunID          int     `json:"run_id"`
	TotalScore     int     `json:"total_score"`
	MaxScore       int     `json:"max_score"`
	ScorePercent   float64 `json:"score_percent"`
	QuestionsCount int     `json:"questions_count"`
	Verdict        string  `json:"verdict"`
}
