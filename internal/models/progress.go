package models

// Module progress status values as reported by the backend.
const (
	StatusLocked     = "locked"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ModuleProgress is the authoritative per-module progress snapshot.
// It is only ever as fresh as the last fetch; local optimistic counters
// are merged over it by taking the max of each counter.
type ModuleProgress struct {
	Status            string  `json:"status"`
	ProgressPercent   float64 `json:"progress_percent"`
	XPAwarded         int     `json:"xp_awarded"`
	FlashcardsFlipped int     `json:"flashcards_flipped"`
	MCQsCompleted     int     `json:"mcqs_completed"`
	CompletedAt       string  `json:"completed_at"`
}

// MCQOutcome is the per-question answer record.
// Attempts only ever grows; Correct, once true, locks the question.
type MCQOutcome struct {
	Answered       bool   `json:"answered"`
	Correct        bool   `json:"correct"`
	Attempts       int    `json:"attempts"`
	AllowRetry     bool   `json:"allowRetry"`
	SelectedChoice int    `json:"selected_choice"`
	SelectedAnswer string `json:"selected_answer"`
}

// FlipResult is the backend's response to a flashcard flip award.
type FlipResult struct {
	XPAwarded    int      `json:"xp_awarded"`
	UserXP       int      `json:"user_xp"`
	Message      string   `json:"message"`
	FlippedCards []string `json:"flipped_cards"`
}

// AnswerResult is the backend's response to an MCQ answer submission.
type AnswerResult struct {
	Correct   bool        `json:"correct"`
	XPAwarded int         `json:"xp_awarded"`
	UserXP    int         `json:"user_xp"`
	Message   string      `json:"message"`
	Progress  *MCQOutcome `json:"mcq_progress"`
}

// CompletionResult is the backend's response to a module completion event.
type CompletionResult struct {
	Completed bool `json:"completed"`
	XPAwarded int  `json:"xp_awarded"`
	UserXP    int  `json:"user_xp"`
}
