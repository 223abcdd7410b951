// Package interfaces defines the contracts between the WealthPlay client layers
package interfaces

import (
	"context"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// TokenSource supplies the anti-forgery token attached to mutating requests.
// Implementations may consult a cookie jar, a bootstrap endpoint, or a fixed
// value in tests.
type TokenSource interface {
	// Token resolves the current token, fetching it from the backend if the
	// cookie jar has none. A failed fetch yields "" and no error; the server
	// will reject the request and the caller surfaces that instead.
	Token(ctx context.Context) (string, error)

	// CachedToken returns the token already present in the cookie jar, or "".
	// It never touches the network; it is the synchronous variant used at
	// request-interception time.
	CachedToken() string
}

// AuthAPI covers the authentication endpoints.
type AuthAPI interface {
	// Profile probes the session. A 401/403 comes back as an APIError and
	// means "anonymous", not a fault.
	Profile(ctx context.Context) (*models.UserIdentity, error)

	// Login posts credentials as a multipart form.
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)

	// Signup posts the registration form.
	Signup(ctx context.Context, username, email, password, password2 string) (*models.AuthResponse, error)

	// Logout posts the logout event; the response body is ignored.
	Logout(ctx context.Context) error

	// SaveOnboarding stores the signup questionnaire.
	SaveOnboarding(ctx context.Context, answers models.OnboardingAnswers) (*models.OnboardingResult, error)
}

// CourseAPI covers the course catalogue endpoints.
type CourseAPI interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Course(ctx context.Context, courseID string) (*models.Course, error)
	Module(ctx context.Context, courseID, moduleID string) (*models.Module, error)
	ModuleFlashCards(ctx context.Context, courseID, moduleID string) ([]models.FlashCard, error)
}

// ProgressAPI covers the lesson progress endpoints.
type ProgressAPI interface {
	FlippedCards(ctx context.Context, courseID, moduleID string) ([]string, error)
	MCQProgress(ctx context.Context, courseID, moduleID string) (map[string]models.MCQOutcome, error)
	ModuleProgress(ctx context.Context, courseID, moduleID string) (*models.ModuleProgress, error)
	RecordFlip(ctx context.Context, courseID, moduleID, cardID string) (*models.FlipResult, error)
	RecordAnswer(ctx context.Context, courseID, moduleID, mcqID string, choice int, selected string, correct bool) (*models.AnswerResult, error)
	CompleteModule(ctx context.Context, courseID, moduleID string) (*models.CompletionResult, error)
	AwardXP(ctx context.Context, amount int, reason string) error
}

// GoalsAPI covers the savings goal endpoints.
type GoalsAPI interface {
	Goals(ctx context.Context) ([]models.Goal, error)
	CreateGoal(ctx context.Context, input models.GoalInput) error
	UpdateGoal(ctx context.Context, goalID int, input models.GoalInput) error
	DeleteGoal(ctx context.Context, goalID int) error
}

// PortfolioAPI covers the simulated trading endpoints.
type PortfolioAPI interface {
	Portfolio(ctx context.Context) (*models.Portfolio, error)
	Stocks(ctx context.Context) ([]models.Stock, error)
	StockDetail(ctx context.Context, symbol string) (*models.StockDetail, error)
	Buy(ctx context.Context, symbol string, quantity int) (*models.TradeResult, error)
	Sell(ctx context.Context, symbol string, quantity int) (*models.TradeResult, error)
	History(ctx context.Context, days int) ([]models.PricePoint, error)
	Recommendation(ctx context.Context, symbol string) (*models.Recommendation, error)
}

// ScenarioAPI covers the gamified scenario quiz endpoints.
type ScenarioAPI interface {
	StartQuiz(ctx context.Context) (*models.QuizStart, error)
	Question(ctx context.Context, runID int) (*models.QuizQuestion, error)
	SubmitAnswer(ctx context.Context, runID, choiceID, score int) (*models.AnswerOutcome, error)
	Result(ctx context.Context, runID int) (*models.QuizResult, error)
}

// MentorAPI relays lesson questions to the AI mentor.
type MentorAPI interface {
	Ask(ctx context.Context, courseID, moduleID, question string) (string, error)
}
