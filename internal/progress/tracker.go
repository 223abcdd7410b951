// Package progress combines flashcard and MCQ completion signals for one
// lesson module into a single completion decision, submitted at most once.
package progress

import (
	"context"
	"sync"

	"github.com/jugadveer/wealthplay-cli/internal/common"
	"github.com/jugadveer/wealthplay-cli/internal/interfaces"
	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// RewardFunc receives transient XP reward notifications for display.
type RewardFunc func(xp int, message string)

// CompletedFunc receives the cross-view module-completed notification so a
// course listing can refresh its counts.
type CompletedFunc func(courseID, moduleID string)

// Tracker holds the client-local progress caches for one (course, module)
// pair: a monotonic flipped-card set, an MCQ outcome map, and the
// authoritative snapshot last fetched from the backend. Local counters are
// merged over the snapshot by taking the max, so a stale refetch can never
// regress visible progress.
type Tracker struct {
	mu       sync.Mutex
	api      interfaces.ProgressAPI
	logger   *common.Logger
	courseID string
	moduleID string

	cards []models.FlashCard
	mcqs  []models.MCQ

	flipped  map[string]bool
	outcomes map[string]models.MCQOutcome
	snapshot models.ModuleProgress

	onReward    RewardFunc
	onCompleted CompletedFunc
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the logger.
func WithLogger(logger *common.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// WithRewardFunc sets the XP reward notification hook.
func WithRewardFunc(fn RewardFunc) TrackerOption {
	return func(t *Tracker) {
		t.onReward = fn
	}
}

// WithCompletedFunc sets the module-completed notification hook.
func WithCompletedFunc(fn CompletedFunc) TrackerOption {
	return func(t *Tracker) {
		t.onCompleted = fn
	}
}

// NewTracker creates a tracker for the given module activities.
func NewTracker(api interfaces.ProgressAPI, courseID, moduleID string, cards []models.FlashCard, mcqs []models.MCQ, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		api:         api,
		logger:      common.NewSilentLogger(),
		courseID:    courseID,
		moduleID:    moduleID,
		cards:       cards,
		mcqs:        mcqs,
		flipped:     make(map[string]bool),
		outcomes:    make(map[string]models.MCQOutcome),
		snapshot:    models.ModuleProgress{Status: models.StatusInProgress},
		onReward:    func(int, string) {},
		onCompleted: func(string, string) {},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Load seeds the local caches from the backend. Each fetch failure is
// tolerated independently; the tracker then starts from empty state.
func (t *Tracker) Load(ctx context.Context) {
	if cards, err := t.api.FlippedCards(ctx, t.courseID, t.moduleID); err != nil {
		t.logger.Warn().Err(err).Msg("could not load flashcard progress")
	} else {
		t.mu.Lock()
		for _, id := range cards {
			t.flipped[id] = true
		}
		t.mu.Unlock()
	}

	if outcomes, err := t.api.MCQProgress(ctx, t.courseID, t.moduleID); err != nil {
		t.logger.Warn().Err(err).Msg("could not load MCQ progress")
	} else {
		t.mu.Lock()
		for id, o := range outcomes {
			t.outcomes[id] = o
		}
		t.mu.Unlock()
	}

	t.refreshSnapshot(ctx)
}

// Flip records the first flip of a card. A repeat flip is a pure no-op: the
// flip-award endpoint is not called again and no XP can double-award. The
// optimistic flip is never rolled back, even when the award call fails.
func (t *Tracker) Flip(ctx context.Context, cardID string) {
	t.mu.Lock()
	if t.flipped[cardID] {
		t.mu.Unlock()
		return
	}
	t.flipped[cardID] = true
	t.mu.Unlock()

	result, err := t.api.RecordFlip(ctx, t.courseID, t.moduleID, cardID)
	if err != nil {
		t.logger.Warn().Err(err).Str("card", cardID).Msg("flip award failed, keeping local flip")
	} else if result.XPAwarded > 0 {
		t.onReward(result.XPAwarded, "XP earned!")
		t.refreshSnapshot(ctx)
	}

	t.CheckCompletion(ctx)
}

// AnswerOutcome is what the view needs to render feedback after a submit.
type AnswerOutcome struct {
	Correct    bool
	XPAwarded  int
	Attempts   int
	AllowRetry bool
	Locked     bool // already answered correctly before; nothing was sent
}

// Answer submits a choice for an MCQ. A question already answered correctly
// is locked: no network call, no state change. Otherwise correctness is
// computed locally as a fallback and the server's verdict is preferred;
// either being positive counts. Attempts grow monotonically.
func (t *Tracker) Answer(ctx context.Context, mcqID string, choiceIdx int) AnswerOutcome {
	t.mu.Lock()
	if prev, ok := t.outcomes[mcqID]; ok && prev.Correct {
		t.mu.Unlock()
		return AnswerOutcome{Correct: true, Attempts: prev.Attempts, Locked: true}
	}
	prevAttempts := t.outcomes[mcqID].Attempts

	var mcq *models.MCQ
	for i := range t.mcqs {
		if t.mcqs[i].ID == mcqID {
			mcq = &t.mcqs[i]
			break
		}
	}
	t.mu.Unlock()

	localCorrect := mcq != nil && mcq.IsCorrect(choiceIdx)
	selected := ""
	if mcq != nil && choiceIdx >= 0 && choiceIdx < len(mcq.Choices) {
		selected = mcq.Choices[choiceIdx]
	}

	result, err := t.api.RecordAnswer(ctx, t.courseID, t.moduleID, mcqID, choiceIdx, selected, localCorrect)
	if err != nil {
		// No state change on transport failure; the user can resubmit.
		t.logger.Warn().Err(err).Str("mcq", mcqID).Msg("answer submission failed")
		return AnswerOutcome{Correct: localCorrect, Attempts: prevAttempts, AllowRetry: true}
	}

	correct := result.Correct || localCorrect

	t.mu.Lock()
	outcome := models.MCQOutcome{
		Answered:       true,
		Correct:        correct,
		Attempts:       prevAttempts + 1,
		AllowRetry:     !correct,
		SelectedChoice: choiceIdx,
		SelectedAnswer: selected,
	}
	t.outcomes[mcqID] = outcome
	t.mu.Unlock()

	if correct {
		if result.XPAwarded > 0 {
			t.onReward(result.XPAwarded, "XP earned!")
		}
		t.refreshSnapshot(ctx)
		t.CheckCompletion(ctx)
	}

	return AnswerOutcome{Correct: correct, XPAwarded: result.XPAwarded, Attempts: outcome.Attempts, AllowRetry: outcome.AllowRetry}
}

// Retry clears only the answered flag for an incorrectly answered question.
// The attempts counter never resets.
func (t *Tracker) Retry(mcqID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	o, ok := t.outcomes[mcqID]
	if !ok || o.Correct {
		return
	}
	o.Answered = false
	t.outcomes[mcqID] = o
}

// CheckCompletion recomputes eligibility from current state and posts the
// completion event the first time it is met. Safe to invoke redundantly:
// once the snapshot says completed, no further call reaches the network.
func (t *Tracker) CheckCompletion(ctx context.Context) {
	t.mu.Lock()
	if t.snapshot.Status == models.StatusCompleted {
		t.mu.Unlock()
		return
	}
	eligible := t.eligibleLocked()
	t.mu.Unlock()

	if !eligible {
		return
	}

	result, err := t.api.CompleteModule(ctx, t.courseID, t.moduleID)
	if err != nil {
		t.logger.Warn().Err(err).Msg("module completion submission failed")
		return
	}
	if !result.Completed {
		return
	}

	t.mu.Lock()
	t.snapshot.Status = models.StatusCompleted
	t.snapshot.ProgressPercent = 100
	if result.XPAwarded > 0 {
		t.snapshot.XPAwarded += result.XPAwarded
	}
	t.mu.Unlock()

	if result.XPAwarded > 0 {
		t.onReward(result.XPAwarded, "Module completed!")
	}
	t.onCompleted(t.courseID, t.moduleID)
	t.refreshSnapshot(ctx)
}

// eligibleLocked applies the completion rule: the module needs at least one
// activity, every flashcard flipped and every MCQ answered correctly, with
// an absent activity type skipped entirely. Caller holds the lock.
func (t *Tracker) eligibleLocked() bool {
	if len(t.cards) == 0 && len(t.mcqs) == 0 {
		return false
	}

	for _, card := range t.cards {
		if !t.flipped[card.ID] {
			return false
		}
	}

	for _, mcq := range t.mcqs {
		o, ok := t.outcomes[mcq.ID]
		if !ok || !o.Answered || !o.Correct {
			return false
		}
	}

	return true
}

// Progress returns the merged progress view: the authoritative snapshot
// overlaid with local counters, each taken as the max of the two.
func (t *Tracker) Progress() models.ModuleProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	merged := t.snapshot
	if n := len(t.flipped); n > merged.FlashcardsFlipped {
		merged.FlashcardsFlipped = n
	}
	if n := t.correctCountLocked(); n > merged.MCQsCompleted {
		merged.MCQsCompleted = n
	}
	return merged
}

// Flipped reports whether a card is in the flipped set.
func (t *Tracker) Flipped(cardID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flipped[cardID]
}

// Outcome returns the answer record for an MCQ, if any.
func (t *Tracker) Outcome(mcqID string) (models.MCQOutcome, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	o, ok := t.outcomes[mcqID]
	return o, ok
}

func (t *Tracker) correctCountLocked() int {
	n := 0
	for _, o := range t.outcomes {
		if o.Correct {
			n++
		}
	}
	return n
}

// refreshSnapshot refetches the authoritative snapshot and merges it in,
// never regressing a counter or a completed status.
func (t *Tracker) refreshSnapshot(ctx context.Context) {
	snap, err := t.api.ModuleProgress(ctx, t.courseID, t.moduleID)
	if err != nil {
		t.logger.Warn().Err(err).Msg("could not refresh module progress")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snapshot.Status == models.StatusCompleted && snap.Status != models.StatusCompleted {
		snap.Status = models.StatusCompleted
		if snap.ProgressPercent < t.snapshot.ProgressPercent {
			snap.ProgressPercent = t.snapshot.ProgressPercent
		}
	}
	if snap.FlashcardsFlipped < t.snapshot.FlashcardsFlipped {
		snap.FlashcardsFlipped = t.snapshot.FlashcardsFlipped
	}
	if snap.MCQsCompleted < t.snapshot.MCQsCompleted {
		snap.MCQsCompleted = t.snapshot.MCQsCompleted
	}
	if snap.XPAwarded < t.snapshot.XPAwarded {
		snap.XPAwarded = t.snapshot.XPAwarded
	}
	t.snapshot = *snap
}
