package views

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jugadveer/wealthplay-cli/internal/models"
	"github.com/jugadveer/wealthplay-cli/internal/progress"
)

// renderCourses lists the catalogue and opens a selected course.
func (a *App) renderCourses(ctx context.Context) {
	courses, err := a.client.Courses(ctx)
	if err != nil {
		a.alert(fmt.Sprintf("Could not load courses: %v", err))
		return
	}
	a.staleCourses = false

	fmt.Fprintln(a.out, "\n-- Courses --")
	for i, course := range courses {
		fmt.Fprintf(a.out, "  %d) %s [%s] — %d modules\n", i+1, course.Title, course.Level, len(course.Modules))
	}

	choice := a.promptInt("Open course (number, 0 to go back)")
	if choice < 1 || choice > len(courses) {
		return
	}
	a.renderCourse(ctx, courses[choice-1].ID)
}

func (a *App) renderCourse(ctx context.Context, courseID string) {
	course, err := a.client.Course(ctx, courseID)
	if err != nil {
		a.alert(fmt.Sprintf("Could not load course: %v", err))
		return
	}

	fmt.Fprintf(a.out, "\n-- %s --\n%s\n", course.Title, course.Description)
	for i, module := range course.Modules {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, module.Title)
	}

	choice := a.promptInt("Open module (number, 0 to go back)")
	if choice < 1 || choice > len(course.Modules) {
		return
	}
	a.renderLesson(ctx, courseID, course.Modules[choice-1].ID)
}

// renderLesson runs one module: theory, flashcards, MCQs, mentor chat. The
// tracker owns all completion bookkeeping.
func (a *App) renderLesson(ctx context.Context, courseID, moduleID string) {
	module, err := a.client.Module(ctx, courseID, moduleID)
	if err != nil {
		a.alert(fmt.Sprintf("Could not load module: %v", err))
		return
	}

	cards := module.FlashCards
	if len(cards) == 0 {
		// Older lessons keep their cards on a separate endpoint
		if fallback, err := a.client.ModuleFlashCards(ctx, courseID, moduleID); err == nil {
			cards = fallback
		}
	}

	tracker := progress.NewTracker(a.client, courseID, moduleID, cards, module.MCQs,
		progress.WithLogger(a.logger),
		progress.WithRewardFunc(func(xp int, message string) {
			a.toast(fmt.Sprintf("+%d XP — %s", xp, message))
		}),
		progress.WithCompletedFunc(func(courseID, moduleID string) {
			a.bus.Publish(Event{Name: EventModuleCompleted, CourseID: courseID, ModuleID: moduleID})
		}),
	)
	tracker.Load(ctx)

	for {
		snap := tracker.Progress()
		fmt.Fprintf(a.out, "\n-- %s --\n%s\n", module.Title, module.Summary)
		fmt.Fprintf(a.out, "Progress: %s — %d/%d flashcards, %d/%d MCQs (%.0f%%)\n",
			snap.Status, snap.FlashcardsFlipped, len(cards), snap.MCQsCompleted, len(module.MCQs), snap.ProgressPercent)

		fmt.Fprintln(a.out, "  1) Read theory")
		fmt.Fprintln(a.out, "  2) Flashcards")
		fmt.Fprintln(a.out, "  3) Questions")
		fmt.Fprintln(a.out, "  4) Ask the mentor")
		fmt.Fprintln(a.out, "  0) Back")

		switch a.promptLine("Choose") {
		case "1":
			fmt.Fprintln(a.out, module.Content)
		case "2":
			a.renderFlashCards(ctx, tracker, cards)
		case "3":
			a.renderMCQs(ctx, tracker, module.MCQs)
		case "4":
			a.renderMentorChat(ctx, courseID, moduleID)
		case "0":
			return
		}
	}
}

func (a *App) renderFlashCards(ctx context.Context, tracker *progress.Tracker, cards []models.FlashCard) {
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No flashcards in this module.")
		return
	}

	for i, card := range cards {
		fmt.Fprintf(a.out, "\nCard %d/%d: %s\n", i+1, len(cards), card.Question)
		if tracker.Flipped(card.ID) {
			fmt.Fprintf(a.out, "  %s\n", card.Answer)
			continue
		}
		if !a.promptYesNo("Flip?") {
			continue
		}
		fmt.Fprintf(a.out, "  %s\n", card.Answer)
		tracker.Flip(ctx, card.ID)
	}
}

func (a *App) renderMCQs(ctx context.Context, tracker *progress.Tracker, mcqs []models.MCQ) {
	if len(mcqs) == 0 {
		fmt.Fprintln(a.out, "No questions in this module.")
		return
	}

	for i, mcq := range mcqs {
		outcome, answered := tracker.Outcome(mcq.ID)
		if answered && outcome.Correct {
			fmt.Fprintf(a.out, "\nQ%d: %s — already answered correctly\n", i+1, mcq.Question)
			continue
		}
		if answered && outcome.Answered && outcome.AllowRetry {
			if !a.promptYesNo(fmt.Sprintf("\nQ%d was wrong before (%d attempts). Try again?", i+1, outcome.Attempts)) {
				continue
			}
			tracker.Retry(mcq.ID)
		}

		fmt.Fprintf(a.out, "\nQ%d: %s\n", i+1, mcq.Question)
		for j, choice := range mcq.Choices {
			fmt.Fprintf(a.out, "  %d) %s\n", j+1, choice)
		}

		pick, err := strconv.Atoi(a.promptLine("Answer"))
		if err != nil || pick < 1 || pick > len(mcq.Choices) {
			continue
		}

		result := tracker.Answer(ctx, mcq.ID, pick-1)
		if result.Correct {
			fmt.Fprintln(a.out, "Correct!")
			if mcq.Explanation != "" {
				fmt.Fprintf(a.out, "  %s\n", mcq.Explanation)
			}
		} else {
			fmt.Fprintf(a.out, "Not quite (attempt %d). You can retry later.\n", result.Attempts)
		}
	}
}

func (a *App) renderMentorChat(ctx context.Context, courseID, moduleID string) {
	for {
		question := a.promptLine("Ask Nex (empty to stop)")
		if question == "" {
			return
		}

		answer, err := a.client.Ask(ctx, courseID, moduleID, question)
		if err != nil {
			// The chat never aborts the lesson; degrade to a canned line
			a.logger.Debug().Err(err).Msg("mentor request failed")
			answer = "Sorry, I encountered an error. Please try again."
		}
		fmt.Fprintf(a.out, "Nex: %s\n", answer)
	}
}
