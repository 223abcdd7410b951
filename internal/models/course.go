package models

import (
	"encoding/json"
	"fmt"
)

// Course is one entry in the course catalogue.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       string   `json:"level"`
	Modules     []Module `json:"modules"`
}

// Module is one lesson within a course: theory plus activities.
type Module struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	Content    string      `json:"content"`
	FlashCards []FlashCard `json:"flash_cards"`
	MCQs       []MCQ       `json:"mcqs"`
}

// FlashCard is a single flip card. Authoring formats vary, so several
// fields alias each other; Normalize resolves them to one shape.
type FlashCard struct {
	ID            string `json:"-"`
	RawID         json.RawMessage `json:"id"`
	Topic         string `json:"topic"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	TheoryTitle   string `json:"theory_title"`
	TheoryContent string `json:"theory_content"`
}

// Normalize resolves aliased flashcard fields into ID/Question/Answer.
// Card identity falls back from explicit id to topic to positional index,
// matching how lessons were authored before ids became mandatory.
func (c *FlashCard) Normalize(index int) {
	switch {
	case len(c.RawID) > 0 && string(c.RawID) != "null":
		var s string
		if err := json.Unmarshal(c.RawID, &s); err == nil && s != "" {
			c.ID = s
		} else {
			var n int
			if err := json.Unmarshal(c.RawID, &n); err == nil {
				c.ID = fmt.Sprintf("%d", n)
			}
		}
	}
	if c.ID == "" && c.Topic != "" {
		c.ID = c.Topic
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("card-%d", index)
	}
	if c.Question == "" {
		c.Question = c.Topic
	}
	if c.Answer == "" {
		c.Answer = c.TheoryContent
	}
}

// MCQ is a multiple-choice question attached to a module.
type MCQ struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectChoice int      `json:"correct_choice"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// IsCorrect reports whether the given choice index answers the question,
// checking both the index and the answer text since authoring uses either.
func (m *MCQ) IsCorrect(choiceIdx int) bool {
	if choiceIdx == m.CorrectChoice {
		return true
	}
	if m.CorrectAnswer == "" || choiceIdx < 0 || choiceIdx >= len(m.Choices) {
		return false
	}
	return m.Choices[choiceIdx] == m.CorrectAnswer
}
