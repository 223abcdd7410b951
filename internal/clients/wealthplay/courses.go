package wealthplay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// Courses retrieves the course catalogue. The endpoint has returned both a
// bare array and a wrapped object across backend versions; accept either.
func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/courses/json/", nil, &raw); err != nil {
		return nil, err
	}

	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err == nil {
		return courses, nil
	}

	var wrapped struct {
		Courses []models.Course `json:"courses"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode course list: %w", err)
	}
	return wrapped.Courses, nil
}

// Course retrieves a single course with its module list.
func (c *Client) Course(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	if err := c.get(ctx, fmt.Sprintf("/api/courses/json/%s/", courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Module retrieves module detail. The body may be wrapped in {"module": ...}.
func (c *Client) Module(ctx context.Context, courseID, moduleID string) (*models.Module, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/courses/json/%s/%s/", courseID, moduleID)
	if err := c.get(ctx, path, nil, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Module *models.Module `json:"module"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Module != nil {
		normalizeModule(wrapped.Module)
		return wrapped.Module, nil
	}

	var module models.Module
	if err := json.Unmarshal(raw, &module); err != nil {
		return nil, fmt.Errorf("failed to decode module detail: %w", err)
	}
	normalizeModule(&module)
	return &module, nil
}

// ModuleFlashCards is the fallback loader for modules whose cards live on a
// separate endpoint keyed by "{courseID}_{moduleID}".
func (c *Client) ModuleFlashCards(ctx context.Context, courseID, moduleID string) ([]models.FlashCard, error) {
	var resp struct {
		FlashCards []models.FlashCard `json:"flash_cards"`
	}
	path := fmt.Sprintf("/api/courses/api/module/%s_%s/flash-cards/", courseID, moduleID)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	for i := range resp.FlashCards {
		resp.FlashCards[i].Normalize(i)
	}
	return resp.FlashCards, nil
}

func normalizeModule(m *models.Module) {
	for i := range m.FlashCards {
		m.FlashCards[i].Normalize(i)
	}
}
