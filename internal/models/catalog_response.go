package models

import "habitly-be/internal/entities"

// CategoryListResponse splits the caller's visible categories by origin.
type CategoryListResponse struct {
	Predefined []*entities.Category `json:"predefined"`
	Custom     []*entities.Category `json:"custom"`
}

// HabitListResponse is the list of habits visible in one category.
type HabitListResponse struct {
	CategoryID string             `json:"category_id"`
	Category   string             `json:"category"`
	Habits     []*entities.Habit `json:"habits"`
}
