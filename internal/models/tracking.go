package models

import "time"

// RenameHabitRequest represents the request body for overriding a habit's
// display name in the caller's selection.
type RenameHabitRequest struct {
	CustomName string `json:"custom_name" binding:"required,min=1,max=255"`
}

// UpdateStatusRequest represents the request body for POST /update_habit_status
type UpdateStatusRequest struct {
	HabitID string `json:"habit_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// ActionResponse is the generic success/message envelope for mutating
// habit-tracking operations.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MyHabitsResponse lists today's statuses for every adopted habit.
type MyHabitsResponse struct {
	Date   string           `json:"date"` // YYYY-MM-DD
	Habits []*MyHabitStatus `json:"habits"`
}

// MyHabitStatus is one adopted habit with its status for the day. DisplayName
// is the selection's custom_name override when present, the habit's own name
// otherwise.
type MyHabitStatus struct {
	HabitID      string     `json:"habit_id"`
	DisplayName  string     `json:"display_name"`
	CategoryID   string     `json:"category_id"`
	CategoryName string     `json:"category_name"`
	IsCustom     bool       `json:"is_custom"`
	Status       string     `json:"status"`
	MarkedAt     *time.Time `json:"marked_at,omitempty"` // nil until first marked
}
