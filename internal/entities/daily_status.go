package entities

import "time"

// Status is the completion state of a habit on a given day.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusMissed    Status = "Missed"
	StatusSkipped   Status = "Skipped"
)

// ValidStatus reports whether s is one of the declared status values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusMissed, StatusSkipped:
		return true
	}
	return false
}

// DailyStatus is the per-user-per-habit-per-day completion record. Exactly one
// row exists per (user, habit, date); rows are created on demand with status
// Pending and rows for past dates are never mutated again.
type DailyStatus struct {
	ID         string     `json:"id"` // UUID
	UserID     string     `json:"user_id"`
	HabitID    string     `json:"habit_id"`
	StatusDate time.Time  `json:"status_date"`
	Status     Status     `json:"status"`
	MarkedAt   *time.Time `json:"marked_at,omitempty"` // nil until first marked
}
