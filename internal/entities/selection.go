package entities

import "time"

// SelectionEntry links a user to a habit they have adopted. At most one entry
// exists per (user, habit) pair. CustomName, when set, overrides the habit's
// display name for this user only.
type SelectionEntry struct {
	ID         string    `json:"id"` // UUID
	UserID     string    `json:"user_id"`
	HabitID    string    `json:"habit_id"`
	CustomName *string   `json:"custom_name,omitempty"`
	DateAdded  time.Time `json:"date_added"`
}

// HasOverride reports whether the entry carries a non-empty display-name override.
func (e *SelectionEntry) HasOverride() bool {
	return e.CustomName != nil && *e.CustomName != ""
}
