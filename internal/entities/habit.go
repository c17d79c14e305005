package entities

import "time"

// Habit belongs to exactly one category. Predefined habits are seeded at
// startup and never deleted; custom habits are created by a user and deleted
// when that user removes them.
type Habit struct {
	ID         string    `json:"id"` // UUID
	CategoryID string    `json:"category_id"`
	UserID     *string   `json:"user_id,omitempty"` // nil for predefined habits
	Name       string    `json:"name"`
	IsCustom   bool      `json:"is_custom"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// OwnedBy reports whether the habit is a custom habit owned by the given user.
func (h *Habit) OwnedBy(userID string) bool {
	return h.IsCustom && h.UserID != nil && *h.UserID == userID
}
