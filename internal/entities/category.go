package entities

import "time"

// Category groups habits. Predefined categories are shared by all users and
// have no owner; custom categories belong to exactly one user.
type Category struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	IsCustom  bool      `json:"is_custom"`
	UserID    *string   `json:"user_id,omitempty"` // nil for predefined categories
	CreatedAt time.Time `json:"created_at"`
}
