package models

// CreateCategoryRequest represents the request body for creating a custom category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// CreateHabitRequest represents the request body for creating a custom habit
type CreateHabitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateHabitRequest represents the request body for renaming a custom habit
type UpdateHabitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
