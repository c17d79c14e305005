package repository

import (
	"database/sql"
	"fmt"

	"habitly-be/internal/entities"
)

// CatalogRepository defines the interface for category and habit database
// operations. Predefined rows (user_id IS NULL) are shared by everyone; custom
// rows are visible to their owner only.
type CatalogRepository interface {
	// Seeding. Both are idempotent single-statement upserts keyed on the
	// partial unique indexes for predefined rows.
	SeedCategory(name string) (string, error)
	SeedHabit(categoryID, name string) error

	ListPredefinedCategories() ([]*entities.Category, error)
	ListCustomCategories(userID string) ([]*entities.Category, error)
	FindCategoryByID(id string) (*entities.Category, error)
	CreateCategory(name, userID string) (*entities.Category, error)
	DeleteCustomCategory(id, userID string) error

	ListHabitsByCategory(categoryID, userID string) ([]*entities.Habit, error)
	FindHabitByID(id string) (*entities.Habit, error)
	CreateHabit(categoryID, userID, name string) (*entities.Habit, error)
	UpdateCustomHabitName(id, userID, name string) error
	DeleteHabit(id string) error
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// SeedCategory inserts a predefined category if absent and returns its ID
// either way. The DO UPDATE arm is a no-op write that makes RETURNING yield
// the existing row on conflict.
func (r *catalogRepository) SeedCategory(name string) (string, error) {
	query := `
		INSERT INTO categories (name, is_custom, user_id)
		VALUES ($1, FALSE, NULL)
		ON CONFLICT (name) WHERE user_id IS NULL
		DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id string
	if err := r.db.QueryRow(query, name).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to seed category %q: %w", name, err)
	}
	return id, nil
}

// SeedHabit inserts a predefined habit if absent. Re-running is a no-op.
func (r *catalogRepository) SeedHabit(categoryID, name string) error {
	query := `
		INSERT INTO habits (category_id, name, is_custom, is_active, user_id)
		VALUES ($1, $2, FALSE, TRUE, NULL)
		ON CONFLICT (category_id, name) WHERE user_id IS NULL
		DO NOTHING
	`

	if _, err := r.db.Exec(query, categoryID, name); err != nil {
		return fmt.Errorf("failed to seed habit %q: %w", name, err)
	}
	return nil
}

// ListPredefinedCategories retrieves the shared categories
func (r *catalogRepository) ListPredefinedCategories() ([]*entities.Category, error) {
	query := `
		SELECT id, name, is_custom, user_id, created_at
		FROM categories
		WHERE user_id IS NULL
		ORDER BY created_at ASC, name ASC
	`
	return r.queryCategories(query)
}

// ListCustomCategories retrieves the categories owned by a specific user
func (r *catalogRepository) ListCustomCategories(userID string) ([]*entities.Category, error) {
	query := `
		SELECT id, name, is_custom, user_id, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at ASC, name ASC
	`
	return r.queryCategories(query, userID)
}

func (r *catalogRepository) queryCategories(query string, args ...interface{}) ([]*entities.Category, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entities.Category
	for rows.Next() {
		var category entities.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.IsCustom,
			&category.UserID,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// FindCategoryByID finds a category by ID (UUID)
func (r *catalogRepository) FindCategoryByID(id string) (*entities.Category, error) {
	query := `
		SELECT id, name, is_custom, user_id, created_at
		FROM categories
		WHERE id = $1
	`

	var category entities.Category
	err := r.db.QueryRow(query, id).Scan(
		&category.ID,
		&category.Name,
		&category.IsCustom,
		&category.UserID,
		&category.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

// CreateCategory inserts a custom category owned by the given user
func (r *catalogRepository) CreateCategory(name, userID string) (*entities.Category, error) {
	query := `
		INSERT INTO categories (name, is_custom, user_id)
		VALUES ($1, TRUE, $2)
		RETURNING id, name, is_custom, user_id, created_at
	`

	var category entities.Category
	err := r.db.QueryRow(query, name, userID).Scan(
		&category.ID,
		&category.Name,
		&category.IsCustom,
		&category.UserID,
		&category.CreatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// DeleteCustomCategory removes a custom category owned by the given user.
// Habits in the category cascade away with it.
func (r *catalogRepository) DeleteCustomCategory(id, userID string) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2 AND is_custom = TRUE`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListHabitsByCategory retrieves the habits a user can see in a category:
// the predefined ones plus their own custom ones.
func (r *catalogRepository) ListHabitsByCategory(categoryID, userID string) ([]*entities.Habit, error) {
	query := `
		SELECT id, category_id, user_id, name, is_custom, is_active, created_at
		FROM habits
		WHERE category_id = $1 AND (user_id IS NULL OR user_id = $2)
		ORDER BY created_at ASC, name ASC
	`

	rows, err := r.db.Query(query, categoryID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*entities.Habit
	for rows.Next() {
		var habit entities.Habit
		err := rows.Scan(
			&habit.ID,
			&habit.CategoryID,
			&habit.UserID,
			&habit.Name,
			&habit.IsCustom,
			&habit.IsActive,
			&habit.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, &habit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habits: %w", err)
	}

	return habits, nil
}

// FindHabitByID finds a habit by ID (UUID)
func (r *catalogRepository) FindHabitByID(id string) (*entities.Habit, error) {
	query := `
		SELECT id, category_id, user_id, name, is_custom, is_active, created_at
		FROM habits
		WHERE id = $1
	`

	var habit entities.Habit
	err := r.db.QueryRow(query, id).Scan(
		&habit.ID,
		&habit.CategoryID,
		&habit.UserID,
		&habit.Name,
		&habit.IsCustom,
		&habit.IsActive,
		&habit.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	return &habit, nil
}

// CreateHabit inserts a custom habit owned by the given user
func (r *catalogRepository) CreateHabit(categoryID, userID, name string) (*entities.Habit, error) {
	query := `
		INSERT INTO habits (category_id, user_id, name, is_custom, is_active)
		VALUES ($1, $2, $3, TRUE, TRUE)
		RETURNING id, category_id, user_id, name, is_custom, is_active, created_at
	`

	var habit entities.Habit
	err := r.db.QueryRow(query, categoryID, userID, name).Scan(
		&habit.ID,
		&habit.CategoryID,
		&habit.UserID,
		&habit.Name,
		&habit.IsCustom,
		&habit.IsActive,
		&habit.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &habit, nil
}

// UpdateCustomHabitName renames a custom habit (only if the user owns it)
func (r *catalogRepository) UpdateCustomHabitName(id, userID, name string) error {
	query := `
		UPDATE habits
		SET name = $1
		WHERE id = $2 AND user_id = $3 AND is_custom = TRUE
	`

	result, err := r.db.Exec(query, name, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteHabit removes a habit row. Selection entries and daily statuses
// referencing it cascade away. Ownership is checked by the caller.
func (r *catalogRepository) DeleteHabit(id string) error {
	result, err := r.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
