package repository

import (
	"database/sql"
	"fmt"

	"habitly-be/internal/entities"
)

// SelectionRepository defines the interface for the selection ledger: the
// adoption relationship between a user and a habit.
type SelectionRepository interface {
	// Adopt records the habit in the user's ledger with today's date.
	// Idempotent: returns false (and no error) when the pair already exists.
	Adopt(userID, habitID string) (bool, error)
	// Rename upserts the display-name override. A missing entry is created
	// (which also adopts the habit); an existing entry keeps its original
	// date_added and only the override changes.
	Rename(userID, habitID, customName string) error
	Find(userID, habitID string) (*entities.SelectionEntry, error)
	Delete(userID, habitID string) error
}

type selectionRepository struct {
	db *sql.DB
}

// NewSelectionRepository creates a new selection ledger repository
func NewSelectionRepository(db *sql.DB) SelectionRepository {
	return &selectionRepository{db: db}
}

// Adopt inserts a ledger entry, keyed on the (user_id, habit_id) unique
// constraint so a racing duplicate insert is a silent no-op.
func (r *selectionRepository) Adopt(userID, habitID string) (bool, error) {
	query := `
		INSERT INTO user_selected_habits (user_id, habit_id, date_added)
		VALUES ($1, $2, CURRENT_DATE)
		ON CONFLICT (user_id, habit_id) DO NOTHING
	`

	result, err := r.db.Exec(query, userID, habitID)
	if err != nil {
		return false, fmt.Errorf("failed to adopt habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Rename upserts the override name in a single statement, removing the
// select-then-update race.
func (r *selectionRepository) Rename(userID, habitID, customName string) error {
	query := `
		INSERT INTO user_selected_habits (user_id, habit_id, custom_name, date_added)
		VALUES ($1, $2, $3, CURRENT_DATE)
		ON CONFLICT (user_id, habit_id)
		DO UPDATE SET custom_name = EXCLUDED.custom_name
	`

	if _, err := r.db.Exec(query, userID, habitID, customName); err != nil {
		return fmt.Errorf("failed to rename habit: %w", err)
	}
	return nil
}

// Find retrieves the ledger entry for a (user, habit) pair
func (r *selectionRepository) Find(userID, habitID string) (*entities.SelectionEntry, error) {
	query := `
		SELECT id, user_id, habit_id, custom_name, date_added
		FROM user_selected_habits
		WHERE user_id = $1 AND habit_id = $2
	`

	var entry entities.SelectionEntry
	err := r.db.QueryRow(query, userID, habitID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.HabitID,
		&entry.CustomName,
		&entry.DateAdded,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find selection entry: %w", err)
	}

	return &entry, nil
}

// Delete removes the ledger entry for a (user, habit) pair. The underlying
// habit row is untouched.
func (r *selectionRepository) Delete(userID, habitID string) error {
	query := `DELETE FROM user_selected_habits WHERE user_id = $1 AND habit_id = $2`

	result, err := r.db.Exec(query, userID, habitID)
	if err != nil {
		return fmt.Errorf("failed to delete selection entry: %w", err)
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
