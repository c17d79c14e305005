package repository

import (
	"database/sql"
	"fmt"

	"habitly-be/internal/models"
)

// StatusRepository defines the interface for daily status rows. All day
// parameters are calendar dates formatted YYYY-MM-DD; the repository never
// touches rows for any other date.
type StatusRepository interface {
	// EnsureToday creates a Pending row for (user, habit, day) for every habit
	// in the user's selection ledger that doesn't have one yet. Returns the
	// number of rows created. Idempotent within a day.
	EnsureToday(userID, day string) (int64, error)
	// Mark sets the status of the (user, habit, day) row and stamps the time.
	// Returns false when no row exists, which means EnsureToday has not run
	// for that habit today.
	Mark(userID, habitID, day, status string) (bool, error)
	// ListForDay returns the user's statuses for the day joined with habit and
	// category info, applying the selection's display-name override.
	ListForDay(userID, day string) ([]*models.MyHabitStatus, error)
}

type statusRepository struct {
	db *sql.DB
}

// NewStatusRepository creates a new daily status repository
func NewStatusRepository(db *sql.DB) StatusRepository {
	return &statusRepository{db: db}
}

// EnsureToday reconciles the ledger against today's status rows in one
// statement. ON CONFLICT makes concurrent calls for the same user benign:
// the second writer's inserts simply do nothing.
func (r *statusRepository) EnsureToday(userID, day string) (int64, error) {
	query := `
		INSERT INTO daily_task_status (user_id, habit_id, status_date, status)
		SELECT user_id, habit_id, $2::date, 'Pending'
		FROM user_selected_habits
		WHERE user_id = $1
		ON CONFLICT (user_id, habit_id, status_date) DO NOTHING
	`

	result, err := r.db.Exec(query, userID, day)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure daily statuses: %w", err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return created, nil
}

// Mark updates the existing status row for the day. A missing row is reported
// via the bool, not an error.
func (r *statusRepository) Mark(userID, habitID, day, status string) (bool, error) {
	query := `
		UPDATE daily_task_status
		SET status = $1, marked_at = NOW()
		WHERE user_id = $2 AND habit_id = $3 AND status_date = $4::date
	`

	result, err := r.db.Exec(query, status, userID, habitID, day)
	if err != nil {
		return false, fmt.Errorf("failed to mark status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// ListForDay joins statuses with habits, categories and the selection ledger.
// An empty custom_name counts as no override.
func (r *statusRepository) ListForDay(userID, day string) ([]*models.MyHabitStatus, error) {
	query := `
		SELECT
			dts.habit_id,
			COALESCE(NULLIF(ush.custom_name, ''), h.name) AS display_name,
			c.id,
			c.name,
			h.is_custom,
			dts.status,
			dts.marked_at
		FROM daily_task_status dts
		JOIN habits h ON h.id = dts.habit_id
		JOIN categories c ON c.id = h.category_id
		LEFT JOIN user_selected_habits ush
			ON ush.user_id = dts.user_id AND ush.habit_id = dts.habit_id
		WHERE dts.user_id = $1 AND dts.status_date = $2::date
		ORDER BY c.name ASC, display_name ASC
	`

	rows, err := r.db.Query(query, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily statuses: %w", err)
	}
	defer rows.Close()

	var statuses []*models.MyHabitStatus
	for rows.Next() {
		var s models.MyHabitStatus
		err := rows.Scan(
			&s.HabitID,
			&s.DisplayName,
			&s.CategoryID,
			&s.CategoryName,
			&s.IsCustom,
			&s.Status,
			&s.MarkedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily status: %w", err)
		}
		statuses = append(statuses, &s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily statuses: %w", err)
	}

	return statuses, nil
}
