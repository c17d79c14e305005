package repository

import (
	"database/sql"
	"fmt"

	"habitly-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(user *entities.User) (*entities.User, error)
	FindByIdentifier(identifier string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, username, dob, gender, mobile, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(query,
		user.FirstName,
		user.LastName,
		user.Username,
		user.DOB,
		user.Gender,
		user.Mobile,
		user.Email,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)

	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByIdentifier finds a user by email or username
func (r *userRepository) FindByIdentifier(identifier string) (*entities.User, error) {
	query := `
		SELECT id, first_name, last_name, username, dob, gender, mobile, email, password_hash, created_at
		FROM users
		WHERE email = $1 OR username = $1
	`
	return r.scanUser(r.db.QueryRow(query, identifier))
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	query := `
		SELECT id, first_name, last_name, username, dob, gender, mobile, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(query, id))
}

func (r *userRepository) scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.DOB,
		&user.Gender,
		&user.Mobile,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
