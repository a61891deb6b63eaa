package repository

import (
	"database/sql"
	"fmt"
	"time"

	"hangman/internal/database"
	"hangman/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, name, COALESCE(email, ''), ranking, created_at, updated_at"

// CreateUser inserts a new user. Name uniqueness is enforced by the schema;
// the service checks for an existing name first to report a clean conflict.
func (r *UserRepository) CreateUser(name, email string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email)
		VALUES (?, ?)
	`
	id, err := r.db.ExecReturningID(query, name, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// GetUserByName retrieves a user by name, or (nil, nil) when absent
func (r *UserRepository) GetUserByName(name string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE name = ?"
	return r.scanUser(r.db.QueryRow(query, name))
}

// GetUserByID retrieves a user by ID, or (nil, nil) when absent
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return r.scanUser(r.db.QueryRow(query, id))
}

// ListUsers retrieves all users
func (r *UserRepository) ListUsers() ([]models.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at"
	return r.queryUsers(query)
}

// ListUsersByRanking retrieves all users ordered by ranking descending
func (r *UserRepository) ListUsersByRanking() ([]models.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY ranking DESC"
	return r.queryUsers(query)
}

// ListUsersWithEmail retrieves users that have a contact address
func (r *UserRepository) ListUsersWithEmail() ([]models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email IS NOT NULL AND email != ''"
	return r.queryUsers(query)
}

// UpdateRanking persists a recomputed ranking onto a user
func (r *UserRepository) UpdateRanking(userID int64, ranking float64) error {
	query := `
		UPDATE users
		SET ranking = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, ranking, userID); err != nil {
		return fmt.Errorf("failed to update ranking: %w", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Ranking,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) queryUsers(query string, args ...interface{}) ([]models.User, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Ranking,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
