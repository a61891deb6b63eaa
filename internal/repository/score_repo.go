package repository

import (
	"database/sql"
	"fmt"
	"time"

	"hangman/internal/database"
	"hangman/internal/models"
)

// ScoreRepository handles database operations for scores
type ScoreRepository struct {
	db *database.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *database.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// CreateScore inserts the zero-point score that accompanies a new game
func (r *ScoreRepository) CreateScore(gameID int64) (*models.Score, error) {
	query := `
		INSERT INTO scores (game_id, points, won)
		VALUES (?, 0, ?)
	`
	id, err := r.db.ExecReturningID(query, gameID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create score: %w", err)
	}

	return &models.Score{
		ID:        id,
		GameID:    gameID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// GetScoreByGameID retrieves the score of a game, or (nil, nil) when absent
func (r *ScoreRepository) GetScoreByGameID(gameID int64) (*models.Score, error) {
	query := `
		SELECT id, game_id, points, won, created_at, updated_at
		FROM scores
		WHERE game_id = ?
	`
	score := &models.Score{}
	err := r.db.QueryRow(query, gameID).Scan(
		&score.ID,
		&score.GameID,
		&score.Points,
		&score.Won,
		&score.CreatedAt,
		&score.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return score, nil
}

const scoreWithUserQuery = `
	SELECT s.id, s.game_id, s.points, s.won, s.created_at, s.updated_at, u.name
	FROM scores s
	JOIN games g ON g.id = s.game_id
	JOIN users u ON u.id = g.user_id
`

// ListScores retrieves all scores with their owners' names
func (r *ScoreRepository) ListScores() ([]models.ScoreWithUser, error) {
	return r.queryScores(scoreWithUserQuery + " ORDER BY s.created_at")
}

// ListScoresByUser retrieves all scores of one user's games
func (r *ScoreRepository) ListScoresByUser(userID int64) ([]models.ScoreWithUser, error) {
	return r.queryScores(scoreWithUserQuery+" WHERE g.user_id = ? ORDER BY s.created_at", userID)
}

// ListTopScores retrieves the highest scores, points descending
func (r *ScoreRepository) ListTopScores(limit int) ([]models.ScoreWithUser, error) {
	return r.queryScores(scoreWithUserQuery+" ORDER BY s.points DESC LIMIT ?", limit)
}

func (r *ScoreRepository) queryScores(query string, args ...interface{}) ([]models.ScoreWithUser, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var scores []models.ScoreWithUser
	for rows.Next() {
		var s models.ScoreWithUser
		if err := rows.Scan(
			&s.Score.ID,
			&s.Score.GameID,
			&s.Score.Points,
			&s.Score.Won,
			&s.Score.CreatedAt,
			&s.Score.UpdatedAt,
			&s.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, s)
	}

	return scores, rows.Err()
}

// updateScore persists score fields inside the caller's transaction
func updateScore(dbtx database.DBTX, s *models.Score) error {
	query := `
		UPDATE scores
		SET points = ?, won = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := dbtx.Exec(query, s.Points, s.Won, s.ID)
	return err
}
