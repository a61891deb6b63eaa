package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"hangman/internal/database"
	"hangman/internal/models"
)

// GameRepository handles database operations for games. The list-shaped
// fields (revealed positions, incorrect guesses, hangman stages) are stored
// as JSON-encoded text columns.
type GameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `id, game_key, user_id, word, revealed, incorrect_guesses,
	attempts_remaining, hangman, game_over, game_cancelled, created_at, updated_at`

// CreateGame inserts a new game and assigns its ID
func (r *GameRepository) CreateGame(g *models.Game) error {
	query := `
		INSERT INTO games (game_key, user_id, word, revealed, incorrect_guesses,
			attempts_remaining, hangman, game_over, game_cancelled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		g.Key,
		g.UserID,
		g.Word,
		encodeList(g.Revealed),
		encodeList(g.IncorrectGuesses),
		g.AttemptsRemaining,
		encodeList(g.Hangman),
		g.GameOver,
		g.GameCancelled,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	g.ID = id
	return nil
}

// GetGameByKey retrieves a game by its opaque key, or (nil, nil) when absent
func (r *GameRepository) GetGameByKey(key string) (*models.Game, error) {
	query := "SELECT " + gameColumns + " FROM games WHERE game_key = ?"
	rows, err := r.db.Query(query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	game, err := scanGame(rows)
	if err != nil {
		return nil, err
	}
	return game, rows.Err()
}

// UpdateGame persists the mutable state of a game
func (r *GameRepository) UpdateGame(g *models.Game) error {
	if err := updateGame(r.db, g); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

// SaveGameAndScore commits the post-guess {game, score} pair in one
// transaction so a guess can never land on only one of the two.
func (r *GameRepository) SaveGameAndScore(g *models.Game, s *models.Score) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateGame(tx, g); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if err := updateScore(tx, s); err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit guess: %w", err)
	}
	return nil
}

// ListGamesByUser retrieves all of a user's games, oldest first
func (r *GameRepository) ListGamesByUser(userID int64) ([]models.Game, error) {
	query := "SELECT " + gameColumns + " FROM games WHERE user_id = ? ORDER BY created_at"
	return r.queryGames(query, userID)
}

// ListActiveGamesByUser retrieves a user's games that are neither over nor
// cancelled
func (r *GameRepository) ListActiveGamesByUser(userID int64) ([]models.Game, error) {
	query := "SELECT " + gameColumns + ` FROM games
		WHERE user_id = ? AND game_over = ? AND game_cancelled = ?
		ORDER BY created_at`
	return r.queryGames(query, userID, false, false)
}

// CountOpenGamesByUser counts a user's games still in play
func (r *GameRepository) CountOpenGamesByUser(userID int64) (int, error) {
	query := `
		SELECT COUNT(*) FROM games
		WHERE user_id = ? AND game_over = ? AND game_cancelled = ?
	`
	var count int
	if err := r.db.QueryRow(query, userID, false, false).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open games: %w", err)
	}
	return count, nil
}

func updateGame(dbtx database.DBTX, g *models.Game) error {
	query := `
		UPDATE games
		SET revealed = ?, incorrect_guesses = ?, attempts_remaining = ?,
			hangman = ?, game_over = ?, game_cancelled = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := dbtx.Exec(query,
		encodeList(g.Revealed),
		encodeList(g.IncorrectGuesses),
		g.AttemptsRemaining,
		encodeList(g.Hangman),
		g.GameOver,
		g.GameCancelled,
		g.ID,
	)
	return err
}

func (r *GameRepository) queryGames(query string, args ...interface{}) ([]models.Game, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}

	return games, rows.Err()
}

func scanGame(rows *sql.Rows) (*models.Game, error) {
	game := &models.Game{}
	var revealed, incorrect, hangman string
	if err := rows.Scan(
		&game.ID,
		&game.Key,
		&game.UserID,
		&game.Word,
		&revealed,
		&incorrect,
		&game.AttemptsRemaining,
		&hangman,
		&game.GameOver,
		&game.GameCancelled,
		&game.CreatedAt,
		&game.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan game: %w", err)
	}

	var err error
	if game.Revealed, err = decodeList(revealed); err != nil {
		return nil, fmt.Errorf("failed to decode revealed letters: %w", err)
	}
	if game.IncorrectGuesses, err = decodeList(incorrect); err != nil {
		return nil, fmt.Errorf("failed to decode incorrect guesses: %w", err)
	}
	if game.Hangman, err = decodeList(hangman); err != nil {
		return nil, fmt.Errorf("failed to decode hangman stages: %w", err)
	}
	return game, nil
}

// encodeList serializes an ordered string list for storage
func encodeList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return string(data)
}

// decodeList restores an ordered string list from storage
func decodeList(data string) ([]string, error) {
	if data == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, err
	}
	return list, nil
}
