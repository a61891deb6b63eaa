package repository

import (
	"fmt"

	"hangman/internal/database"
	"hangman/internal/models"
)

// TransactionRepository handles the append-only guess audit log
type TransactionRepository struct {
	db *database.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// AppendTransaction records one accepted guess and its outcome message
func (r *TransactionRepository) AppendTransaction(gameID int64, guess, result string) error {
	query := `
		INSERT INTO transactions (game_id, guess, result)
		VALUES (?, ?, ?)
	`
	if _, err := r.db.Exec(query, gameID, guess, result); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// ListTransactionsByGame retrieves a game's guess history, oldest first
func (r *TransactionRepository) ListTransactionsByGame(gameID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, game_id, guess, result, created_at
		FROM transactions
		WHERE game_id = ?
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.GameID, &t.Guess, &t.Result, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}
