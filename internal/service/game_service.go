package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"hangman/internal/game"
	"hangman/internal/models"
)

// Messages accompanying game views outside of guesses.
const (
	newGameMessage   = "Good luck playing hangman!"
	getGameMessage   = "Time to make a guess!"
	cancelledMessage = "Game has been cancelled"
)

// defaultTopScores caps the high-score listing when no limit is given.
const defaultTopScores = 10

// GameService orchestrates the guess engine against the stores: it owns
// user registration, game lifecycle, guess processing and the score/history
// queries. All game mutations are serialized per game key.
type GameService struct {
	users  UserStore
	games  GameStore
	scores ScoreStore
	txlog  TransactionLog
	words  game.WordSource
	locks  *keyedMutex
}

// NewGameService creates a new game service
func NewGameService(users UserStore, games GameStore, scores ScoreStore, txlog TransactionLog, words game.WordSource) *GameService {
	return &GameService{
		users:  users,
		games:  games,
		scores: scores,
		txlog:  txlog,
		words:  words,
		locks:  newKeyedMutex(),
	}
}

// GameDetail is a game together with its owner's name and the message the
// triggering operation produced.
type GameDetail struct {
	Game      *models.Game
	OwnerName string
	Message   string
}

// CreateUser registers a new user. Names are unique.
func (s *GameService) CreateUser(name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.users.GetUserByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	return s.users.CreateUser(name, email)
}

// NewGame starts a game for the named user with a word from the word source.
func (s *GameService) NewGame(userName string) (*GameDetail, error) {
	user, err := s.users.GetUserByName(userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	g := game.NewGame(s.words.NextWord())
	g.Key = uuid.New().String()
	g.UserID = user.ID

	if err := s.games.CreateGame(g); err != nil {
		return nil, err
	}
	if _, err := s.scores.CreateScore(g.ID); err != nil {
		return nil, err
	}

	return &GameDetail{Game: g, OwnerName: user.Name, Message: newGameMessage}, nil
}

// GetGame returns the current state of a game.
func (s *GameService) GetGame(key string) (*GameDetail, error) {
	g, err := s.loadGame(key)
	if err != nil {
		return nil, err
	}
	return s.detail(g, getGameMessage)
}

// MakeGuess plays one letter against a game. The whole read-modify-write is
// serialized on the game key; the {game, score} pair commits atomically and
// the audit record is appended after the commit.
func (s *GameService) MakeGuess(key, letter string) (*GameDetail, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	g, err := s.loadGame(key)
	if err != nil {
		return nil, err
	}
	score, err := s.scores.GetScoreByGameID(g.ID)
	if err != nil {
		return nil, err
	}
	if score == nil {
		return nil, fmt.Errorf("no score found for game %s", key)
	}

	next := g.Clone()
	nextScore := score.Clone()
	msg, _, err := game.Apply(next, nextScore, letter)
	if err != nil {
		return nil, err
	}

	if err := s.games.SaveGameAndScore(next, nextScore); err != nil {
		return nil, err
	}

	// The guess is committed at this point; a failed audit append is logged
	// rather than failing the call.
	if err := s.txlog.AppendTransaction(next.ID, letter, msg); err != nil {
		log.Printf("Failed to record transaction for game %s: %v", key, err)
	}

	return s.detail(next, msg)
}

// CancelGame cancels an active game. Cancellation is terminal but is neither
// a win nor a loss.
func (s *GameService) CancelGame(key string) (*GameDetail, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	g, err := s.loadGame(key)
	if err != nil {
		return nil, err
	}

	next := g.Clone()
	if err := game.Cancel(next); err != nil {
		return nil, err
	}
	if err := s.games.UpdateGame(next); err != nil {
		return nil, err
	}

	return s.detail(next, cancelledMessage)
}

// ListUserGames returns the named user's games still in play.
func (s *GameService) ListUserGames(userName string) ([]GameDetail, error) {
	user, err := s.users.GetUserByName(userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	games, err := s.games.ListActiveGamesByUser(user.ID)
	if err != nil {
		return nil, err
	}

	details := make([]GameDetail, 0, len(games))
	for i := range games {
		details = append(details, GameDetail{Game: &games[i], OwnerName: user.Name})
	}
	return details, nil
}

// GameHistory returns the guesses made in a game, oldest first.
func (s *GameService) GameHistory(key string) ([]models.Transaction, error) {
	g, err := s.loadGame(key)
	if err != nil {
		return nil, err
	}
	return s.txlog.ListTransactionsByGame(g.ID)
}

// ListScores returns every game's score.
func (s *GameService) ListScores() ([]models.ScoreWithUser, error) {
	return s.scores.ListScores()
}

// ListUserScores returns the scores of the named user's games.
func (s *GameService) ListUserScores(userName string) ([]models.ScoreWithUser, error) {
	user, err := s.users.GetUserByName(userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.scores.ListScoresByUser(user.ID)
}

// ListTopScores returns the highest scores, points descending.
func (s *GameService) ListTopScores(limit int) ([]models.ScoreWithUser, error) {
	if limit <= 0 {
		limit = defaultTopScores
	}
	return s.scores.ListTopScores(limit)
}

func (s *GameService) loadGame(key string) (*models.Game, error) {
	g, err := s.games.GetGameByKey(key)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (s *GameService) detail(g *models.Game, message string) (*GameDetail, error) {
	owner, err := s.users.GetUserByID(g.UserID)
	if err != nil {
		return nil, err
	}
	name := ""
	if owner != nil {
		name = owner.Name
	}
	return &GameDetail{Game: g, OwnerName: name, Message: message}, nil
}
