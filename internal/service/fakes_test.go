package service

import (
	"sort"
	"strings"
	"sync"

	"hangman/internal/models"
)

// memStore is an in-memory implementation of the store interfaces for the
// service tests. It mimics the repositories' contract: lookups that miss
// return (nil, nil), and returned entities are copies of what is stored.
type memStore struct {
	mu       sync.Mutex
	userSeq  int64
	gameSeq  int64
	scoreSeq int64
	txSeq    int64
	users    map[int64]*models.User
	games    map[int64]*models.Game
	scores   map[int64]*models.Score // keyed by game ID
	txs      []models.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[int64]*models.User),
		games:  make(map[int64]*models.Game),
		scores: make(map[int64]*models.Score),
	}
}

func (m *memStore) CreateUser(name, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userSeq++
	u := &models.User{ID: m.userSeq, Name: name, Email: email}
	m.users[u.ID] = u
	copied := *u
	return &copied, nil
}

func (m *memStore) GetUserByName(name string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Name == name {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetUserByID(id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) ListUsers() ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memStore) ListUsersByRanking() ([]models.User, error) {
	users, _ := m.ListUsers()
	sort.SliceStable(users, func(i, j int) bool { return users[i].Ranking > users[j].Ranking })
	return users, nil
}

func (m *memStore) ListUsersWithEmail() ([]models.User, error) {
	users, _ := m.ListUsers()
	withEmail := users[:0]
	for _, u := range users {
		if strings.TrimSpace(u.Email) != "" {
			withEmail = append(withEmail, u)
		}
	}
	return withEmail, nil
}

func (m *memStore) UpdateRanking(userID int64, ranking float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.Ranking = ranking
	}
	return nil
}

func (m *memStore) CreateGame(g *models.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gameSeq++
	g.ID = m.gameSeq
	m.games[g.ID] = g.Clone()
	return nil
}

func (m *memStore) GetGameByKey(key string) (*models.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.games {
		if g.Key == key {
			return g.Clone(), nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateGame(g *models.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g.Clone()
	return nil
}

func (m *memStore) SaveGameAndScore(g *models.Game, s *models.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g.Clone()
	m.scores[g.ID] = s.Clone()
	return nil
}

func (m *memStore) ListGamesByUser(userID int64) ([]models.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var games []models.Game
	for _, g := range m.games {
		if g.UserID == userID {
			games = append(games, *g.Clone())
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (m *memStore) ListActiveGamesByUser(userID int64) ([]models.Game, error) {
	games, _ := m.ListGamesByUser(userID)
	active := games[:0]
	for _, g := range games {
		if g.Status() == models.StatusActive {
			active = append(active, g)
		}
	}
	return active, nil
}

func (m *memStore) CountOpenGamesByUser(userID int64) (int, error) {
	active, _ := m.ListActiveGamesByUser(userID)
	return len(active), nil
}

func (m *memStore) CreateScore(gameID int64) (*models.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreSeq++
	s := &models.Score{ID: m.scoreSeq, GameID: gameID}
	m.scores[gameID] = s
	return s.Clone(), nil
}

func (m *memStore) GetScoreByGameID(gameID int64) (*models.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.scores[gameID]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

func (m *memStore) ListScores() ([]models.ScoreWithUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoresWithUsersLocked(0), nil
}

func (m *memStore) ListScoresByUser(userID int64) ([]models.ScoreWithUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScoreWithUser
	for _, sw := range m.scoresWithUsersLocked(0) {
		if g, ok := m.games[sw.GameID]; ok && g.UserID == userID {
			out = append(out, sw)
		}
	}
	return out, nil
}

func (m *memStore) ListTopScores(limit int) ([]models.ScoreWithUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	scores := m.scoresWithUsersLocked(0)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Points > scores[j].Points })
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (m *memStore) scoresWithUsersLocked(limit int) []models.ScoreWithUser {
	var out []models.ScoreWithUser
	for gameID, s := range m.scores {
		sw := models.ScoreWithUser{Score: *s.Clone()}
		if g, ok := m.games[gameID]; ok {
			if u, ok := m.users[g.UserID]; ok {
				sw.UserName = u.Name
			}
		}
		out = append(out, sw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *memStore) AppendTransaction(gameID int64, guess, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txSeq++
	m.txs = append(m.txs, models.Transaction{ID: m.txSeq, GameID: gameID, Guess: guess, Result: result})
	return nil
}

func (m *memStore) ListTransactionsByGame(gameID int64) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Transaction
	for _, tx := range m.txs {
		if tx.GameID == gameID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// fixedWordSource always deals the same word.
type fixedWordSource struct {
	word string
}

func (f fixedWordSource) NextWord() string { return f.word }
