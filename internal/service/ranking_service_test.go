package service

import (
	"testing"
)

func TestRecomputeUser(t *testing.T) {
	store := newMemStore()
	gameSvc := NewGameService(store, store, store, store, fixedWordSource{word: "cat"})
	rankSvc := NewRankingService(store, store, store)

	user, _ := gameSvc.CreateUser("alice", "")

	// Won game: 33 points over 3 guesses contributes 33/3 + 33 = 44.
	won, _ := gameSvc.NewGame("alice")
	for _, letter := range []string{"c", "a", "t"} {
		gameSvc.MakeGuess(won.Game.Key, letter)
	}

	// Abandoned game with one correct guess: 1 point over 2 guesses
	// contributes 1/2 + 1 = 1.5.
	partial, _ := gameSvc.NewGame("alice")
	gameSvc.MakeGuess(partial.Game.Key, "c")
	gameSvc.MakeGuess(partial.Game.Key, "z")

	// Zero-point game is excluded.
	gameSvc.NewGame("alice")

	ranking, err := rankSvc.RecomputeUser(user.ID)
	if err != nil {
		t.Fatalf("RecomputeUser() error = %v", err)
	}
	if want := (44.0 + 1.5) / 2; ranking != want {
		t.Errorf("ranking = %v, want %v", ranking, want)
	}

	// The ranking is persisted on the user.
	stored, _ := store.GetUserByID(user.ID)
	if stored.Ranking != ranking {
		t.Errorf("stored ranking = %v, want %v", stored.Ranking, ranking)
	}
}

func TestRecomputeUserWithNoGames(t *testing.T) {
	store := newMemStore()
	rankSvc := NewRankingService(store, store, store)
	user, _ := store.CreateUser("alice", "")

	ranking, err := rankSvc.RecomputeUser(user.ID)
	if err != nil {
		t.Fatalf("RecomputeUser() error = %v", err)
	}
	if ranking != 0 {
		t.Errorf("ranking = %v, want 0", ranking)
	}
}

func TestListRankings(t *testing.T) {
	store := newMemStore()
	gameSvc := NewGameService(store, store, store, store, fixedWordSource{word: "cat"})
	rankSvc := NewRankingService(store, store, store)

	gameSvc.CreateUser("alice", "")
	gameSvc.CreateUser("bob", "")

	aliceGame, _ := gameSvc.NewGame("alice")
	for _, letter := range []string{"c", "a", "t"} {
		gameSvc.MakeGuess(aliceGame.Game.Key, letter)
	}
	bobGame, _ := gameSvc.NewGame("bob")
	gameSvc.MakeGuess(bobGame.Game.Key, "c")

	users, err := rankSvc.ListRankings()
	if err != nil {
		t.Fatalf("ListRankings() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Name != "alice" || users[1].Name != "bob" {
		t.Errorf("order = [%s, %s], want alice before bob", users[0].Name, users[1].Name)
	}
	if users[0].Ranking <= users[1].Ranking {
		t.Errorf("rankings not descending: %v, %v", users[0].Ranking, users[1].Ranking)
	}
}
