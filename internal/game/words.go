package game

import "math/rand"

// WordSource supplies the secret word for a new game. Tests inject a fixed
// source; production uses the static list below.
type WordSource interface {
	NextWord() string
}

// DefaultWords is the built-in word list. All entries are lowercase
// alphabetic, as required by the engine's exact-match comparison.
var DefaultWords = []string{
	"carpet", "bottle", "pencil", "jacket", "rocket", "planet",
	"phone", "broom", "light", "bubble", "brain", "roof", "water",
	"pink",
}

// StaticWordSource picks uniformly at random from a fixed list.
type StaticWordSource struct {
	words []string
}

// NewStaticWordSource creates a word source over the given list, falling
// back to DefaultWords when none is provided.
func NewStaticWordSource(words ...string) *StaticWordSource {
	if len(words) == 0 {
		words = DefaultWords
	}
	return &StaticWordSource{words: words}
}

// NextWord returns a random word from the list.
func (s *StaticWordSource) NextWord() string {
	return s.words[rand.Intn(len(s.words))]
}
