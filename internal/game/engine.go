// apps/solver/internal/game/engine.go
//
// Game engine for a single simulated Wordle session.
// Responsibilities:
//   - Drive any Guesser against a known answer, one attempt at a time.
//   - Score each attempt with Compute and append it to the history.
//   - Track state transitions: fresh → in_progress → solved/exhausted.
//
// Notes:
//   - Running out of attempts is a normal outcome, not an error.
//   - An illegal guess (outside the configured lexicon) means the guesser is broken and panics.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultMaxAttempts is the classic six-row board.
const DefaultMaxAttempts = 6

// Guesser produces the next word to play given everything played so far.
// Implementations own whatever working state they prune between calls;
// Reset discards it so the same instance can start a new game.
type Guesser interface {
	Guess(history []Guess) Word
	Reset()
}

// State is the lifecycle position of a Game.
type State string

const (
	StateFresh      State = "fresh"
	StateInProgress State = "in_progress"
	StateSolved     State = "solved"
	StateExhausted  State = "exhausted"
)

// Game holds the state of a single simulated game.
type Game struct {
	ID          string  // Unique game identifier (UUID), used to correlate log lines.
	Answer      Word    // The solution word.
	MaxAttempts int     // Attempt limit; 0 means the game is exhausted before it starts.
	History     []Guess // Attempts so far, oldest first.

	// Legal, when set, rejects guesses outside the dictionary.
	Legal func(Word) bool

	state State
}

// New constructs a fresh game for answer.
func New(answer Word, maxAttempts int) *Game {
	if maxAttempts < 0 {
		panic(fmt.Sprintf("game: negative attempt limit %d", maxAttempts))
	}
	return &Game{
		ID:          uuid.NewString(),
		Answer:      answer,
		MaxAttempts: maxAttempts,
		History:     make([]Guess, 0, maxAttempts),
		state:       StateFresh,
	}
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.state == StateFresh && g.MaxAttempts == 0 {
		return StateExhausted
	}
	return g.state
}

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool {
	s := g.State()
	return s == StateSolved || s == StateExhausted
}

// Attempts is the number of guesses played so far.
func (g *Game) Attempts() int { return len(g.History) }

// Reset returns the game to fresh with the same answer and limit.
func (g *Game) Reset() {
	g.History = g.History[:0]
	g.state = StateFresh
}

// Step asks the guesser for one word, scores it and records it.
// Calling Step on a finished game panics.
func (g *Game) Step(guesser Guesser) Guess {
	if g.Finished() {
		panic(fmt.Sprintf("game %s: step after %s", g.ID, g.State()))
	}

	word := guesser.Guess(g.History[:len(g.History):len(g.History)])
	if g.Legal != nil && !g.Legal(word) {
		panic(fmt.Sprintf("game %s: illegal guess %q", g.ID, word))
	}

	guess := Guess{Word: word, Pattern: Compute(word, g.Answer)}
	g.History = append(g.History, guess)

	switch {
	case guess.Pattern.Solved():
		g.state = StateSolved
	case len(g.History) >= g.MaxAttempts:
		g.state = StateExhausted
	default:
		g.state = StateInProgress
	}

	log.Trace().
		Str("game", g.ID).
		Int("attempt", len(g.History)).
		Stringer("guess", word).
		Stringer("pattern", guess.Pattern).
		Str("state", string(g.state)).
		Msg("attempt")
	return guess
}

// Run resets the guesser and steps until the game finishes.
// It returns the attempt count and whether the answer was found.
func (g *Game) Run(guesser Guesser) (int, bool) {
	guesser.Reset()
	for !g.Finished() {
		g.Step(guesser)
	}
	if g.state == StateSolved {
		return len(g.History), true
	}
	return 0, false
}

// Play runs one game of answer against guesser with the given attempt limit.
// It returns (attempts, true) when solved and (0, false) when the limit is exhausted.
func Play(guesser Guesser, answer Word, maxAttempts int) (int, bool) {
	return New(answer, maxAttempts).Run(guesser)
}
