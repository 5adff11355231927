// apps/solver/internal/game/types.go
//
// Core type definitions for the Wordle solver.
// Defines:
//   - Word: a fixed five-letter lowercase word.
//   - Correctness / Pattern: per-letter feedback for a guess (and its dense base-3 code).
//   - Guess: one past move, the word played plus the pattern it produced.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// WordLength is the only word length the solver supports.
const WordLength = 5

// PatternCount is the size of the pattern space (3^WordLength).
const PatternCount = 243

var (
	ErrInvalidWord    = errors.New("game: invalid word")
	ErrInvalidPattern = errors.New("game: invalid pattern")
)

// Word is a five-letter lowercase a–z word.
// It is a value type; two words are equal iff their letters are equal.
type Word [WordLength]byte

// ParseWord trims, lowercases and validates s.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLength || !isAlpha(s) {
		return w, fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	copy(w[:], s)
	return w, nil
}

// MustWord is ParseWord for words known to be valid (literals, embedded data).
// A malformed word is a programming error and panics.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return string(w[:]) }

// IsZero reports whether w was never set, e.g. a JSON field left out.
func (w Word) IsZero() bool { return w == Word{} }

// MarshalText lets words travel as plain JSON strings.
func (w Word) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Word) UnmarshalText(b []byte) error {
	parsed, err := ParseWord(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Correctness represents the evaluation result for a single letter in a guess.
// The ordering Incorrect < Misplaced < Correct only exists for deterministic keys.
type Correctness uint8

const (
	Incorrect Correctness = iota // gray: no unconsumed occurrence left in the answer
	Misplaced                    // yellow: in the answer, different position
	Correct                      // green: right letter, right position
)

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "C"
	case Misplaced:
		return "M"
	default:
		return "I"
	}
}

// Pattern is the feedback for a whole word, one Correctness per position.
type Pattern [WordLength]Correctness

// Code packs the pattern into a base-3 number in [0, PatternCount),
// position 0 being the most significant digit.
func (p Pattern) Code() uint8 {
	var code uint8
	for _, c := range p {
		code = code*3 + uint8(c)
	}
	return code
}

// PatternFromCode is the inverse of Pattern.Code.
func PatternFromCode(code uint8) Pattern {
	var p Pattern
	for i := WordLength - 1; i >= 0; i-- {
		p[i] = Correctness(code % 3)
		code /= 3
	}
	return p
}

// Solved reports whether every position is Correct.
func (p Pattern) Solved() bool {
	for _, c := range p {
		if c != Correct {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, c := range p {
		b.WriteString(c.String())
	}
	return b.String()
}

func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Pattern) UnmarshalText(b []byte) error {
	parsed, err := ParsePattern(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePattern reads a five-character pattern. Accepted letters:
//   - C, G, +       → Correct   (green)
//   - M, Y, ~       → Misplaced (yellow)
//   - I, X, ., -, _ → Incorrect (gray)
//
// Letters are case-insensitive.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	s = strings.TrimSpace(s)
	if len(s) != WordLength {
		return p, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
	}
	for i := 0; i < WordLength; i++ {
		switch s[i] {
		case 'C', 'c', 'G', 'g', '+':
			p[i] = Correct
		case 'M', 'm', 'Y', 'y', '~':
			p[i] = Misplaced
		case 'I', 'i', 'X', 'x', '.', '-', '_':
			p[i] = Incorrect
		default:
			return p, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
		}
	}
	return p, nil
}

// Guess is one past move: the word played and the pattern it produced.
type Guess struct {
	Word    Word    `json:"word"`
	Pattern Pattern `json:"pattern"`
}

// Allows reports whether candidate is still consistent with this guess.
func (g Guess) Allows(candidate Word) bool {
	return Allows(g.Pattern, g.Word, candidate)
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
