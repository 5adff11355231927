// apps/solver/internal/daily/daily.go
//
// Answer of the day.
// The answer for a date is answers[HMAC-SHA256(salt, "YYYY-MM-DD") mod len(answers)],
// so every process sharing the salt and answer list agrees on it.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// DefaultSalt is used when none is configured. Fine for local play only.
const DefaultSalt = "local_dev_salt"

var ErrNoAnswers = errors.New("daily: answer list is empty")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// ParseDate reads a YYYY-MM-DD date key.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle is one day's answer.
type Puzzle struct {
	Date   string    `json:"date"`
	Index  int       `json:"index"`
	Answer game.Word `json:"answer"`
}

// For picks the puzzle for date from answers.
func For(date time.Time, salt string, answers []game.Word) (Puzzle, error) {
	if len(answers) == 0 {
		return Puzzle{}, ErrNoAnswers
	}
	idx := WordIndex(date, salt, len(answers))
	return Puzzle{Date: DateKey(date), Index: idx, Answer: answers[idx]}, nil
}
