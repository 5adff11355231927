package game

import "sync"

// Compute implements the standard Wordle two-pass scoring of guess against answer.
//
// Pass 1:
//   - Mark exact matches Correct and consume those answer positions.
//
// Pass 2:
//   - For each remaining guess letter, consume the first unconsumed equal letter
//     of the answer (in position order) and mark Misplaced; otherwise Incorrect.
//
// Consumption limits Misplaced marks to the duplicates still left in the answer,
// so Compute is not symmetric in its arguments.
func Compute(guess, answer Word) Pattern {
	var p Pattern
	var consumed [WordLength]bool

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			p[i] = Correct
			consumed[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if p[i] == Correct {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if !consumed[j] && answer[j] == guess[i] {
				p[i] = Misplaced
				consumed[j] = true
				break
			}
		}
	}
	return p
}

// Allows reports whether candidate could be the answer given that guess produced pattern.
func Allows(pattern Pattern, guess, candidate Word) bool {
	return Compute(guess, candidate) == pattern
}

var allPatterns = sync.OnceValue(func() []Pattern {
	out := make([]Pattern, PatternCount)
	for code := 0; code < PatternCount; code++ {
		out[code] = PatternFromCode(uint8(code))
	}
	return out
})

// AllPatterns returns the full pattern space indexed by Pattern.Code.
// The slice is built once per process and shared; callers must not modify it.
func AllPatterns() []Pattern {
	return allPatterns()
}
