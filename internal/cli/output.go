package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResult:
		o.printGame(v)
	case *bench.Report:
		o.printReport(v)
	case ScoreResult:
		fmt.Fprintf(o.w, "%s  %s\n", colorize(game.Guess{Word: v.Guess, Pattern: v.Pattern}), v.Pattern)
	case Suggestion:
		o.printSuggestion(v)
	case DailyResult:
		o.printDaily(v)
	case []words.Entry:
		for _, e := range v {
			fmt.Fprintf(o.w, "%s %d\n", e.Word, e.Count)
		}
	case []string:
		for _, s := range v {
			fmt.Fprintln(o.w, s)
		}
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameResult is one simulated game.
type GameResult struct {
	ID       string       `json:"id"`
	Answer   game.Word    `json:"answer"`
	Solved   bool         `json:"solved"`
	Attempts int          `json:"attempts"`
	Guesses  []game.Guess `json:"guesses"`
}

// ScoreResult is the feedback for one guess.
type ScoreResult struct {
	Guess   game.Word    `json:"guess"`
	Answer  game.Word    `json:"answer"`
	Pattern game.Pattern `json:"pattern"`
}

// Suggestion is the assistant's next word.
type Suggestion struct {
	Guess      game.Word `json:"guess"`
	Remaining  int       `json:"remaining"`
	Candidates []string  `json:"candidates,omitempty"`
}

// DailyResult is a daily puzzle and, optionally, the solver's game on it.
type DailyResult struct {
	daily.Puzzle
	Game *GameResult `json:"game,omitempty"`
}

func (o *Output) printGame(g GameResult) {
	for i, gs := range g.Guesses {
		fmt.Fprintf(o.w, "%d. %s\n", i+1, colorize(gs))
	}
	if g.Solved {
		fmt.Fprintf(o.w, "Solved %s in %d\n", g.Answer, g.Attempts)
	} else {
		fmt.Fprintf(o.w, "Failed to solve %s\n", g.Answer)
	}
}

func (o *Output) printReport(r *bench.Report) {
	fmt.Fprint(o.w, r.Summary())
	fmt.Fprintln(o.w, "distribution:")
	for k := 1; k < len(r.Distribution); k++ {
		fmt.Fprintf(o.w, "  %d: %s %d\n", k, strings.Repeat("#", bar(r.Distribution[k], r.Solved)), r.Distribution[k])
	}
	if r.Failed > 0 {
		fmt.Fprintf(o.w, "  X: %d\n", r.Failed)
	}
	for _, res := range r.Results {
		fmt.Fprintf(o.w, "%s ", res.Answer)
		if res.Solved {
			fmt.Fprintf(o.w, "%d\n", res.Attempts)
		} else {
			fmt.Fprintln(o.w, "X")
		}
	}
}

func (o *Output) printSuggestion(s Suggestion) {
	fmt.Fprintf(o.w, "Try: %s (%d remaining)\n", s.Guess, s.Remaining)
	if len(s.Candidates) > 0 {
		fmt.Fprintf(o.w, "Candidates: %s\n", strings.Join(s.Candidates, ", "))
	}
}

func (o *Output) printDaily(d DailyResult) {
	fmt.Fprintf(o.w, "Date: %s\n", d.Date)
	fmt.Fprintf(o.w, "Index: %d\n", d.Index)
	if d.Game == nil {
		fmt.Fprintf(o.w, "Answer: %s\n", d.Answer)
		return
	}
	o.printGame(*d.Game)
}

// bar scales n out of total to at most 40 characters.
func bar(n, total int) int {
	if total == 0 {
		return 0
	}
	return n * 40 / total
}

var correctnessColors = map[game.Correctness]string{
	game.Correct:   color.Green,
	game.Misplaced: color.Yellow,
	game.Incorrect: color.Gray,
}

// colorize renders each letter of a guess in its feedback colour.
func colorize(g game.Guess) string {
	var b strings.Builder
	for i, c := range g.Pattern {
		b.WriteString(color.Ize(correctnessColors[c], string(g.Word[i])))
	}
	return b.String()
}
