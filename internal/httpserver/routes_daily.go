// apps/solver/internal/httpserver/routes_daily.go
//
// HTTP route for the answer of the day.
//   - GET /daily?date=YYYY-MM-DD → the day's answer and the solver's full trace for it.
//
// The date defaults to today (UTC). Word selection is deterministic on date + salt,
// see internal/daily.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// mountDaily registers the /daily route.
func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily", s.handleDaily)
}

// dailyRes is returned by /daily.
type dailyRes struct {
	daily.Puzzle
	Solved   bool         `json:"solved"`
	Attempts int          `json:"attempts"`
	Guesses  []game.Guess `json:"guesses"`
}

// handleDaily plays the configured solver against the day's answer.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		parsed, err := daily.ParseDate(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date", q)
			return
		}
		date = parsed
	}

	p, err := daily.For(date, s.opts.DailySalt, s.opts.Corpus.Answers)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no_answers", err.Error())
		return
	}

	g, err := solver.New(s.opts.Corpus.Dictionary, s.opts.Solver)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "solver", err.Error())
		return
	}
	gm := game.New(p.Answer, s.opts.MaxAttempts)
	attempts, ok := gm.Run(g)
	log.Debug().Str("date", p.Date).Int("attempts", attempts).Bool("solved", ok).Msg("daily played")

	writeJSON(w, http.StatusOK, dailyRes{
		Puzzle:   p,
		Solved:   ok,
		Attempts: attempts,
		Guesses:  gm.History,
	})
}
