// apps/solver/internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints: POST /score, POST /suggest.
//   - Daily endpoint: GET /daily (mounted from routes_daily.go).
//
// Notes:
//   - The service is stateless. /suggest builds a fresh guesser per request and
//     replays the supplied history; nothing about a game is kept between requests.
//   - Errors are JSON objects of the form {"error": "...", "detail": "..."}.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Options configures a Server.
type Options struct {
	Corpus       *words.Corpus
	Solver       solver.Config
	MaxAttempts  int // 0 exhausts every game before its first guess
	DailySalt    string
	ClientOrigin string // CORS origin; empty disables CORS headers
}

// Server bundles the router and the shared read-only corpus.
type Server struct {
	r    *chi.Mux
	opts Options
	http *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
// It fails when the solver configuration does not fit the corpus or the
// attempt limit is negative.
func New(opts Options) (*Server, error) {
	if opts.MaxAttempts < 0 {
		return nil, fmt.Errorf("httpserver: negative attempt limit %d", opts.MaxAttempts)
	}
	if _, err := solver.New(opts.Corpus.Dictionary, opts.Solver); err != nil {
		return nil, err
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-solver",
			"endpoints": []string{"/health", "/debug/words", "POST /score", "POST /suggest", "/daily"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"answers":    len(s.opts.Corpus.Answers),
			"dictionary": s.opts.Corpus.Dictionary.Len(),
			"total":      s.opts.Corpus.Dictionary.Total(),
		})
	})

	s.r.Post("/score", s.handleScore)
	s.r.Post("/suggest", s.handleSuggest)
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s, nil
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- s.http.ListenAndServe() }()
	log.Info().Str("addr", addr).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single origin. An empty origin leaves responses untouched.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if origin == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs method, path, status and duration of every request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, errorRes{Error: code, Detail: detail})
}

// ------------------------------ SOLVER -------------------------------------

// scoreReq/Res payloads for POST /score.
type scoreReq struct {
	Guess  game.Word `json:"guess"`
	Answer game.Word `json:"answer"`
}
type scoreRes struct {
	Pattern game.Pattern `json:"pattern"`
	Solved  bool         `json:"solved"`
}

// handleScore returns the feedback pattern guess would receive against answer.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if req.Guess.IsZero() || req.Answer.IsZero() {
		writeError(w, http.StatusBadRequest, "bad_request", "guess and answer are required")
		return
	}
	p := game.Compute(req.Guess, req.Answer)
	writeJSON(w, http.StatusOK, scoreRes{Pattern: p, Solved: p.Solved()})
}

// suggestReq/Res payloads for POST /suggest.
type suggestReq struct {
	History []game.Guess `json:"history"`
	// Limit caps the candidates echoed back (default 10).
	Limit int `json:"limit"`
}
type suggestRes struct {
	Guess      game.Word     `json:"guess"`
	Remaining  int           `json:"remaining"`
	Candidates []words.Entry `json:"candidates"`
}

// handleSuggest replays history on a fresh guesser and returns its next word.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	for i, h := range req.History {
		if h.Word.IsZero() {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("history[%d]: word is required", i))
			return
		}
	}
	if len(req.History) >= s.opts.MaxAttempts {
		writeError(w, http.StatusUnprocessableEntity, "attempts_exhausted", "")
		return
	}
	if n := len(req.History); n > 0 && req.History[n-1].Pattern.Solved() {
		writeError(w, http.StatusUnprocessableEntity, "already_solved", req.History[n-1].Word.String())
		return
	}

	g, err := solver.New(s.opts.Corpus.Dictionary, s.opts.Solver)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "solver", err.Error())
		return
	}
	g.Replay(req.History)
	if g.Remaining() == 0 {
		writeError(w, http.StatusUnprocessableEntity, "no_candidates", "history is inconsistent with the dictionary")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	next := g.Guess(req.History)
	cands := g.Candidates()
	writeJSON(w, http.StatusOK, suggestRes{
		Guess:      next,
		Remaining:  len(cands),
		Candidates: cands[:min(limit, len(cands))],
	})
}
