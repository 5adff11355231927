package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

type testServer struct {
	handler http.Handler
	corpus  *words.Corpus
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithAttempts(t, game.DefaultMaxAttempts)
}

func newTestServerWithAttempts(t *testing.T, maxAttempts int) *testServer {
	t.Helper()
	c, err := words.LoadCorpus("", "")
	require.NoError(t, err)

	srv, err := New(Options{
		Corpus:       c,
		Solver:       solver.DefaultConfig(),
		MaxAttempts:  maxAttempts,
		DailySalt:    daily.DefaultSalt,
		ClientOrigin: "http://localhost:5173",
	})
	require.NoError(t, err)
	return &testServer{handler: srv.Router(), corpus: c}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDebugWords(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.request(http.MethodGet, "/debug/words", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]int](t, rec)
	assert.Equal(t, ts.corpus.Dictionary.Len(), got["dictionary"])
	assert.Equal(t, len(ts.corpus.Answers), got["answers"])
}

func TestScore(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.request(http.MethodPost, "/score", map[string]string{"guess": "aaabb", "answer": "azzaz"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pattern":"CMIII","solved":false}`, rec.Body.String())

	rec = ts.request(http.MethodPost, "/score", map[string]string{"guess": "toolong", "answer": "azzaz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreRejectsMissingWords(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []any{
		map[string]string{},
		map[string]string{"guess": "crane"},
		map[string]string{"answer": "crane"},
	} {
		rec := ts.request(http.MethodPost, "/score", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decode[errorRes](t, rec).Error)
	}
}

func TestSuggestOpener(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.request(http.MethodPost, "/suggest", map[string]any{"history": []any{}})
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[suggestRes](t, rec)
	assert.Equal(t, game.MustWord("tares"), res.Guess)
	assert.Equal(t, ts.corpus.Dictionary.Len(), res.Remaining)
	assert.Len(t, res.Candidates, 10)
}

func TestSuggestReplaysHistory(t *testing.T) {
	ts := newTestServer(t)
	answer := game.MustWord("water")
	tares := game.MustWord("tares")
	pattern := game.Compute(tares, answer)

	rec := ts.request(http.MethodPost, "/suggest", map[string]any{
		"history": []map[string]string{{"word": "tares", "pattern": pattern.String()}},
		"limit":   1000,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[suggestRes](t, rec)

	want := solver.Suggest(solver.MustNew(ts.corpus.Dictionary, solver.DefaultConfig()),
		[]game.Guess{{Word: tares, Pattern: pattern}})
	assert.Equal(t, want, res.Guess)
	assert.Equal(t, res.Remaining, len(res.Candidates))
	for _, c := range res.Candidates {
		assert.True(t, game.Allows(pattern, tares, c.Word))
	}
}

func TestSuggestRejectsBadHistories(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodPost, "/suggest", map[string]any{
		"history": []map[string]string{{"word": "zzzzz", "pattern": "CCCCI"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "no_candidates", decode[errorRes](t, rec).Error)

	rec = ts.request(http.MethodPost, "/suggest", map[string]any{
		"history": []map[string]string{{"word": "tares", "pattern": "CCCCC"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.request(http.MethodPost, "/suggest", map[string]any{
		"history": []map[string]string{{"word": "tares", "pattern": "CQCCC"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestRejectsHistoryWithoutWord(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodPost, "/suggest", map[string]any{
		"history": []map[string]string{
			{"word": "tares", "pattern": "IIIII"},
			{"pattern": "IIIII"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	res := decode[errorRes](t, rec)
	assert.Equal(t, "bad_request", res.Error)
	assert.Equal(t, "history[1]: word is required", res.Detail)
}

func TestZeroAttemptLimit(t *testing.T) {
	ts := newTestServerWithAttempts(t, 0)

	rec := ts.request(http.MethodPost, "/suggest", map[string]any{"history": []any{}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "attempts_exhausted", decode[errorRes](t, rec).Error)

	rec = ts.request(http.MethodGet, "/daily?date=2026-10-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dailyRes](t, rec)
	assert.False(t, res.Solved)
	assert.Empty(t, res.Guesses)
}

func TestNewRejectsNegativeAttemptLimit(t *testing.T) {
	c, err := words.LoadCorpus("", "")
	require.NoError(t, err)
	_, err = New(Options{Corpus: c, Solver: solver.DefaultConfig(), MaxAttempts: -1})
	assert.Error(t, err)
}

func TestDaily(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.request(http.MethodGet, "/daily?date=2026-10-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[dailyRes](t, rec)
	assert.Equal(t, "2026-10-15", res.Date)
	assert.Equal(t, ts.corpus.Answers[res.Index], res.Answer)
	if res.Solved {
		assert.Equal(t, len(res.Guesses), res.Attempts)
		assert.Equal(t, res.Answer, res.Guesses[len(res.Guesses)-1].Word)
	}

	again := decode[dailyRes](t, ts.request(http.MethodGet, "/daily?date=2026-10-15", nil))
	assert.Equal(t, res, again)

	rec = ts.request(http.MethodGet, "/daily?date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.request(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[errorRes](t, rec).Error)
}
