// apps/solver/internal/words/words.go
//
// Process-wide word corpora for the solver.
//
// Responsibilities:
//   - Load the weighted dictionary and the answer list from files or fall back to embedded defaults.
//   - Build them once and share them read-only (Baseline, Answers).
//
// Initialization behavior (Init):
//   1. WORDS_DICTIONARY_FILE set: load "word count" lines from it.
//      Otherwise use the embedded assets/dictionary.txt.
//   2. WORDS_ANSWERS_FILE set: load answers from it.
//      Otherwise, if a dictionary file was given, every dictionary word is an answer;
//      if not, use the embedded assets/answers.txt.
//
// Environment variables:
//   WORDS_DICTIONARY_FILE=/path/to/dictionary.txt
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//
// Constraints:
//   • Answers outside the dictionary are dropped with a warning (the solver could never guess them).
//   • Initialization is run once (sync.OnceValues).

package words

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Corpus is a dictionary together with the answers played against it.
type Corpus struct {
	Dictionary *Dictionary
	Answers    []game.Word
}

var loadOnce = sync.OnceValues(func() (*Corpus, error) {
	return LoadCorpus(os.Getenv("WORDS_DICTIONARY_FILE"), os.Getenv("WORDS_ANSWERS_FILE"))
})

// Init loads the process-wide corpus exactly once.
func Init() error {
	_, err := loadOnce()
	return err
}

// Baseline returns the shared dictionary. It panics if Init failed.
func Baseline() *Dictionary {
	return mustCorpus().Dictionary
}

// Answers returns the shared answer list. Callers must not modify it.
func Answers() []game.Word {
	return mustCorpus().Answers
}

// Default returns the process-wide corpus, loading it on first use.
func Default() (*Corpus, error) {
	return loadOnce()
}

func mustCorpus() *Corpus {
	c, err := loadOnce()
	if err != nil {
		panic(fmt.Sprintf("words: corpus not loaded: %v", err))
	}
	return c
}

// LoadCorpus builds a corpus from the given files; empty paths fall back
// as described in the package comment.
func LoadCorpus(dictionaryPath, answersPath string) (*Corpus, error) {
	entries, err := readEntries(dictionaryPath)
	if err != nil {
		return nil, err
	}
	dict, err := New(entries)
	if err != nil {
		return nil, err
	}

	var answers []game.Word
	switch {
	case answersPath != "":
		answers, err = LoadAnswers(answersPath)
	case dictionaryPath != "":
		answers = dict.Words()
	default:
		answers, err = LoadAnswers("")
	}
	if err != nil {
		return nil, err
	}

	return NewCorpus(dict, answers), nil
}

// NewCorpus pairs dict with answers, dropping answers dict does not contain.
func NewCorpus(dict *Dictionary, answers []game.Word) *Corpus {
	kept := make([]game.Word, 0, len(answers))
	for _, w := range answers {
		if !dict.Contains(w) {
			log.Warn().Stringer("word", w).Msg("answer not in dictionary, skipping")
			continue
		}
		kept = append(kept, w)
	}

	log.Debug().
		Int("dictionary", dict.Len()).
		Int("answers", len(kept)).
		Uint64("total", dict.Total()).
		Msg("corpus loaded")
	return &Corpus{Dictionary: dict, Answers: kept}
}

// LoadDictionary reads a "word count" file, or the embedded default for "".
func LoadDictionary(path string) (*Dictionary, error) {
	entries, err := readEntries(path)
	if err != nil {
		return nil, err
	}
	return New(entries)
}

func readEntries(path string) ([]Entry, error) {
	rc, err := open(path, assets.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer rc.Close()
	entries, err := ParseEntries(rc)
	if err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", displayName(path), err)
	}
	return entries, nil
}

// LoadAnswers reads an answer list, or the embedded default for "".
func LoadAnswers(path string) ([]game.Word, error) {
	rc, err := open(path, assets.Answers)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer rc.Close()
	ws, err := ParseWords(rc)
	if err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", displayName(path), err)
	}
	return ws, nil
}

func open(path string, embedded func() (io.ReadCloser, error)) (io.ReadCloser, error) {
	if path == "" {
		return embedded()
	}
	return os.Open(path)
}

func displayName(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
