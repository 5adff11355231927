package bench

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Report aggregates the results of a benchmark run.
type Report struct {
	Games         int           `json:"games"`
	Solved        int           `json:"solved"`
	Failed        int           `json:"failed"`
	TotalAttempts int           `json:"total_attempts"`
	MaxAttempts   int           `json:"max_attempts"`
	Distribution  []int         `json:"distribution"` // Distribution[k] = games solved in k attempts
	Elapsed       time.Duration `json:"elapsed"`
	Results       []Result      `json:"results,omitempty"`
}

func newReport(results []Result, maxAttempts int, elapsed time.Duration) *Report {
	r := &Report{
		Games:        len(results),
		MaxAttempts:  maxAttempts,
		Distribution: make([]int, maxAttempts+1),
		Elapsed:      elapsed,
		Results:      results,
	}
	for _, res := range results {
		if !res.Solved {
			r.Failed++
			continue
		}
		r.Solved++
		r.TotalAttempts += res.Attempts
		r.Distribution[res.Attempts]++
	}
	return r
}

// Average is the mean attempt count over solved games.
func (r *Report) Average() float64 {
	if r.Solved == 0 {
		return 0
	}
	return float64(r.TotalAttempts) / float64(r.Solved)
}

// AverageAll spreads the attempts of solved games over every game played,
// so failures pull it down rather than up.
func (r *Report) AverageAll() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalAttempts) / float64(r.Games)
}

// Worst returns up to n results, unsolved games first, then by most attempts.
// Ties keep answer order.
func (r *Report) Worst(n int) []Result {
	out := slices.Clone(r.Results)
	slices.SortStableFunc(out, func(a, b Result) int {
		if a.Solved != b.Solved {
			if !a.Solved {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.Attempts, a.Attempts)
	})
	return out[:min(n, len(out))]
}

type metric[T constraints.Ordered] struct {
	name  string
	value func(*Report) T
}

func (m metric[T]) line(r *Report) string {
	return fmt.Sprintf("%s: %v", m.name, m.value(r))
}

type summaryLine interface {
	line(r *Report) string
}

var summary = []summaryLine{
	metric[int]{"games", func(r *Report) int { return r.Games }},
	metric[string]{"average score", func(r *Report) string { return fmt.Sprintf("%.2f", r.AverageAll()) }},
	metric[string]{"average when solved", func(r *Report) string { return fmt.Sprintf("%.2f", r.Average()) }},
	metric[int]{"failed games", func(r *Report) int { return r.Failed }},
	metric[int]{"best", func(r *Report) int {
		for k, n := range r.Distribution {
			if n > 0 {
				return k
			}
		}
		return 0
	}},
	metric[int]{"worst", func(r *Report) int {
		for k := len(r.Distribution) - 1; k >= 0; k-- {
			if r.Distribution[k] > 0 {
				return k
			}
		}
		return 0
	}},
	metric[string]{"elapsed", func(r *Report) string { return r.Elapsed.Round(time.Millisecond).String() }},
}

// Summary renders the headline statistics, one per line.
func (r *Report) Summary() string {
	var b strings.Builder
	for _, m := range summary {
		b.WriteString(m.line(r))
		b.WriteByte('\n')
	}
	return b.String()
}
