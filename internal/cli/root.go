package cli

import (
	"os"

	"github.com/TwiN/go-color"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

var cfg *config.Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "wordle-solver",
		Short: "Entropy-guided Wordle solver",
		Long: `wordle-solver picks Wordle guesses that are expected to reveal the most
about the answer, plays simulated games to measure how well it does,
and can assist with a real game or serve suggestions over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			cfg = c
			cfg.SetupLogging()
			if noColor || cfg.Output == "json" {
				color.Toggle(false)
			}
			return nil
		},
		SilenceUsage: true,
	}

	sc := solver.DefaultConfig()

	// Global flags (env: WORDLE_<FLAG>, dashes become underscores)
	pf := rootCmd.PersistentFlags()
	pf.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	pf.String("log-format", "console", "Log format: console, json")
	pf.StringP("output", "o", "text", "Output format: text, json")
	pf.BoolVar(&noColor, "no-color", false, "Disable coloured patterns")

	pf.String("strategy", string(sc.Strategy), "Guesser: entropy, naive, cached")
	pf.String("weighting", string(sc.Weighting), "Score weighting: frequency, raw")
	pf.Bool("exhaustive", false, "Score every candidate and every pattern")
	pf.String("opener", sc.Opener, "First guess; empty scores the first guess too")
	pf.Int("attempts", game.DefaultMaxAttempts, "Maximum attempts per game")

	pf.String("dictionary-file", "", "Dictionary of \"word count\" lines (default: embedded)")
	pf.String("answers-file", "", "Answer list, one word per line (default: embedded)")
	pf.String("store", "", "Load the dictionary from a store: memory, sqlite, redis")
	pf.String("dictionary", store.DefaultName, "Dictionary name inside the store")
	pf.String("sqlite-path", "./data/solver.db", "SQLite database file")
	pf.String("redis-url", "redis://localhost:6379", "Redis URL")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newAssistCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newDictCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
