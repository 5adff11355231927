package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scores and suggestions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			corpus, err := loadCorpus(ctx)
			if err != nil {
				return err
			}

			srv, err := httpserver.New(httpserver.Options{
				Corpus:       corpus,
				Solver:       cfg.Solver(),
				MaxAttempts:  cfg.MaxAttempts,
				DailySalt:    cfg.DailySalt,
				ClientOrigin: cfg.ClientOrigin,
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("addr", cfg.Addr).
				Str("strategy", cfg.Strategy).
				Int("dictionary", corpus.Dictionary.Len()).
				Msg("starting solver server")
			return srv.Start(ctx, cfg.Addr)
		},
	}

	cmd.Flags().String("addr", ":5175", "Listen address (env PORT also sets it)")
	cmd.Flags().String("client-origin", "http://localhost:5173", "Allowed CORS origin; empty disables CORS")
	cmd.Flags().String("daily-salt", "", "Secret mixed into the daily word choice")
	return cmd
}
