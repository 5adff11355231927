package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Build dictionaries and move them in and out of a store",
	}

	cmd.AddCommand(newDictBuildCmd())
	cmd.AddCommand(newDictImportCmd())
	cmd.AddCommand(newDictExportCmd())
	cmd.AddCommand(newDictListCmd())

	return cmd
}

func newDictBuildCmd() *cobra.Command {
	var (
		grouped bool
		stem    bool
		lexicon string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "build <raw-list>",
		Short: "Turn a raw \"word count\" frequency list into a dictionary",
		Long: `Reads a frequency list of words of any length and writes the five-letter
words sorted by descending count.

With --grouped, blank lines separate groups of related forms; each group
is summed under its last word. With --stem, inflections are credited to
the five-letter word sharing their English stem.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var raw []words.RawEntry
			if grouped {
				raw, err = words.Group(f)
			} else {
				raw, err = words.ParseRaw(f)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			if stem {
				var lex []string
				if lexicon != "" {
					if lex, err = readLexicon(lexicon); err != nil {
						return err
					}
				}
				raw = words.MergeStems(raw, lex)
			}

			entries := words.Filter(raw)
			if len(entries) == 0 {
				return words.ErrEmptyDictionary
			}
			log.Info().Int("raw", len(raw)).Int("kept", len(entries)).Msg("dictionary built")

			if out != "" {
				return writeEntriesFile(out, entries)
			}
			return words.WriteEntries(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().BoolVar(&grouped, "grouped", false, "Input is blank-line separated groups")
	cmd.Flags().BoolVar(&stem, "stem", false, "Merge inflections onto five-letter stems")
	cmd.Flags().StringVar(&lexicon, "lexicon", "", "Word list deciding which word owns a stem (default: the five-letter input words)")
	cmd.Flags().StringVar(&out, "out", "", "Write to file instead of stdout")

	return cmd
}

func newDictImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <dictionary-file>",
		Short: "Load a dictionary file into the store under --dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := words.LoadDictionary(args[0])
			if err != nil {
				return err
			}
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Save(cmd.Context(), cfg.Dictionary, dict.Entries()); err != nil {
				return err
			}
			NewOutput(cfg.Output, cmd.OutOrStdout()).
				PrintMessage(fmt.Sprintf("Imported %d words into %s/%s", dict.Len(), cfg.Store, cfg.Dictionary))
			return nil
		},
	}
}

func newDictExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the stored dictionary as \"word count\" lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.Load(cmd.Context(), cfg.Dictionary)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(entries)
				return nil
			}
			return writeEntriesFile(args[0], entries)
		},
	}
}

func newDictListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the dictionaries in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.Names(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(names)
			return nil
		},
	}
}

// writeEntriesFile writes entries to path, returning the Close error too.
func writeEntriesFile(path string, entries []words.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := words.WriteEntries(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readLexicon(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexiconWords(f)
}

func lexiconWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if fields := strings.Fields(sc.Text()); len(fields) > 0 && !strings.HasPrefix(fields[0], "#") {
			out = append(out, strings.ToLower(fields[0]))
		}
	}
	return out, sc.Err()
}
