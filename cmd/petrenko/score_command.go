package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petrenko/internal/align"
	"petrenko/internal/lines"
	"petrenko/internal/logging"
	"petrenko/internal/report"
	"petrenko/internal/scoring"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var annotated bool
	var format string

	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "List the Petrenko index of every line in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, closeLog, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()
			logger = logging.NewComponentLogger(logger, "score").With(logging.String(logging.FieldFile, args[0]))

			raw, err := lines.ReadFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("score: %w", err)
			}
			store := lines.NewStore(raw, raw)

			if strings.TrimSpace(format) == "" {
				format = cfg.Output.Format
			}

			var rows []report.ScoreRow
			if annotated {
				opts := align.OptionsFromConfig(cfg).Scoring
				failed := 0
				for _, line := range store.Annotated {
					scored, err := scoring.ScoreAnnotated(line, opts)
					if err != nil {
						failed++
					}
					rows = append(rows, report.AnnotatedRow(scored, err))
				}
				logger.Debug("annotated lines scored", logging.Int("lines", len(rows)), logging.Int("malformed", failed))
			} else {
				scored := scoring.ScoreLines(store.Sources)
				for _, line := range scored {
					// k letters always score k^3/2 regardless of their position.
					if want := scoring.ArithmeticIndex(int(line.Length)); line.Index != want {
						logging.Warn(logger, "index_self_check", "index differs from closed form",
							logging.Int(logging.FieldLine, line.Number),
							logging.Float64("index", line.Index),
							logging.Float64("expected", want),
						)
					}
				}
				rows = report.SourceRows(scored)
				logger.Debug("source lines scored", logging.Int("lines", len(rows)))
			}

			return report.WriteScores(cmd.OutOrStdout(), rows, annotated, format)
		},
	}

	cmd.Flags().BoolVarP(&annotated, "annotated", "a", false, "Treat the file as annotated lines with commentary")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: plain, table, or json")
	return cmd
}
