package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"petrenko/internal/align"
	"petrenko/internal/report"
)

type alignFlags struct {
	format                  string
	color                   string
	tolerance               float64
	wordLimit               int
	finalizeEmptyCommentary bool
	strict                  bool
	noTiming                bool
}

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var flags alignFlags

	cmd := &cobra.Command{
		Use:   "align SOURCE ANNOTATED",
		Short: "Pair source lines with annotated lines of equal index",
		Long: "Reads SOURCE (one source-language line per row) and ANNOTATED (target-language\n" +
			"lines with a commentary after the separator), scores every line and prints\n" +
			"each source line with the annotated lines whose index plus commentary index\n" +
			"equals its own.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			local := *cfg
			applyAlignFlags(cmd, &local, flags)
			if err := local.Validate(); err != nil {
				return err
			}

			logger, closeLog, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			runner := align.NewRunner(align.OptionsFromConfig(&local), logger)
			res, err := runner.Run(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("align: %w", err)
			}

			out := cmd.OutOrStdout()
			return report.Write(out, res, report.Options{
				Format:         local.Output.Format,
				ShowTiming:     local.Output.ShowTiming,
				Colorize:       report.ShouldColorize(out, local.Output.Color),
				SourceLanguage: local.Languages.Source,
				TargetLanguage: local.Languages.Target,
			})
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: plain, table, or json")
	cmd.Flags().StringVar(&flags.color, "color", "", "Colour output: auto, always, or never")
	cmd.Flags().Float64Var(&flags.tolerance, "tolerance", 0, "Largest index difference treated as a match (0 = exact)")
	cmd.Flags().IntVar(&flags.wordLimit, "word-limit", 0, "Number of commentary words to score")
	cmd.Flags().BoolVar(&flags.finalizeEmptyCommentary, "finalize-empty-commentary", false, "Scale the primary index by its length even when the commentary is blank")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail on the first malformed annotated line")
	cmd.Flags().BoolVar(&flags.noTiming, "no-timing", false, "Omit the execution time footer")
	return cmd
}
