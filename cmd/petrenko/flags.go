package main

import (
	"strings"

	"github.com/spf13/cobra"

	"petrenko/internal/config"
)

// applyAlignFlags copies explicitly set flags over the loaded configuration.
func applyAlignFlags(cmd *cobra.Command, cfg *config.Config, flags alignFlags) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if changed("color") {
		cfg.Output.Color = strings.ToLower(strings.TrimSpace(flags.color))
	}
	if changed("tolerance") {
		cfg.Align.Tolerance = flags.tolerance
	}
	if changed("word-limit") {
		cfg.Align.CommentaryWordLimit = flags.wordLimit
	}
	if changed("finalize-empty-commentary") {
		cfg.Align.FinalizeEmptyCommentary = flags.finalizeEmptyCommentary
	}
	if changed("strict") {
		cfg.Align.Strict = flags.strict
	}
	if changed("no-timing") {
		cfg.Output.ShowTiming = !flags.noTiming
	}
}
