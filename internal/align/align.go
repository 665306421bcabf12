package align

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"petrenko/internal/config"
	"petrenko/internal/lines"
	"petrenko/internal/logging"
	"petrenko/internal/matching"
	"petrenko/internal/scoring"
)

// Options configures a Runner.
type Options struct {
	Scoring   scoring.Options
	Tolerance float64
	Strict    bool
}

// OptionsFromConfig maps the [align] section onto runner options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{Scoring: scoring.DefaultOptions()}
	}
	return Options{
		Scoring: scoring.Options{
			Separator:               cfg.SeparatorRune(),
			WordLimit:               cfg.Align.CommentaryWordLimit,
			FinalizeEmptyCommentary: cfg.Align.FinalizeEmptyCommentary,
		},
		Tolerance: cfg.Align.Tolerance,
		Strict:    cfg.Align.Strict,
	}
}

// Stats summarizes one run.
type Stats struct {
	SourceLines      int           `json:"source_lines"`
	AnnotatedLines   int           `json:"annotated_lines"`
	Skipped          int           `json:"skipped"`
	Pairs            int           `json:"pairs"`
	MatchedAnnotated int           `json:"matched_annotated"`
	Elapsed          time.Duration `json:"elapsed_ns"`
}

// Result is the outcome of a run.
type Result struct {
	RunID   string                 `json:"run_id"`
	Pairs   []matching.Pairing     `json:"pairs"`
	Skipped []*scoring.FormatError `json:"-"`
	Stats   Stats                  `json:"stats"`
}

// Runner executes alignment runs.
type Runner struct {
	opts   Options
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewRunner builds a Runner. A nil logger discards output.
func NewRunner(opts Options, logger *slog.Logger) *Runner {
	return &Runner{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "align"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Run reads both files and aligns them.
func (r *Runner) Run(ctx context.Context, sourcePath, annotatedPath string) (*Result, error) {
	start := r.now()
	sources, err := lines.ReadFile(ctx, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("read source lines: %w", err)
	}
	annotated, err := lines.ReadFile(ctx, annotatedPath)
	if err != nil {
		return nil, fmt.Errorf("read annotated lines: %w", err)
	}
	r.logger.Debug("input loaded",
		logging.String("source_file", sourcePath),
		logging.Int("source_lines", len(sources)),
		logging.String("annotated_file", annotatedPath),
		logging.Int("annotated_lines", len(annotated)),
	)

	res, err := r.Align(ctx, lines.NewStore(sources, annotated))
	if err != nil {
		return nil, err
	}
	res.Stats.Elapsed = r.now().Sub(start)
	return res, nil
}

// Align scores every line in store and matches the scored sides.
func (r *Runner) Align(ctx context.Context, store *lines.Store) (*Result, error) {
	start := r.now()
	if store == nil {
		store = &lines.Store{}
	}
	res := &Result{RunID: r.newID()}
	ctx = logging.WithRunID(ctx, res.RunID)
	logger := logging.WithContext(ctx, r.logger)
	if store.Empty() {
		logging.Warn(logger, "empty_input", "nothing to align",
			logging.Int("source_lines", len(store.Sources)),
			logging.Int("annotated_lines", len(store.Annotated)),
			logging.String(logging.FieldErrorHint, "both files need at least one non-empty line"),
			logging.String(logging.FieldImpact, "no pairs can be produced"),
		)
	}

	sources := scoring.ScoreLines(store.Sources)
	annotated, skipped, err := r.scoreAnnotated(ctx, logger, store.Annotated)
	if err != nil {
		return nil, err
	}

	pred := matching.PredicateFor(r.opts.Tolerance)
	res.Pairs = matching.Match(sources, annotated, pred)
	res.Skipped = skipped
	res.Stats = Stats{
		SourceLines:      len(store.Sources),
		AnnotatedLines:   len(store.Annotated),
		Skipped:          len(skipped),
		Pairs:            len(res.Pairs),
		MatchedAnnotated: matching.MatchedAnnotated(res.Pairs),
		Elapsed:          r.now().Sub(start),
	}

	logger.Info("alignment complete",
		logging.Int("source_lines", res.Stats.SourceLines),
		logging.Int("annotated_lines", res.Stats.AnnotatedLines),
		logging.Int("skipped", res.Stats.Skipped),
		logging.Int("pairs", res.Stats.Pairs),
		logging.Float64("tolerance", r.opts.Tolerance),
	)
	return res, nil
}

func (r *Runner) scoreAnnotated(ctx context.Context, logger *slog.Logger, in []lines.AnnotatedLine) ([]lines.AnnotatedLine, []*scoring.FormatError, error) {
	out := make([]lines.AnnotatedLine, 0, len(in))
	var skipped []*scoring.FormatError
	for _, line := range in {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		scored, err := scoring.ScoreAnnotated(line, r.opts.Scoring)
		if err == nil {
			out = append(out, scored)
			continue
		}
		var fe *scoring.FormatError
		if !errors.As(err, &fe) {
			return nil, nil, err
		}
		if r.opts.Strict {
			logging.Error(logger, "annotated_line_malformed", "annotated line rejected",
				logging.Int(logging.FieldLine, fe.Line),
				logging.String("reason", fe.Reason),
				logging.String(logging.FieldErrorHint, "fix the line or disable align.strict"),
			)
			return nil, nil, fmt.Errorf("score annotated lines: %w", fe)
		}
		logging.Warn(logger, "annotated_line_malformed", "annotated line skipped",
			logging.Int(logging.FieldLine, fe.Line),
			logging.String("reason", fe.Reason),
			logging.Int("separators", fe.Separators),
			logging.String(logging.FieldErrorHint, "each annotated line needs exactly one commentary separator"),
			logging.String(logging.FieldImpact, "line excluded from matching"),
		)
		skipped = append(skipped, fe)
	}
	return out, skipped, nil
}
