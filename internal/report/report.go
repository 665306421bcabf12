package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"petrenko/internal/align"
	"petrenko/internal/language"
)

// NoPairsMessage is printed when a run produced no pairings.
const NoPairsMessage = "Pairs were not found."

const matchPrefix = "------------->"

// Options controls rendering.
type Options struct {
	Format         string
	ShowTiming     bool
	Colorize       bool
	SourceLanguage string
	TargetLanguage string
}

// Write renders res to w in the requested format.
func Write(w io.Writer, res *align.Result, opts Options) error {
	if res == nil {
		res = &align.Result{}
	}
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "plain":
		return writePlain(w, res, opts)
	case "table":
		return writeTable(w, res, opts)
	case "json":
		return writeJSON(w, newJSONReport(res, opts))
	default:
		return fmt.Errorf("report format: unsupported value %q", opts.Format)
	}
}

// FormatNumber renders an index the way reports print it.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writePlain(w io.Writer, res *align.Result, opts Options) error {
	var b strings.Builder
	if len(res.Pairs) == 0 {
		b.WriteString("\n")
		b.WriteString(paint(NoPairsMessage, ansiYellow, opts.Colorize))
		b.WriteString("\n\n")
	}
	for _, pair := range res.Pairs {
		fmt.Fprintf(&b, "%s (%s)\n", pair.Source.Text, paint(FormatNumber(pair.Source.Index), ansiBlue, opts.Colorize))
		for _, m := range pair.Matches {
			b.WriteString("\n")
			fmt.Fprintf(&b, "%s%s (%s, %s)\n",
				paint(matchPrefix, ansiGreen, opts.Colorize),
				m.Text,
				FormatNumber(m.Index),
				FormatNumber(m.CommentaryIndex),
			)
			b.WriteString("\n")
		}
	}
	if opts.ShowTiming {
		fmt.Fprintf(&b, "Execution time (in ms): %d\n", res.Stats.Elapsed.Milliseconds())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type jsonLanguage struct {
	Code string `json:"code"`
	ISO3 string `json:"iso639_2"`
	Name string `json:"name"`
}

type jsonSkipped struct {
	Line       int    `json:"line"`
	Reason     string `json:"reason"`
	Separators int    `json:"separators"`
}

type jsonReport struct {
	RunID     string                  `json:"run_id"`
	Languages map[string]jsonLanguage `json:"languages"`
	Pairs     any                     `json:"pairs"`
	Skipped   []jsonSkipped           `json:"skipped"`
	Stats     align.Stats             `json:"stats"`
	Message   string                  `json:"message,omitempty"`
}

func newJSONLanguage(code string) jsonLanguage {
	return jsonLanguage{Code: language.Code(code), ISO3: language.ToISO3(code), Name: language.DisplayName(code)}
}

func newJSONReport(res *align.Result, opts Options) jsonReport {
	out := jsonReport{
		RunID: res.RunID,
		Languages: map[string]jsonLanguage{
			"source": newJSONLanguage(opts.SourceLanguage),
			"target": newJSONLanguage(opts.TargetLanguage),
		},
		Pairs:   res.Pairs,
		Skipped: make([]jsonSkipped, 0, len(res.Skipped)),
		Stats:   res.Stats,
	}
	if len(res.Pairs) == 0 {
		out.Pairs = []struct{}{}
		out.Message = NoPairsMessage
	}
	for _, fe := range res.Skipped {
		out.Skipped = append(out.Skipped, jsonSkipped{Line: fe.Line, Reason: fe.Reason, Separators: fe.Separators})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
