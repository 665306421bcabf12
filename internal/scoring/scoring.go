package scoring

import (
	"errors"
	"strings"
	"unicode"

	"petrenko/internal/lines"
)

const (
	// DefaultSeparator divides an annotated line into text and commentary.
	DefaultSeparator = '|'
	// DefaultWordLimit is the number of commentary words that are scored.
	DefaultWordLimit = 5

	initialWeight = 0.5
)

// Options tunes annotated-line scoring.
type Options struct {
	Separator rune
	WordLimit int
	// FinalizeEmptyCommentary multiplies the primary sum by its letter count
	// even when the commentary is blank. When false a blank commentary leaves
	// the primary index as the raw weighted sum.
	FinalizeEmptyCommentary bool
}

// DefaultOptions returns the scoring options used when none are configured.
func DefaultOptions() Options {
	return Options{Separator: DefaultSeparator, WordLimit: DefaultWordLimit}
}

func (o Options) normalized() Options {
	if o.Separator == 0 {
		o.Separator = DefaultSeparator
	}
	if o.WordLimit <= 0 {
		o.WordLimit = DefaultWordLimit
	}
	return o
}

// accumulator carries the running weight across one or more strings.
type accumulator struct {
	weight float64
	sum    float64
	count  float64
}

func newAccumulator() accumulator {
	return accumulator{weight: initialWeight}
}

func (a *accumulator) add(text string) {
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		a.sum += a.weight
		a.weight++
		a.count++
	}
}

func (a accumulator) index() float64 {
	return a.sum * a.count
}

// Weigh returns the weighted letter sum of text and its letter count.
func Weigh(text string) (sum, count float64) {
	acc := newAccumulator()
	acc.add(text)
	return acc.sum, acc.count
}

// Index returns the Petrenko index of text.
func Index(text string) float64 {
	sum, count := Weigh(text)
	return sum * count
}

// ArithmeticIndex is the index of any text with k letters:
// (0.5 + 1.5 + ... + (k-0.5)) * k = k^3 / 2.
func ArithmeticIndex(k int) float64 {
	n := float64(k)
	return n * n * n / 2
}

// ScoreLine returns line with Index and Length computed from its text.
func ScoreLine(line lines.TextLine) lines.TextLine {
	sum, count := Weigh(line.Text)
	line.Index = sum * count
	line.Length = count
	return line
}

// ScoreLines scores every line, preserving order.
func ScoreLines(in []lines.TextLine) []lines.TextLine {
	out := make([]lines.TextLine, len(in))
	for i, line := range in {
		out[i] = ScoreLine(line)
	}
	return out
}

// ScoreAnnotated returns line with its primary and commentary indexes
// computed. A line without exactly one separator yields a *FormatError and is
// returned unchanged.
func ScoreAnnotated(line lines.AnnotatedLine, opts Options) (lines.AnnotatedLine, error) {
	opts = opts.normalized()

	primary, commentary, err := Split(line.Text, opts.Separator)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Line = line.Number
		}
		return line, err
	}
	line.Primary = primary
	line.Commentary = commentary

	body := newAccumulator()
	body.add(primary)
	line.Length = body.count
	line.Index = body.sum
	line.CommentaryIndex = 0
	line.CommentaryLength = 0

	trimmed := strings.TrimLeftFunc(commentary, unicode.IsSpace)
	if trimmed == "" {
		if opts.FinalizeEmptyCommentary {
			line.Index = body.index()
		}
		return line, nil
	}

	note := newAccumulator()
	for _, word := range Words(trimmed, opts.WordLimit) {
		note.add(word)
	}
	line.Index = body.index()
	line.CommentaryIndex = note.index()
	line.CommentaryLength = note.count
	return line, nil
}

// Split divides raw at its only separator.
func Split(raw string, sep rune) (primary, commentary string, err error) {
	switch n := strings.Count(raw, string(sep)); n {
	case 1:
		primary, commentary, _ = strings.Cut(raw, string(sep))
		return primary, commentary, nil
	case 0:
		return "", "", &FormatError{Text: raw, Reason: "missing commentary separator", Separators: n}
	default:
		return "", "", &FormatError{Text: raw, Reason: "more than one commentary separator", Separators: n}
	}
}

// Words splits commentary on spaces and hyphens and returns at most limit
// fields. Adjacent separators produce empty fields, and those count toward
// the limit.
func Words(commentary string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	words := make([]string, 0, limit)
	start := 0
	for i, r := range commentary {
		if r != ' ' && r != '-' {
			continue
		}
		words = append(words, commentary[start:i])
		if len(words) == limit {
			return words
		}
		start = i + 1
	}
	return append(words, commentary[start:])
}
