package matching

import (
	"math"

	"petrenko/internal/lines"
)

// Predicate decides whether a source index and an annotated composite match.
type Predicate func(source, composite float64) bool

// Exact matches only identical floating-point values.
func Exact() Predicate {
	return func(source, composite float64) bool {
		return source == composite
	}
}

// Within matches values no further apart than epsilon.
func Within(epsilon float64) Predicate {
	epsilon = math.Abs(epsilon)
	return func(source, composite float64) bool {
		return math.Abs(source-composite) <= epsilon
	}
}

// PredicateFor returns Exact for a zero tolerance and Within otherwise.
func PredicateFor(tolerance float64) Predicate {
	if tolerance == 0 {
		return Exact()
	}
	return Within(tolerance)
}

// Pairing groups a source line with every annotated line that matched it.
type Pairing struct {
	Source  lines.TextLine        `json:"source"`
	Matches []lines.AnnotatedLine `json:"matches"`

	// positions holds each match's index in the annotated slice given to
	// Match. Line numbers are not guaranteed unique for caller-built stores.
	positions []int
}

// Match walks sources in order and collects, for each, the annotated lines
// accepted by pred in file order. Sources without a match are
// omitted. A nil pred means Exact.
func Match(sources []lines.TextLine, annotated []lines.AnnotatedLine, pred Predicate) []Pairing {
	if pred == nil {
		pred = Exact()
	}
	var pairs []Pairing
	for _, src := range sources {
		var matches []lines.AnnotatedLine
		var positions []int
		for i, ann := range annotated {
			if pred(src.Index, ann.Composite()) {
				matches = append(matches, ann)
				positions = append(positions, i)
			}
		}
		if len(matches) == 0 {
			continue
		}
		pairs = append(pairs, Pairing{Source: src, Matches: matches, positions: positions})
	}
	return pairs
}

// MatchedAnnotated counts distinct annotated lines that appear in pairs.
// Pairings from Match are compared by position in the annotated input;
// pairings built elsewhere fall back to line numbers.
func MatchedAnnotated(pairs []Pairing) int {
	type key struct {
		byPosition bool
		n          int
	}
	seen := make(map[key]struct{})
	for _, p := range pairs {
		for i, m := range p.Matches {
			k := key{n: m.Number}
			if len(p.positions) == len(p.Matches) {
				k = key{byPosition: true, n: p.positions[i]}
			}
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}
