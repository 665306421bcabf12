package scoring

import (
	"errors"
	"reflect"
	"testing"

	"petrenko/internal/lines"
)

func TestIndexArithmeticSeries(t *testing.T) {
	for k := 0; k <= 40; k++ {
		text := make([]rune, k)
		for i := range text {
			text[i] = 'a' + rune(i%26)
		}
		got := Index(string(text))
		if got != ArithmeticIndex(k) {
			t.Fatalf("Index(%d letters) = %v, want %v", k, got, ArithmeticIndex(k))
		}
	}
}

func TestScoreLine(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantIndex  float64
		wantLength float64
	}{
		{"plain", "cat", 13.5, 3},
		{"punctuation noise", "c-a, t!", 13.5, 3},
		{"digits and spaces", " 1c 2a 3t 4 ", 13.5, 3},
		{"cyrillic", "кот", 13.5, 3},
		{"no letters", "123 -- !!", 0, 0},
		{"single letter", "x", 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreLine(lines.TextLine{Number: 4, Text: tt.text})
			if got.Index != tt.wantIndex || got.Length != tt.wantLength {
				t.Errorf("ScoreLine(%q) = (%v, %v), want (%v, %v)", tt.text, got.Index, got.Length, tt.wantIndex, tt.wantLength)
			}
			if got.Number != 4 || got.Text != tt.text {
				t.Errorf("ScoreLine changed identity fields: %+v", got)
			}
		})
	}
}

func TestScoreLineDoesNotMutateInput(t *testing.T) {
	in := []lines.TextLine{{Text: "cat"}, {Text: "dog"}}
	out := ScoreLines(in)
	if in[0].Index != 0 || in[1].Length != 0 {
		t.Fatalf("input mutated: %+v", in)
	}
	if out[0].Index != 13.5 || out[1].Index != 13.5 {
		t.Fatalf("unexpected scores: %+v", out)
	}
}

func TestScoreAnnotated(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		opts          Options
		wantIndex     float64
		wantComIndex  float64
		wantComLength float64
	}{
		{"cat with note", "cat|good", DefaultOptions(), 13.5, 32, 4},
		{"word limit", "cat|a b c d e f g", DefaultOptions(), 13.5, 62.5, 5},
		{"hyphen separates words", "cat|a-b-c-d-e-f", DefaultOptions(), 13.5, 62.5, 5},
		{"empty words count toward limit", "cat|a  b c d e f", DefaultOptions(), 13.5, 32, 4},
		{"leading whitespace trimmed", "cat|   a b c d e f", DefaultOptions(), 13.5, 62.5, 5},
		{"tabs do not separate words", "cat|a\tb c d e f", DefaultOptions(), 13.5, ArithmeticIndex(6), 6},
		{"custom word limit", "cat|ab cd ef", Options{WordLimit: 2}, 13.5, 32, 4},
		{"custom separator", "cat#good", Options{Separator: '#'}, 13.5, 32, 4},
		{"empty primary", "|good", DefaultOptions(), 0, 32, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreAnnotated(lines.AnnotatedLine{Text: tt.text}, tt.opts)
			if err != nil {
				t.Fatalf("ScoreAnnotated(%q) error: %v", tt.text, err)
			}
			if got.Index != tt.wantIndex {
				t.Errorf("Index = %v, want %v", got.Index, tt.wantIndex)
			}
			if got.CommentaryIndex != tt.wantComIndex || got.CommentaryLength != tt.wantComLength {
				t.Errorf("commentary = (%v, %v), want (%v, %v)", got.CommentaryIndex, got.CommentaryLength, tt.wantComIndex, tt.wantComLength)
			}
		})
	}
}

func TestScoreAnnotatedSplitsSegments(t *testing.T) {
	got, err := ScoreAnnotated(lines.AnnotatedLine{Text: "the cat| good cat"}, DefaultOptions())
	if err != nil {
		t.Fatalf("ScoreAnnotated error: %v", err)
	}
	if got.Primary != "the cat" || got.Commentary != " good cat" {
		t.Fatalf("unexpected segments: %q / %q", got.Primary, got.Commentary)
	}
	if got.Length != 6 {
		t.Fatalf("Length = %v, want 6", got.Length)
	}
}

func TestScoreAnnotatedBlankCommentary(t *testing.T) {
	for _, text := range []string{"cat|", "cat|   ", "cat|\t "} {
		t.Run(text, func(t *testing.T) {
			got, err := ScoreAnnotated(lines.AnnotatedLine{Text: text}, DefaultOptions())
			if err != nil {
				t.Fatalf("ScoreAnnotated error: %v", err)
			}
			// Blank commentary leaves the primary as its raw weighted sum.
			if got.Index != 4.5 {
				t.Errorf("Index = %v, want raw sum 4.5", got.Index)
			}
			if got.Length != 3 {
				t.Errorf("Length = %v, want 3", got.Length)
			}
			if got.CommentaryIndex != 0 || got.CommentaryLength != 0 {
				t.Errorf("commentary = (%v, %v), want zero", got.CommentaryIndex, got.CommentaryLength)
			}

			opts := DefaultOptions()
			opts.FinalizeEmptyCommentary = true
			finalized, err := ScoreAnnotated(lines.AnnotatedLine{Text: text}, opts)
			if err != nil {
				t.Fatalf("ScoreAnnotated error: %v", err)
			}
			if finalized.Index != 13.5 {
				t.Errorf("finalized Index = %v, want 13.5", finalized.Index)
			}
			if finalized.CommentaryIndex != 0 || finalized.CommentaryLength != 0 {
				t.Errorf("finalized commentary = (%v, %v), want zero", finalized.CommentaryIndex, finalized.CommentaryLength)
			}
		})
	}
}

func TestScoreAnnotatedWhitespaceMatchesEmpty(t *testing.T) {
	empty, err := ScoreAnnotated(lines.AnnotatedLine{Text: "word|"}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	spaces, err := ScoreAnnotated(lines.AnnotatedLine{Text: "word|    "}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if empty.CommentaryIndex != spaces.CommentaryIndex || empty.CommentaryLength != spaces.CommentaryLength || empty.Index != spaces.Index {
		t.Fatalf("whitespace commentary scored differently: %+v vs %+v", empty, spaces)
	}
}

func TestScoreAnnotatedMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no separator", "cat good", 0},
		{"two separators", "cat|good|bad", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := lines.AnnotatedLine{Number: 9, Text: tt.text}
			got, err := ScoreAnnotated(in, DefaultOptions())
			if !errors.Is(err, ErrMalformedLine) {
				t.Fatalf("expected ErrMalformedLine, got %v", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %T", err)
			}
			if fe.Line != 9 || fe.Separators != tt.want {
				t.Fatalf("unexpected error fields: %+v", fe)
			}
			if got != in {
				t.Fatalf("malformed line should be returned unchanged: %+v", got)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  []string
	}{
		{"one", 5, []string{"one"}},
		{"a b-c", 5, []string{"a", "b", "c"}},
		{"a  b", 5, []string{"a", "", "b"}},
		{"a b ", 5, []string{"a", "b", ""}},
		{"1 2 3 4 5 6 7", 5, []string{"1", "2", "3", "4", "5"}},
		{"1 2 3 4 5", 5, []string{"1", "2", "3", "4", "5"}},
		{"a b", 0, nil},
	}
	for _, tt := range tests {
		if got := Words(tt.in, tt.limit); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Words(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
