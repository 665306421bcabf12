package lines

// TextLine is a source-language line and its Petrenko index.
type TextLine struct {
	// Number is the 1-based physical line number in the input file.
	Number int     `json:"line"`
	Text   string  `json:"text"`
	Index  float64 `json:"index"`
	Length float64 `json:"length"`
}

// AnnotatedLine is a target-language line with an inline commentary.
// Primary and Commentary are filled in by the scorer once the raw text has
// been split on the separator.
type AnnotatedLine struct {
	Number           int     `json:"line"`
	Text             string  `json:"text"`
	Primary          string  `json:"primary"`
	Commentary       string  `json:"commentary"`
	Index            float64 `json:"index"`
	Length           float64 `json:"length"`
	CommentaryIndex  float64 `json:"commentary_index"`
	CommentaryLength float64 `json:"commentary_length"`
}

// Composite returns the value compared against a source line's index.
func (l AnnotatedLine) Composite() float64 {
	return l.Index + l.CommentaryIndex
}

// Store keeps both sides of the corpus in input order.
type Store struct {
	Sources   []TextLine
	Annotated []AnnotatedLine
}

// NewStore builds unscored records from raw lines.
func NewStore(sources, annotated []Raw) *Store {
	s := &Store{
		Sources:   make([]TextLine, 0, len(sources)),
		Annotated: make([]AnnotatedLine, 0, len(annotated)),
	}
	for _, r := range sources {
		s.Sources = append(s.Sources, TextLine{Number: r.Number, Text: r.Text})
	}
	for _, r := range annotated {
		s.Annotated = append(s.Annotated, AnnotatedLine{Number: r.Number, Text: r.Text})
	}
	return s
}

// Empty reports whether either side has no lines.
func (s *Store) Empty() bool {
	return s == nil || len(s.Sources) == 0 || len(s.Annotated) == 0
}
