package scoring

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is matched by every *FormatError via errors.Is.
var ErrMalformedLine = errors.New("malformed annotated line")

// FormatError describes an annotated line that could not be split.
type FormatError struct {
	Line       int
	Text       string
	Reason     string
	Separators int
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s (found %d)", e.Line, e.Reason, e.Separators)
	}
	return fmt.Sprintf("%s (found %d)", e.Reason, e.Separators)
}

// Is reports whether target is ErrMalformedLine.
func (e *FormatError) Is(target error) bool {
	return target == ErrMalformedLine
}
