package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"petrenko/internal/lines"
)

// ScoreRow is one line of a score listing.
type ScoreRow struct {
	Line             int     `json:"line"`
	Text             string  `json:"text"`
	Index            float64 `json:"index"`
	Length           float64 `json:"length"`
	CommentaryIndex  float64 `json:"commentary_index,omitempty"`
	CommentaryLength float64 `json:"commentary_length,omitempty"`
	Composite        float64 `json:"composite"`
	Error            string  `json:"error,omitempty"`
}

// SourceRows converts scored source lines into listing rows.
func SourceRows(in []lines.TextLine) []ScoreRow {
	rows := make([]ScoreRow, 0, len(in))
	for _, l := range in {
		rows = append(rows, ScoreRow{Line: l.Number, Text: l.Text, Index: l.Index, Length: l.Length, Composite: l.Index})
	}
	return rows
}

// AnnotatedRow converts a scored annotated line into a listing row.
func AnnotatedRow(l lines.AnnotatedLine, err error) ScoreRow {
	row := ScoreRow{
		Line:             l.Number,
		Text:             l.Text,
		Index:            l.Index,
		Length:           l.Length,
		CommentaryIndex:  l.CommentaryIndex,
		CommentaryLength: l.CommentaryLength,
		Composite:        l.Composite(),
	}
	if err != nil {
		row.Error = err.Error()
	}
	return row
}

// WriteScores renders a per-line score listing. Plain and table formats both
// produce a table; annotated adds the commentary columns.
func WriteScores(w io.Writer, rows []ScoreRow, annotated bool, format string) error {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		if rows == nil {
			rows = []ScoreRow{}
		}
		return writeJSON(w, rows)
	}

	headers := []string{"Line", "Text", "Letters", "Index"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight}
	if annotated {
		headers = append(headers, "Commentary letters", "Commentary index", "Composite", "Error")
		aligns = append(aligns, alignRight, alignRight, alignRight, alignLeft)
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Line),
			r.Text,
			FormatNumber(r.Length),
			FormatNumber(r.Index),
		}
		if annotated {
			if r.Error != "" {
				row = append(row, "", "", "", r.Error)
			} else {
				row = append(row,
					FormatNumber(r.CommentaryLength),
					FormatNumber(r.CommentaryIndex),
					FormatNumber(r.Composite),
					"",
				)
			}
		}
		table = append(table, row)
	}
	_, err := fmt.Fprintln(w, renderTable("", headers, table, aligns, fmt.Sprintf("%d lines", len(rows))))
	return err
}
