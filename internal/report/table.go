package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"petrenko/internal/align"
	"petrenko/internal/language"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(title string, headers []string, rows [][]string, aligns []columnAlignment, caption string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	// Headers carry language names; keep their case.
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Title.Format = text.FormatDefault
	tw.SetStyle(style)
	if title != "" {
		tw.SetTitle(title)
	}
	if caption != "" {
		tw.SetCaption(caption)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		colAlign := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			colAlign = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       colAlign,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func writeTable(w io.Writer, res *align.Result, opts Options) error {
	if len(res.Pairs) == 0 {
		_, err := fmt.Fprintln(w, paint(NoPairsMessage, ansiYellow, opts.Colorize))
		return err
	}

	source := language.DisplayName(opts.SourceLanguage)
	target := language.DisplayName(opts.TargetLanguage)
	headers := []string{"Pair", "Line", source, "Index", "Line", target, "Index", "Commentary"}
	aligns := []columnAlignment{alignRight, alignRight, alignLeft, alignRight, alignRight, alignLeft, alignRight, alignRight}

	var rows [][]string
	for i, pair := range res.Pairs {
		for j, m := range pair.Matches {
			row := make([]string, 0, len(headers))
			if j == 0 {
				row = append(row,
					strconv.Itoa(i+1),
					strconv.Itoa(pair.Source.Number),
					pair.Source.Text,
					FormatNumber(pair.Source.Index),
				)
			} else {
				row = append(row, "", "", "", "")
			}
			row = append(row,
				strconv.Itoa(m.Number),
				m.Text,
				FormatNumber(m.Index),
				FormatNumber(m.CommentaryIndex),
			)
			rows = append(rows, row)
		}
	}

	caption := fmt.Sprintf("%d pairs, %d skipped lines", res.Stats.Pairs, res.Stats.Skipped)
	if opts.ShowTiming {
		caption = fmt.Sprintf("%s, %d ms", caption, res.Stats.Elapsed.Milliseconds())
	}
	_, err := fmt.Fprintln(w, renderTable("Probable translations", headers, rows, aligns, caption))
	return err
}
