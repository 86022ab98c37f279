package formatter

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func (a columnAlignment) pretty() text.Align {
	if a == alignRight {
		return text.AlignRight
	}
	return text.AlignLeft
}

// renderTable draws headers and rows in a rounded-border table. Short rows
// pad out to the header width; aligns applies per column, left by default.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment, styleOpts ...func(*table.Style)) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	for _, opt := range styleOpts {
		opt(tw.Style())
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range configs {
		align := alignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align.pretty(),
			AlignHeader: text.AlignLeft,
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// renderMatrix draws a cross-tabulation: the first column holds row labels
// and stays left-aligned, every count column is right-aligned. Column headers
// are data labels (e.g. "1970s"), so header upper-casing is disabled.
func renderMatrix(headers []string, rows [][]string) string {
	aligns := make([]columnAlignment, len(headers))
	for i := 1; i < len(aligns); i++ {
		aligns[i] = alignRight
	}
	return renderTable(headers, rows, aligns, func(s *table.Style) {
		s.Format.Header = text.FormatDefault
	})
}
