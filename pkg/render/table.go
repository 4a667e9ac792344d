package render

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// countDecimals is the number of decimals shown for non-integral counts.
const countDecimals = 2

// Section is a titled block of rows rendered as one table.
type Section struct {
	Title  string
	Header []any
	Rows   [][]any
	Footer []any
}

// Tables writes each section as a light-styled go-pretty table, separated
// by blank lines.
func Tables(w io.Writer, sections ...Section) error {
	for i, s := range sections {
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.Style().Options.SeparateRows = false
		tbl.SetTitle(s.Title)

		if len(s.Header) > 0 {
			tbl.AppendHeader(s.Header)
		}

		for _, row := range s.Rows {
			tbl.AppendRow(row)
		}

		if len(s.Footer) > 0 {
			tbl.AppendFooter(s.Footer)
		}

		sep := "\n"
		if i == len(sections)-1 {
			sep = ""
		}

		_, err := fmt.Fprintf(w, "%s\n%s", tbl.Render(), sep)
		if err != nil {
			return fmt.Errorf("write table %q: %w", s.Title, err)
		}
	}

	return nil
}

// Count formats a cell count with thousands separators. Integral values
// print without decimals.
func Count(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return humanize.Comma(int64(v))
	}

	return humanize.CommafWithDigits(v, countDecimals)
}
