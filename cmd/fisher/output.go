package main

import (
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/twobytwo/pkg/config"
	"github.com/Sumatoshi-tech/twobytwo/pkg/fisher"
	"github.com/Sumatoshi-tech/twobytwo/pkg/render"
)

// report is the structured form of a fisher run.
type report struct {
	Tail   fisher.Tail   `json:"tail"    yaml:"tail"`
	PValue float64       `json:"p_value" yaml:"p_value"`
	Result fisher.Result `json:"result"  yaml:"result"`
}

func (r report) ReportName() string { return toolName }
func (r report) ToJSON() any        { return r }
func (r report) ToYAML() any        { return r }

func writeResult(w io.Writer, format string, precision int, res fisher.Result, tail fisher.Tail) error {
	rep := report{Tail: tail, PValue: res.PValue(tail), Result: res}

	switch format {
	case config.FormatJSON:
		return render.JSON(w, rep)
	case config.FormatYAML:
		return render.YAML(w, rep)
	case config.FormatTable:
		return render.Tables(w, tableSections(res, tail, precision)...)
	default:
		_, err := fmt.Fprintf(w, "%.*e\n", precision, rep.PValue)
		if err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		return nil
	}
}

func tableSections(res fisher.Result, selected fisher.Tail, precision int) []render.Section {
	t, m := res.Table, res.Margins

	count := func(v int) string { return render.Count(float64(v)) }

	counts := render.Section{
		Title:  "Contingency table",
		Header: []any{"", "col 1", "col 2", "total"},
		Rows: [][]any{
			{"row 1", count(t.A), count(t.B), count(m.Row1)},
			{"row 2", count(t.C), count(t.D), count(m.Row2)},
		},
		Footer: []any{"total", count(m.Col1), count(m.Col2), count(m.Total)},
	}

	pvalues := render.Section{
		Title:  "Fisher's exact test",
		Header: []any{"tail", "p-value", ""},
	}

	for _, tail := range []fisher.Tail{fisher.TailPoint, fisher.TailLeft, fisher.TailRight, fisher.TailTwoSided} {
		mark := ""
		if tail == selected {
			mark = "*"
		}

		pvalues.Rows = append(pvalues.Rows, []any{string(tail), fmt.Sprintf("%.*e", precision, res.PValue(tail)), mark})
	}

	return []render.Section{counts, pvalues}
}
