package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sumatoshi-tech/twobytwo/pkg/config"
	"github.com/Sumatoshi-tech/twobytwo/pkg/render"
	"github.com/Sumatoshi-tech/twobytwo/pkg/senspec"
)

// lowerIsBetter names the error rates, colored on an inverted scale.
var lowerIsBetter = map[string]bool{ //nolint:gochecknoglobals // read-only table.
	"false_positive_rate":  true,
	"false_negative_rate":  true,
	"false_discovery_rate": true,
}

// report is the structured form of a senspec run.
type report struct {
	senspec.Metrics `yaml:",inline"`

	Undefined []string `json:"undefined,omitempty" yaml:"undefined,omitempty"`
}

func (r report) ReportName() string { return toolName }
func (r report) ToJSON() any        { return r }
func (r report) ToYAML() any        { return r }

type output struct {
	Format    string
	Precision int
	Extended  bool
	Colors    bool
}

func (o output) write(w io.Writer, m senspec.Metrics) error {
	switch o.Format {
	case config.FormatJSON:
		return render.JSON(w, newReport(m))
	case config.FormatYAML:
		return render.YAML(w, newReport(m))
	case config.FormatTable:
		return render.Tables(w, o.sections(m)...)
	default:
		_, err := io.WriteString(w, o.text(m))
		if err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		return nil
	}
}

func newReport(m senspec.Metrics) report {
	rep := report{Metrics: m}

	for _, nr := range append(m.Core(), m.Extended()...) {
		if !nr.Rate.Defined {
			rep.Undefined = append(rep.Undefined, nr.Name)
		}
	}

	return rep
}

func (o output) text(m senspec.Metrics) string {
	var sb strings.Builder

	p := o.Precision
	c := m.Counts

	fmt.Fprintf(&sb, "a: %.*f, b: %.*f, c: %.*f, d: %.*f\n", p, c.TP, p, c.FP, p, c.FN, p, c.TN)

	rates := m.Core()
	if o.Extended {
		rates = append(rates, m.Extended()...)
	}

	colors := render.NewColorizer(o.Colors)

	for _, nr := range rates {
		fmt.Fprintf(&sb, "%s: %s\n", nr.Label, o.paint(colors, nr))
	}

	return sb.String()
}

func (o output) paint(colors render.Colorizer, nr senspec.NamedRate) string {
	text := nr.Rate.Format(o.Precision)
	if !nr.Rate.Defined {
		return colors.Muted(text)
	}

	return colors.Score(text, nr.Rate.Value, !lowerIsBetter[nr.Name])
}

func (o output) sections(m senspec.Metrics) []render.Section {
	c := m.Counts

	matrix := render.Section{
		Title:  "Confusion matrix",
		Header: []any{"", "actual +", "actual -", "total"},
		Rows: [][]any{
			{"predicted +", render.Count(c.TP), render.Count(c.FP), render.Count(c.TP + c.FP)},
			{"predicted -", render.Count(c.FN), render.Count(c.TN), render.Count(c.FN + c.TN)},
		},
		Footer: []any{"total", render.Count(c.TP + c.FN), render.Count(c.FP + c.TN), render.Count(c.Total())},
	}

	rates := render.Section{
		Title:  "Rates",
		Header: []any{"metric", "value"},
	}

	for _, nr := range append(m.Core(), m.Extended()...) {
		rates.Rows = append(rates.Rows, []any{nr.Label, nr.Rate.Format(o.Precision)})
	}

	return []render.Section{matrix, rates}
}
