// Package plot renders the hypergeometric distribution of a 2x2 table as a
// standalone HTML bar chart.
package plot

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/twobytwo/pkg/fisher"
)

// ErrEmptyDistribution is returned when there is nothing to plot.
var ErrEmptyDistribution = errors.New("distribution is empty")

// Chart colors.
const (
	colorObserved = "#ee6666"
	colorTail     = "#fac858"
	colorOther    = "#5470c6"
	colorText     = "#c9d1d9"
	colorAxis     = "#8b949e"
	colorGrid     = "#30363d"
	colorBack     = "#0d1117"
)

const (
	chartWidth  = "100%"
	chartHeight = "500px"
)

// Options describe the chart title and the table being tested.
type Options struct {
	Title string
	// Observed is the value of cell A in the observed table.
	Observed int
	// Threshold is the point probability of the observed table. Outcomes at
	// or below it are painted as part of the two-sided tail. Zero disables
	// tail highlighting.
	Threshold float64
}

// Build returns a bar chart with one bar per outcome.
func Build(dist []fisher.Outcome, o Options) (*charts.Bar, error) {
	if len(dist) == 0 {
		return nil, ErrEmptyDistribution
	}

	title := o.Title
	if title == "" {
		title = "Hypergeometric distribution"
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           chartWidth,
			Height:          chartHeight,
			BackgroundColor: colorBack,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         title,
			Subtitle:      "P(A = a) with all margins fixed; observed a = " + strconv.Itoa(o.Observed),
			Left:          "center",
			TitleStyle:    &opts.TextStyle{Color: colorText},
			SubtitleStyle: &opts.TextStyle{Color: colorAxis},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "a",
			AxisLabel: &opts.AxisLabel{Color: colorAxis},
			AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: colorAxis}},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "probability",
			AxisLabel: &opts.AxisLabel{Color: colorAxis},
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Color: colorGrid},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	labels := make([]string, len(dist))
	data := make([]opts.BarData, len(dist))

	for i, out := range dist {
		labels[i] = strconv.Itoa(out.A)
		data[i] = opts.BarData{
			Name:      labels[i],
			Value:     out.Probability,
			ItemStyle: &opts.ItemStyle{Color: barColor(out, o)},
		}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("P(A = a)", data)

	return bar, nil
}

// Write renders the chart for dist as a complete HTML page.
func Write(w io.Writer, dist []fisher.Outcome, o Options) error {
	bar, err := Build(dist, o)
	if err != nil {
		return err
	}

	err = bar.Render(w)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}

func barColor(out fisher.Outcome, o Options) string {
	switch {
	case out.A == o.Observed:
		return colorObserved
	case o.Threshold > 0 && out.Probability <= o.Threshold:
		return colorTail
	default:
		return colorOther
	}
}
