package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/twobytwo/pkg/render"
)

type stubReport struct {
	Value float64 `json:"value" yaml:"value"`
}

func (stubReport) ReportName() string { return "stub" }
func (s stubReport) ToJSON() any      { return s }
func (s stubReport) ToYAML() any      { return s }

func TestJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, stubReport{Value: 0.25}))

	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.InDelta(t, 0.25, decoded["value"], 0)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.YAML(&buf, stubReport{Value: 0.5}))
	assert.Equal(t, "value: 0.5\n", buf.String())
}

func TestNilReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, render.JSON(&buf, nil), render.ErrNilReport)
	require.ErrorIs(t, render.YAML(&buf, nil), render.ErrNilReport)
}

func TestTables(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := render.Tables(&buf,
		render.Section{
			Title:  "Table",
			Header: []any{"", "col 1", "col 2"},
			Rows:   [][]any{{"row 1", "2", "3"}, {"row 2", "1", "4"}},
			Footer: []any{"total", "3", "7"},
		},
		render.Section{
			Title: "P-values",
			Rows:  [][]any{{"point", "4.166667e-01"}},
		},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Table")
	assert.Contains(t, out, "row 1")
	assert.Contains(t, out, "4.166667e-01")
	assert.Contains(t, out, "\n\n")
}

func TestCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,234,567", render.Count(1234567))
	assert.Equal(t, "0", render.Count(0))
	assert.Equal(t, "1,234.5", render.Count(1234.5))
}

func TestColorizer_Disabled(t *testing.T) {
	t.Parallel()

	c := render.NewColorizer(false)
	assert.Equal(t, "0.9", c.Score("0.9", 0.9, true))
	assert.Equal(t, "undefined", c.Muted("undefined"))
}

func TestColorizer_Enabled(t *testing.T) {
	t.Parallel()

	c := render.NewColorizer(true)

	good := c.Score("0.95", 0.95, true)
	assert.Contains(t, good, "\x1b[32m")
	assert.Contains(t, good, "0.95")

	// A 5% error rate is good.
	assert.Contains(t, c.Score("0.05", 0.05, false), "\x1b[32m")
	assert.Contains(t, c.Score("0.6", 0.6, true), "\x1b[33m")
	assert.Contains(t, c.Score("0.1", 0.1, true), "\x1b[31m")
}
