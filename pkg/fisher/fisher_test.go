package fisher_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/twobytwo/pkg/fisher"
	"github.com/Sumatoshi-tech/twobytwo/pkg/mathutil"
)

const probDelta = 1e-12

func mustProbability(t *testing.T, a, b, c, d int) float64 {
	t.Helper()

	p, err := fisher.Probability(fisher.Table{A: a, B: b, C: c, D: d})
	require.NoError(t, err)

	return p
}

func TestProbability_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b, c, d int
		want       float64
	}{
		// C(2,1)*C(2,1)/C(4,2).
		{name: "balanced_ones", a: 1, b: 1, c: 1, d: 1, want: 4.0 / 6.0},
		// C(5,2)*C(5,1)/C(10,3).
		{name: "two_three_one_four", a: 2, b: 3, c: 1, d: 4, want: 50.0 / 120.0},
		// Lady tasting tea: C(4,3)*C(4,1)/C(8,4).
		{name: "tea_tasting", a: 3, b: 1, c: 1, d: 3, want: 16.0 / 70.0},
		{name: "empty_table", a: 0, b: 0, c: 0, d: 0, want: 1},
		{name: "degenerate_row", a: 4, b: 0, c: 0, d: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, mustProbability(t, tt.a, tt.b, tt.c, tt.d), probDelta)
		})
	}
}

func TestProbability_Symmetries(t *testing.T) {
	t.Parallel()

	tables := [][4]int{
		{2, 3, 1, 4},
		{10, 0, 3, 7},
		{12, 5, 9, 30},
		{0, 8, 8, 0},
		{150, 210, 90, 400},
	}

	for _, tb := range tables {
		a, b, c, d := tb[0], tb[1], tb[2], tb[3]
		p := mustProbability(t, a, b, c, d)

		assert.InEpsilon(t, p, mustProbability(t, b, a, d, c), 1e-9, "row symmetry %v", tb)
		assert.InEpsilon(t, p, mustProbability(t, a, c, b, d), 1e-9, "transpose symmetry %v", tb)
	}
}

func TestProbability_InUnitInterval(t *testing.T) {
	t.Parallel()

	for a := 0; a <= 6; a++ {
		for b := 0; b <= 6; b++ {
			for c := 0; c <= 6; c++ {
				for d := 1; d <= 6; d++ {
					p := mustProbability(t, a, b, c, d)
					assert.GreaterOrEqual(t, p, 0.0)
					assert.LessOrEqual(t, p, 1.0)
				}
			}
		}
	}
}

func TestProbability_LargeCounts(t *testing.T) {
	t.Parallel()

	p := mustProbability(t, 1000, 2000, 1500, 500)
	assert.True(t, mathutil.IsFinite(p))
	assert.GreaterOrEqual(t, p, 0.0)
	assert.Less(t, p, 1e-100)

	p = mustProbability(t, 2500, 2500, 2500, 2500)
	assert.True(t, mathutil.IsFinite(p))
	assert.Greater(t, p, 0.0)
}

func TestProbability_RejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := fisher.Probability(fisher.Table{A: 3, B: -1, C: 2, D: 2})
	require.ErrorIs(t, err, fisher.ErrNegativeCount)
}

func TestProbability_RejectsOverflow(t *testing.T) {
	t.Parallel()

	_, err := fisher.Probability(fisher.Table{A: math.MaxInt, B: 1})
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestMargins(t *testing.T) {
	t.Parallel()

	m := fisher.Table{A: 2, B: 3, C: 1, D: 4}.Margins()
	assert.Equal(t, fisher.Margins{Row1: 5, Row2: 5, Col1: 3, Col2: 7, Total: 10}, m)
}

func TestDistribution_SumsToOne(t *testing.T) {
	t.Parallel()

	for _, tb := range []fisher.Table{
		{A: 2, B: 3, C: 1, D: 4},
		{A: 12, B: 5, C: 9, D: 30},
		{A: 0, B: 0, C: 0, D: 0},
		{A: 300, B: 120, C: 75, D: 410},
	} {
		dist, err := fisher.Distribution(tb)
		require.NoError(t, err)
		require.NotEmpty(t, dist)

		var sum float64
		for _, o := range dist {
			sum += o.Probability
		}

		assert.InDelta(t, 1.0, sum, 1e-9, "table %+v", tb)
	}
}

func TestDistribution_Support(t *testing.T) {
	t.Parallel()

	tb := fisher.Table{A: 2, B: 3, C: 1, D: 4}

	lo, hi := fisher.Support(tb)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)

	dist, err := fisher.Distribution(tb)
	require.NoError(t, err)
	require.Len(t, dist, 4)

	want := []float64{10.0 / 120, 50.0 / 120, 50.0 / 120, 10.0 / 120}
	for i, o := range dist {
		assert.Equal(t, i, o.A)
		assert.InDelta(t, want[i], o.Probability, probDelta)
	}
}

func TestDistribution_MatchesPointProbability(t *testing.T) {
	t.Parallel()

	for _, tb := range []fisher.Table{
		{A: 2, B: 3, C: 1, D: 4},
		{A: 12, B: 5, C: 9, D: 30},
		{A: 300, B: 120, C: 75, D: 410},
		{A: 30, B: 45, C: 20, D: 60},
	} {
		m := tb.Margins()

		dist, err := fisher.Distribution(tb)
		require.NoError(t, err)

		for _, o := range dist {
			c := m.Col1 - o.A
			want := mustProbability(t, o.A, m.Row1-o.A, c, m.Row2-c)

			assert.InEpsilon(t, want, o.Probability, 1e-9, "table %+v a=%d", tb, o.A)
		}
	}
}

func TestTest_LargeTableRunsInLinearTime(t *testing.T) {
	t.Parallel()

	tb := fisher.Table{A: 20000, B: 20000, C: 20000, D: 20000}

	start := time.Now()
	res, err := fisher.Test(tb)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.InEpsilon(t, 5.641843e-03, res.Point, 1e-6)
	assert.InDelta(t, 1.0, res.Left+res.Right-res.Point, 1e-9)
	assert.InDelta(t, 1.0, res.TwoSided, 1e-9)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestResult_TwoSidedThreshold(t *testing.T) {
	t.Parallel()

	for _, tb := range []fisher.Table{
		{A: 3, B: 1, C: 1, D: 3},
		{A: 7, B: 2, C: 1, D: 9},
		{A: 40, B: 60, C: 55, D: 45},
	} {
		res, err := fisher.Test(tb)
		require.NoError(t, err)

		threshold := res.TwoSidedThreshold()
		assert.Greater(t, threshold, res.Point)

		dist, err := fisher.Distribution(tb)
		require.NoError(t, err)

		var sum float64

		for _, o := range dist {
			if o.Probability <= threshold {
				sum += o.Probability
			}
		}

		assert.InDelta(t, res.TwoSided, sum, 1e-12, "table %+v", tb)
	}
}

func TestTest_TeaTasting(t *testing.T) {
	t.Parallel()

	res, err := fisher.Test(fisher.Table{A: 3, B: 1, C: 1, D: 3})
	require.NoError(t, err)

	assert.InDelta(t, 16.0/70, res.Point, probDelta)
	assert.InDelta(t, 69.0/70, res.Left, probDelta)
	assert.InDelta(t, 17.0/70, res.Right, probDelta)
	assert.InDelta(t, 34.0/70, res.TwoSided, probDelta)
}

func TestTest_TailIdentities(t *testing.T) {
	t.Parallel()

	for _, tb := range []fisher.Table{
		{A: 2, B: 3, C: 1, D: 4},
		{A: 7, B: 2, C: 1, D: 9},
		{A: 40, B: 60, C: 55, D: 45},
	} {
		res, err := fisher.Test(tb)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, res.Left+res.Right-res.Point, 1e-9, "table %+v", tb)
		assert.GreaterOrEqual(t, res.TwoSided, res.Point)
		assert.LessOrEqual(t, res.TwoSided, 1.0)
	}
}

func TestResult_PValue(t *testing.T) {
	t.Parallel()

	res := fisher.Result{Point: 0.1, Left: 0.2, Right: 0.3, TwoSided: 0.4}

	assert.InDelta(t, 0.1, res.PValue(fisher.TailPoint), 0)
	assert.InDelta(t, 0.2, res.PValue(fisher.TailLeft), 0)
	assert.InDelta(t, 0.3, res.PValue(fisher.TailRight), 0)
	assert.InDelta(t, 0.4, res.PValue(fisher.TailTwoSided), 0)
}

func TestParseTail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want fisher.Tail
	}{
		{in: "point", want: fisher.TailPoint},
		{in: "left", want: fisher.TailLeft},
		{in: "right", want: fisher.TailRight},
		{in: "two-sided", want: fisher.TailTwoSided},
		{in: "two", want: fisher.TailTwoSided},
	}

	for _, tt := range tests {
		got, err := fisher.ParseTail(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := fisher.ParseTail("greater")
	require.ErrorIs(t, err, fisher.ErrUnknownTail)
}
