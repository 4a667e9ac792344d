package fisher

import (
	"errors"
	"fmt"
	"math"

	"github.com/Sumatoshi-tech/twobytwo/pkg/mathutil"
)

// ErrNegativeCount is returned when a table cell is negative.
var ErrNegativeCount = errors.New("cell counts must be non-negative")

// twoSidedTolerance is the relative slack used when comparing point
// probabilities for the two-sided p-value, so tables that tie with the
// observed one are not lost to rounding.
const twoSidedTolerance = 1e-7

// Table is a 2x2 contingency table of raw counts.
//
//	| A  B |
//	| C  D |
type Table struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
	C int `json:"c" yaml:"c"`
	D int `json:"d" yaml:"d"`
}

// Margins holds the fixed row and column sums of a table.
type Margins struct {
	Row1  int `json:"row1"  yaml:"row1"`
	Row2  int `json:"row2"  yaml:"row2"`
	Col1  int `json:"col1"  yaml:"col1"`
	Col2  int `json:"col2"  yaml:"col2"`
	Total int `json:"total" yaml:"total"`
}

// Validate checks that every cell is non-negative and that the grand total fits in int.
func (t Table) Validate() error {
	if t.A < 0 || t.B < 0 || t.C < 0 || t.D < 0 {
		return fmt.Errorf("%w: %d %d %d %d", ErrNegativeCount, t.A, t.B, t.C, t.D)
	}

	_, err := mathutil.AddInts(t.A, t.B, t.C, t.D)
	if err != nil {
		return fmt.Errorf("table total: %w", err)
	}

	return nil
}

// Margins returns the row and column sums. The table must be valid.
func (t Table) Margins() Margins {
	return Margins{
		Row1:  t.A + t.B,
		Row2:  t.C + t.D,
		Col1:  t.A + t.C,
		Col2:  t.B + t.D,
		Total: t.A + t.B + t.C + t.D,
	}
}

// LogProbability returns log10 of the hypergeometric point probability of t.
func LogProbability(t Table) (float64, error) {
	err := t.Validate()
	if err != nil {
		return 0, err
	}

	m := t.Margins()

	return mustLogChoose(m.Row1, t.A) + mustLogChoose(m.Row2, t.C) - mustLogChoose(m.Total, m.Col1), nil
}

// Probability returns the probability of observing exactly t given its
// row and column sums. The result lies in [0, 1].
func Probability(t Table) (float64, error) {
	logP, err := LogProbability(t)
	if err != nil {
		return 0, err
	}

	return mathutil.ClampProbability(math.Pow(10, logP)), nil
}

// Outcome is one point of the hypergeometric distribution: the value of
// cell A and the probability of the table it determines.
type Outcome struct {
	A           int     `json:"a"           yaml:"a"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// Support returns the smallest and largest value cell A can take with the
// margins of t held fixed.
func Support(t Table) (lo, hi int) {
	m := t.Margins()

	return max(0, m.Col1-m.Row2), min(m.Row1, m.Col1)
}

// Distribution returns every table sharing the margins of t, in ascending
// order of cell A, with its point probability. Only the first point is
// computed from binomials; each later one follows from the ratio
//
//	P(a+1) / P(a) = (r1-a)(c1-a) / ((a+1)(r2-c1+a+1))
//
// so the cost is linear in the table total.
func Distribution(t Table) ([]Outcome, error) {
	err := t.Validate()
	if err != nil {
		return nil, err
	}

	m := t.Margins()
	lo, hi := Support(t)

	out := make([]Outcome, 0, hi-lo+1)
	logP := mustLogChoose(m.Row1, lo) + mustLogChoose(m.Row2, m.Col1-lo) - mustLogChoose(m.Total, m.Col1)

	for a := lo; ; a++ {
		out = append(out, Outcome{A: a, Probability: mathutil.ClampProbability(math.Pow(10, logP))})

		if a == hi {
			break
		}

		logP += math.Log10(float64(m.Row1-a)) + math.Log10(float64(m.Col1-a)) -
			math.Log10(float64(a+1)) - math.Log10(float64(m.Row2-m.Col1+a+1))
	}

	return out, nil
}

// Tail selects which p-value a caller reports.
type Tail string

// Supported tails.
const (
	TailPoint    Tail = "point"
	TailLeft     Tail = "left"
	TailRight    Tail = "right"
	TailTwoSided Tail = "two-sided"
)

// ErrUnknownTail is returned by ParseTail for unrecognized names.
var ErrUnknownTail = errors.New("unknown tail")

// ParseTail maps a tail name to a Tail.
func ParseTail(s string) (Tail, error) {
	switch Tail(s) {
	case TailPoint, TailLeft, TailRight, TailTwoSided:
		return Tail(s), nil
	case "two", "both":
		return TailTwoSided, nil
	default:
		return "", fmt.Errorf("%w: %q (want point, left, right or two-sided)", ErrUnknownTail, s)
	}
}

// Result holds the exact test for a single table.
type Result struct {
	Table    Table   `json:"table"     yaml:"table"`
	Margins  Margins `json:"margins"   yaml:"margins"`
	Point    float64 `json:"point"     yaml:"point"`
	Left     float64 `json:"left"      yaml:"left"`
	Right    float64 `json:"right"     yaml:"right"`
	TwoSided float64 `json:"two_sided" yaml:"two_sided"`
}

// PValue returns the value of r selected by tail. Unknown tails report the point probability.
func (r Result) PValue(tail Tail) float64 {
	switch tail {
	case TailLeft:
		return r.Left
	case TailRight:
		return r.Right
	case TailTwoSided:
		return r.TwoSided
	default:
		return r.Point
	}
}

// TwoSidedThreshold is the largest point probability an outcome may have
// and still count toward TwoSided. It sits slightly above Point so tables
// tying with the observed one survive rounding.
func (r Result) TwoSidedThreshold() float64 {
	return r.Point * (1 + twoSidedTolerance)
}

// Test runs Fisher's exact test on t. Left is P(X <= A), Right is
// P(X >= A) and TwoSided sums every table no more likely than t.
func Test(t Table) (Result, error) {
	point, err := Probability(t)
	if err != nil {
		return Result{}, err
	}

	dist, err := Distribution(t)
	if err != nil {
		return Result{}, err
	}

	threshold := Result{Point: point}.TwoSidedThreshold()

	var left, right, two float64

	for _, o := range dist {
		if o.A <= t.A {
			left += o.Probability
		}

		if o.A >= t.A {
			right += o.Probability
		}

		if o.Probability <= threshold {
			two += o.Probability
		}
	}

	return Result{
		Table:    t,
		Margins:  t.Margins(),
		Point:    point,
		Left:     mathutil.ClampProbability(left),
		Right:    mathutil.ClampProbability(right),
		TwoSided: mathutil.ClampProbability(two),
	}, nil
}
