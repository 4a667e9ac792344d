// Package senspec computes classification performance metrics from a 2x2
// confusion matrix.
//
//	| TP  FP |
//	| FN  TN |
//
// Rates whose denominator is zero are reported as undefined rather than as
// NaN or Inf.
package senspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/twobytwo/pkg/mathutil"
)

// DefaultPrecision is the number of decimal places used for printed rates.
const DefaultPrecision = 6

// Sentinel errors.
var (
	ErrInvalidCount  = errors.New("counts must be finite and non-negative")
	ErrUndefinedRate = errors.New("rate undefined: zero denominator")
)

// Counts is a confusion matrix. Values are floating point so weighted or
// pre-aggregated counts are accepted.
type Counts struct {
	TP float64 `json:"tp" yaml:"tp"`
	FP float64 `json:"fp" yaml:"fp"`
	FN float64 `json:"fn" yaml:"fn"`
	TN float64 `json:"tn" yaml:"tn"`
}

// Validate rejects negative, NaN and infinite counts, and counts whose
// margins or total overflow float64.
func (c Counts) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"TP", c.TP}, {"FP", c.FP}, {"FN", c.FN}, {"TN", c.TN}} {
		if !mathutil.IsFinite(f.v) || f.v < 0 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidCount, f.name, f.v)
		}
	}

	for _, sum := range []struct {
		name string
		v    float64
	}{
		{"TP+FN", c.TP + c.FN},
		{"FP+TN", c.FP + c.TN},
		{"TP+FP", c.TP + c.FP},
		{"TN+FN", c.TN + c.FN},
		{"total", c.Total()},
	} {
		if !mathutil.IsFinite(sum.v) {
			return fmt.Errorf("%w: %s overflows", ErrInvalidCount, sum.name)
		}
	}

	return nil
}

// Total returns the sum of all four cells.
func (c Counts) Total() float64 {
	return c.TP + c.FP + c.FN + c.TN
}

// Metrics holds the rates derived from Counts.
type Metrics struct {
	Counts Counts `json:"counts" yaml:"counts"`

	Sensitivity       Rate `json:"sensitivity"         yaml:"sensitivity"`
	Specificity       Rate `json:"specificity"         yaml:"specificity"`
	FalsePositiveRate Rate `json:"false_positive_rate" yaml:"false_positive_rate"`
	FalseNegativeRate Rate `json:"false_negative_rate" yaml:"false_negative_rate"`

	PositivePredictiveValue Rate `json:"positive_predictive_value" yaml:"positive_predictive_value"`
	NegativePredictiveValue Rate `json:"negative_predictive_value" yaml:"negative_predictive_value"`
	FalseDiscoveryRate      Rate `json:"false_discovery_rate"      yaml:"false_discovery_rate"`
	Accuracy                Rate `json:"accuracy"                  yaml:"accuracy"`
}

// Compute derives every rate from c. It does not validate c.
func Compute(c Counts) Metrics {
	sens := Ratio(c.TP, c.TP+c.FN)
	spec := Ratio(c.TN, c.FP+c.TN)

	return Metrics{
		Counts:                  c,
		Sensitivity:             sens,
		Specificity:             spec,
		FalsePositiveRate:       spec.Complement(),
		FalseNegativeRate:       sens.Complement(),
		PositivePredictiveValue: Ratio(c.TP, c.TP+c.FP),
		NegativePredictiveValue: Ratio(c.TN, c.TN+c.FN),
		FalseDiscoveryRate:      Ratio(c.FP, c.FP+c.TP),
		Accuracy:                Ratio(c.TP+c.TN, c.Total()),
	}
}

// NamedRate pairs a rate with its printed label.
type NamedRate struct {
	Name  string
	Label string
	Rate  Rate
}

// Core returns the four primary rates in print order.
func (m Metrics) Core() []NamedRate {
	return []NamedRate{
		{Name: "sensitivity", Label: "sensitivity (true pos rate)", Rate: m.Sensitivity},
		{Name: "specificity", Label: "specificity (true neg rate)", Rate: m.Specificity},
		{Name: "false_positive_rate", Label: "type I error (false pos rate)", Rate: m.FalsePositiveRate},
		{Name: "false_negative_rate", Label: "type II error (false neg rate)", Rate: m.FalseNegativeRate},
	}
}

// Extended returns the predictive values, FDR and accuracy in print order.
func (m Metrics) Extended() []NamedRate {
	return []NamedRate{
		{Name: "positive_predictive_value", Label: "positive predictive value (precision)", Rate: m.PositivePredictiveValue},
		{Name: "negative_predictive_value", Label: "negative predictive value", Rate: m.NegativePredictiveValue},
		{Name: "false_discovery_rate", Label: "false discovery rate", Rate: m.FalseDiscoveryRate},
		{Name: "accuracy", Label: "accuracy", Rate: m.Accuracy},
	}
}

// Err returns ErrUndefinedRate naming every undefined core rate, or nil.
func (m Metrics) Err() error {
	var undefined []string

	for _, nr := range m.Core() {
		if !nr.Rate.Defined {
			undefined = append(undefined, nr.Name)
		}
	}

	if len(undefined) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUndefinedRate, strings.Join(undefined, ", "))
}
