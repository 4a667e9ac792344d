package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricCalculations       = "twobytwo.calculations"
	metricCalculationSeconds = "twobytwo.calculation.duration"
	metricErrors             = "twobytwo.errors"
	metricUndefinedRates     = "twobytwo.undefined.rates"

	attrStatus = "status"
	attrKind   = "kind"
	attrRate   = "rate"
)

// Calculation statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// durationBucketBoundaries covers 1µs to 1s; calculations are closed-form
// but the exact test enumerates the whole support.
var durationBucketBoundaries = []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1}

// CalcMetrics holds the OTel instruments recorded by each calculator run.
type CalcMetrics struct {
	calculations metric.Int64Counter
	duration     metric.Float64Histogram
	errors       metric.Int64Counter
	undefined    metric.Int64Counter
}

// NewCalcMetrics creates calculator instruments from the given meter.
func NewCalcMetrics(mt metric.Meter) (*CalcMetrics, error) {
	calcs, err := mt.Int64Counter(metricCalculations,
		metric.WithDescription("Completed calculations"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCalculations, err)
	}

	duration, err := mt.Float64Histogram(metricCalculationSeconds,
		metric.WithDescription("Calculation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCalculationSeconds, err)
	}

	errs, err := mt.Int64Counter(metricErrors,
		metric.WithDescription("Rejected invocations by error kind"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricErrors, err)
	}

	undefined, err := mt.Int64Counter(metricUndefinedRates,
		metric.WithDescription("Rates reported as undefined because of a zero margin"),
		metric.WithUnit("{rate}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricUndefinedRates, err)
	}

	return &CalcMetrics{
		calculations: calcs,
		duration:     duration,
		errors:       errs,
		undefined:    undefined,
	}, nil
}

// RecordCalculation records a finished calculation with its status and duration.
func (cm *CalcMetrics) RecordCalculation(ctx context.Context, status string, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String(attrStatus, status))

	cm.calculations.Add(ctx, 1, attrs)
	cm.duration.Record(ctx, d.Seconds(), attrs)
}

// RecordError counts a rejected invocation. kind is "usage", "parse" or "domain".
func (cm *CalcMetrics) RecordError(ctx context.Context, kind string) {
	cm.errors.Add(ctx, 1, metric.WithAttributes(attribute.String(attrKind, kind)))
}

// RecordUndefined counts one undefined rate.
func (cm *CalcMetrics) RecordUndefined(ctx context.Context, rate string) {
	cm.undefined.Add(ctx, 1, metric.WithAttributes(attribute.String(attrRate, rate)))
}
