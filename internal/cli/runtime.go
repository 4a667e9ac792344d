package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/twobytwo/pkg/config"
	"github.com/Sumatoshi-tech/twobytwo/pkg/observability"
	"github.com/Sumatoshi-tech/twobytwo/pkg/version"
)

// Options are the flags shared by both calculators.
type Options struct {
	ConfigFile  string
	Format      string
	LogLevel    string
	MetricsFile string
	Precision   int
	LogJSON     bool
}

// Bind registers the shared flags on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&o.ConfigFile, "config", "", "config file (default: ./twobytwo.yaml, then $HOME/.config/twobytwo/twobytwo.yaml)")
	fs.StringVarP(&o.Format, "format", "f", config.DefaultOutputFormat, "output format (text, json, yaml, table)")
	fs.IntVarP(&o.Precision, "precision", "p", config.DefaultOutputPrecision, "digits after the decimal point")
	fs.StringVar(&o.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&o.LogJSON, "log-json", config.DefaultLogJSON, "emit logs as JSON")
	fs.StringVar(&o.MetricsFile, "metrics-file", "", "write calculation metrics to this Prometheus textfile")
}

// Runtime is the per-invocation environment handed to a calculator.
type Runtime struct {
	Config  *config.Config
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.CalcMetrics

	shutdown func(context.Context) error
}

// Setup loads configuration, applies flag overrides and starts telemetry
// for tool. The caller must Close the returned Runtime.
func Setup(cmd *cobra.Command, tool string, opts *Options) (*Runtime, error) {
	cfg, err := config.LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	applyOverrides(cmd, cfg, opts)

	err = cfg.Validate()
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Environment = cfg.Telemetry.Environment
	obsCfg.Tool = tool
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.MetricsFile = cfg.Telemetry.MetricsFile
	obsCfg.LogLevel = cfg.LogLevel()
	obsCfg.LogJSON = cfg.Logging.JSON
	obsCfg.LogOutput = cmd.ErrOrStderr()

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	metrics, err := observability.NewCalcMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	return &Runtime{
		Config:   cfg,
		Logger:   providers.Logger,
		Tracer:   providers.Tracer,
		Metrics:  metrics,
		shutdown: providers.Shutdown,
	}, nil
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config, opts *Options) {
	fs := cmd.Flags()

	if fs.Changed("format") {
		cfg.Output.Format = opts.Format
	}

	if fs.Changed("precision") {
		cfg.Output.Precision = opts.Precision
	}

	if fs.Changed("log-level") {
		cfg.Logging.Level = opts.LogLevel
	}

	if fs.Changed("log-json") {
		cfg.Logging.JSON = opts.LogJSON
	}

	if fs.Changed("metrics-file") {
		cfg.Telemetry.MetricsFile = opts.MetricsFile
	}
}

// Run executes calc inside a span named op and records its outcome.
func (r *Runtime) Run(ctx context.Context, op string, calc func(ctx context.Context) error) error {
	ctx, span := r.Tracer.Start(ctx, op)
	defer span.End()

	start := time.Now()
	err := calc(ctx)
	elapsed := time.Since(start)

	if err != nil {
		kind := Kind(err)

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("error.kind", kind))

		r.Metrics.RecordError(ctx, kind)
		r.Metrics.RecordCalculation(ctx, observability.StatusError, elapsed)
		r.Logger.DebugContext(ctx, "calculation rejected", "op", op, "kind", kind, "error", err)

		return err
	}

	r.Metrics.RecordCalculation(ctx, observability.StatusOK, elapsed)
	r.Logger.DebugContext(ctx, "calculation done", "op", op, "elapsed", elapsed)

	return nil
}

// Close flushes telemetry. Failures are logged, not returned.
func (r *Runtime) Close(ctx context.Context) {
	err := r.shutdown(ctx)
	if err != nil {
		r.Logger.WarnContext(ctx, "telemetry shutdown failed", "error", err)
	}
}
