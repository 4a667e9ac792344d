package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/twobytwo/internal/cli"
	"github.com/Sumatoshi-tech/twobytwo/pkg/config"
	"github.com/Sumatoshi-tech/twobytwo/pkg/senspec"
	"github.com/Sumatoshi-tech/twobytwo/pkg/version"
)

const toolName = "senspec"

var cellNames = []string{"TP", "FP", "FN", "TN"} //nolint:gochecknoglobals // positional argument names.

const longUsage = `senspec: sensitivity, specificity and error rates of a binary classifier

	 _________
	| TP | FP |
	|____|____|
	| FN | TN |
	|____|____|

Counts may be fractional. Run with -d for the definition of every metric.`

type rootOptions struct {
	cli.Options

	Definitions bool
	Extended    bool
	Color       bool
	NoColor     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "senspec [flags] <TP> <FP> <FN> <TN>",
		Short:   "Sensitivity, specificity and type I/II error rates of a 2x2 table",
		Long:    longUsage,
		Version: version.String(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	opts.Bind(cmd)

	fs := cmd.Flags()
	fs.BoolVarP(&opts.Definitions, "definitions", "d", false, "print the definition of every metric and exit")
	fs.BoolVar(&opts.Extended, "extended", false, "also print predictive values, FDR and accuracy")
	fs.BoolVar(&opts.Color, "color", false, "always color rates")
	fs.BoolVar(&opts.NoColor, "no-color", false, "never color rates")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *rootOptions) error {
	if opts.Definitions {
		_, err := fmt.Fprint(cmd.OutOrStdout(), senspec.Glossary())
		if err != nil {
			return fmt.Errorf("write definitions: %w", err)
		}

		return nil
	}

	err := cli.CheckArgCount(args, cellNames)
	if err != nil {
		return err
	}

	if opts.Color && opts.NoColor {
		return cli.NewUsageError("--color and --no-color are mutually exclusive")
	}

	rt, err := cli.Setup(cmd, toolName, &opts.Options)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	defer rt.Close(ctx)

	var metrics senspec.Metrics

	err = rt.Run(ctx, "senspec.compute", func(ctx context.Context) error {
		cells, parseErr := cli.ParseFloats(args, cellNames)
		if parseErr != nil {
			return parseErr
		}

		counts := senspec.Counts{TP: cells[0], FP: cells[1], FN: cells[2], TN: cells[3]}

		validateErr := counts.Validate()
		if validateErr != nil {
			return validateErr
		}

		metrics = senspec.Compute(counts)

		return nil
	})
	if err != nil {
		return err
	}

	reportUndefined(ctx, rt, metrics)

	out := output{
		Format:    rt.Config.Output.Format,
		Precision: rt.Config.Output.Precision,
		Extended:  opts.Extended,
		Colors:    colorEnabled(rt.Config.Output.Color, opts),
	}

	return out.write(cmd.OutOrStdout(), metrics)
}

// reportUndefined logs and counts every rate with a zero denominator.
// Undefined rates are printed, not treated as failures.
func reportUndefined(ctx context.Context, rt *cli.Runtime, m senspec.Metrics) {
	err := m.Err()
	if err != nil {
		rt.Logger.WarnContext(ctx, "some rates are undefined", "error", err)
	}

	for _, nr := range append(m.Core(), m.Extended()...) {
		if !nr.Rate.Defined {
			rt.Metrics.RecordUndefined(ctx, nr.Name)
		}
	}
}

// colorEnabled resolves the configured color mode against --color and
// --no-color. Auto follows terminal detection on stdout.
func colorEnabled(mode string, opts *rootOptions) bool {
	switch {
	case opts.Color:
		mode = config.ColorAlways
	case opts.NoColor:
		mode = config.ColorNever
	}

	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return !color.NoColor
	default:
		return false
	}
}
