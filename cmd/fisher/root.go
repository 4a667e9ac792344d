package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/twobytwo/internal/cli"
	"github.com/Sumatoshi-tech/twobytwo/pkg/fisher"
	"github.com/Sumatoshi-tech/twobytwo/pkg/plot"
	"github.com/Sumatoshi-tech/twobytwo/pkg/version"
)

const toolName = "fisher"

var cellNames = []string{"a", "b", "c", "d"} //nolint:gochecknoglobals // positional argument names.

const longUsage = `fisher: probability of a 2x2 contingency table under Fisher's exact test

	 _______
	| a | b |
	|___|___|
	| c | d |
	|___|___|

Prints the hypergeometric probability of observing exactly this table with
all four margins fixed, in %e notation. --tail selects a cumulative p-value
instead.`

type rootOptions struct {
	cli.Options

	Tail string
	Plot string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "fisher [flags] <a> <b> <c> <d>",
		Short:   "Hypergeometric probability of a 2x2 table",
		Long:    longUsage,
		Version: version.String(),
		Args:    cli.ExactArgs(cellNames...),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	opts.Bind(cmd)
	cmd.Flags().StringVarP(&opts.Tail, "tail", "t", string(fisher.TailPoint), "p-value to print (point, left, right, two-sided)")
	cmd.Flags().StringVar(&opts.Plot, "plot", "", "write an HTML chart of the distribution to this file")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *rootOptions) error {
	tail, err := fisher.ParseTail(opts.Tail)
	if err != nil {
		return &cli.UsageError{Err: err}
	}

	rt, err := cli.Setup(cmd, toolName, &opts.Options)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	defer rt.Close(ctx)

	var res fisher.Result

	err = rt.Run(ctx, "fisher.test", func(ctx context.Context) error {
		cells, parseErr := cli.ParseInts(args, cellNames)
		if parseErr != nil {
			return parseErr
		}

		table := fisher.Table{A: cells[0], B: cells[1], C: cells[2], D: cells[3]}

		var testErr error

		res, testErr = fisher.Test(table)
		if testErr != nil {
			return fmt.Errorf("fisher %d %d %d %d: %w", table.A, table.B, table.C, table.D, testErr)
		}

		rt.Logger.DebugContext(ctx, "exact test",
			"a", table.A, "b", table.B, "c", table.C, "d", table.D,
			"point", res.Point, "two_sided", res.TwoSided)

		return nil
	})
	if err != nil {
		return err
	}

	if opts.Plot != "" {
		err = writePlot(opts.Plot, res)
		if err != nil {
			return err
		}

		rt.Logger.InfoContext(ctx, "distribution chart written", "path", opts.Plot)
	}

	return writeResult(cmd.OutOrStdout(), rt.Config.Output.Format, rt.Config.Output.Precision, res, tail)
}

func writePlot(path string, res fisher.Result) (err error) {
	dist, err := fisher.Distribution(res.Table)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}

	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("close plot file: %w", closeErr)
		}
	}()

	t := res.Table

	return plot.Write(f, dist, plot.Options{
		Title:     fmt.Sprintf("fisher %d %d %d %d", t.A, t.B, t.C, t.D),
		Observed:  t.A,
		Threshold: res.TwoSidedThreshold(),
	})
}
