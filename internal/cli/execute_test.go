package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/twobytwo/internal/cli"
)

func newEchoCmd(stdout, stderr *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echo [flags] <a> <b>",
		Short: "Echo two arguments",
		Long:  "echo: prints two arguments",
		Args:  cli.ExactArgs("a", "b"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "fail" {
				return assert.AnError
			}

			fmt.Fprintln(cmd.OutOrStdout(), args[0], args[1])

			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

func TestExecute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr []string
	}{
		{name: "ok", args: []string{"x", "y"}, wantCode: cli.ExitOK, wantStdout: "x y\n"},
		{name: "help_short", args: []string{"-h"}, wantCode: cli.ExitFailure, wantStderr: []string{"echo: prints two arguments", "Usage:"}},
		{name: "help_long", args: []string{"--help", "x", "y"}, wantCode: cli.ExitFailure, wantStderr: []string{"Usage:"}},
		{name: "too_few", args: []string{"x"}, wantCode: cli.ExitFailure, wantStderr: []string{"Error: expected 2", "Usage:"}},
		{name: "none", args: nil, wantCode: cli.ExitFailure, wantStderr: []string{"Error: expected 2"}},
		{name: "unknown_flag", args: []string{"--bogus", "x", "y"}, wantCode: cli.ExitFailure, wantStderr: []string{"unknown flag", "Usage:"}},
		{name: "run_error", args: []string{"fail", "y"}, wantCode: cli.ExitFailure, wantStderr: []string{"Error: " + assert.AnError.Error()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			code := cli.Execute(context.Background(), newEchoCmd(&stdout, &stderr), tt.args)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())

			for _, want := range tt.wantStderr {
				assert.Contains(t, stderr.String(), want)
			}
		})
	}
}

func TestExecute_RunErrorOmitsUsage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := cli.Execute(context.Background(), newEchoCmd(&stdout, &stderr), []string{"fail", "y"})

	assert.Equal(t, cli.ExitFailure, code)
	assert.NotContains(t, stderr.String(), "Usage:")
}
