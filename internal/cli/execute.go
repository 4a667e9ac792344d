package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs cmd with args and returns the process exit code.
//
// Help (-h/--help) writes usage to the error stream and exits with
// ExitFailure. Usage errors print the message followed by usage; every
// other error prints only the message.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	helped := false

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		helped = true

		writeUsage(c)
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Reason: err.Error()}
	})

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case helped:
		return ExitFailure
	case err == nil:
		return ExitOK
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "Error: %v\n", err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(errOut)
		writeUsage(cmd)
	}

	return ExitFailure
}

func writeUsage(c *cobra.Command) {
	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	fmt.Fprintf(c.ErrOrStderr(), "%s\n\n%s", desc, c.UsageString())
}
