package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// ExactArgs requires exactly len(names) positional arguments and reports
// a UsageError naming them otherwise.
func ExactArgs(names ...string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		return CheckArgCount(args, names)
	}
}

// CheckArgCount returns a UsageError unless len(args) == len(names).
func CheckArgCount(args, names []string) error {
	if len(args) != len(names) {
		return NewUsageError("expected %d positional arguments %v, got %d", len(names), names, len(args))
	}

	return nil
}

// ParseInts parses every argument as a base-10 integer. args and names
// must have the same length.
func ParseInts(args, names []string) ([]int, error) {
	err := CheckArgCount(args, names)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(args))

	for i, raw := range args {
		v, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return nil, &ParseError{Position: i + 1, Name: names[i], Value: raw, Err: parseErr}
		}

		out[i] = v
	}

	return out, nil
}

// ParseFloats parses every argument as a 64-bit float. args and names
// must have the same length.
func ParseFloats(args, names []string) ([]float64, error) {
	err := CheckArgCount(args, names)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(args))

	for i, raw := range args {
		v, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return nil, &ParseError{Position: i + 1, Name: names[i], Value: raw, Err: parseErr}
		}

		out[i] = v
	}

	return out, nil
}
