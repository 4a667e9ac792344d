// Package main provides the senspec CLI entry point.
package main

import (
	"context"
	"os"

	"github.com/Sumatoshi-tech/twobytwo/internal/cli"
	"github.com/Sumatoshi-tech/twobytwo/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	os.Exit(cli.Execute(context.Background(), newRootCmd(), os.Args[1:]))
}
