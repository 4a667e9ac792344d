// Package version carries build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/Sumatoshi-tech/twobytwo/pkg/version.Version=v1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// Build metadata. Overridden at link time.
var (
	Version = "dev"     //nolint:gochecknoglobals // set via ldflags.
	Commit  = "none"    //nolint:gochecknoglobals // set via ldflags.
	Date    = "unknown" //nolint:gochecknoglobals // set via ldflags.
)

// InitBinaryVersion fills Version and Commit from the module build info
// when they were not set at link time (e.g. go install).
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" {
				Commit = s.Value
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = s.Value
			}
		}
	}
}

// String renders the build metadata on one line.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
