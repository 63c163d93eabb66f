package sploitkit

import (
	"fmt"
	"runtime"
)

var (
	// Version is the library semantic version (injected at build time optionally).
	Version = "v0.1.0"
	// GitCommit is the git SHA (inject via -ldflags at build time).
	GitCommit = "unknown"
	// GoVersion records the Go toolchain version used.
	GoVersion = runtime.Version()
)

// GetVersion returns a human-readable version string, useful for the banner
// line of tools built on the kit.
func GetVersion() string {
	return fmt.Sprintf("sploitkit %s (commit: %s, go: %s)", Version, GitCommit, GoVersion)
}
