// Package version provides version information for the mlbundle CLI.
package version

import (
	"fmt"
	"runtime"

	"github.com/opmodel/mlbundle/internal/bundle"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version" yaml:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate" yaml:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// SchemaVersion is the default bundle schema version.
	SchemaVersion string `json:"schemaVersion" yaml:"schemaVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		SchemaVersion: bundle.SchemaVersion,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("mlbundle:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\nBundle:\n  Schema Version: %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.SchemaVersion)
}
