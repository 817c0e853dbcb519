// Package version exposes the build identity stamped via -ldflags.
package version

var (
	// Version is the release version, or a dev placeholder.
	Version = "0.1.0-dev"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"

	// GitCommit is the source commit the binary was built from.
	GitCommit = "unknown"
)
