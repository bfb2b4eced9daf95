// Package version carries build metadata set with -ldflags -X.
package version

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String renders the version with its commit, e.g. "v0.3.1 (1a2b3c4)".
func String() string {
	return Version + " (" + GitSHA + ")"
}
