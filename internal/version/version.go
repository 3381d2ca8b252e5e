// Package version holds the release number compared against the update
// manifest.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/lcarotenuto/questionario-ampasilava/internal/version.Version=1.2.3".
var Version = "1.0.0"
