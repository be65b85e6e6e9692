package version

import "fmt"

// Set at build time with -ldflags "-X ipecho/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("ipecho %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}

// Fields returns the build metadata as structured log key/value pairs.
func Fields() []interface{} {
	return []interface{}{"version", Version, "commit", Commit, "built", BuildDate}
}
