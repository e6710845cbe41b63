package version

import "fmt"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version populated via -ldflags.
func Version() string { return version }

// String returns the full build description.
func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}
