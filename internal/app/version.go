package app

import "fmt"

// Build metadata for the tracker binary, stamped by the release pipeline:
//
//	go build -ldflags "-X github.com/heartmarshall/material-tracker/internal/app.Version=$(git describe --tags)"
//
// An unstamped local build reports itself as "dev".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the stamped metadata as a single line for the startup
// log and the /health response.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
