package config

import (
	"fmt"
)

// Set via -ldflags "-X github.com/bobmcallan/airflow-mcp/internal/config.Version=...".
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// BuildInfo is the build metadata reported by /version and the get_version tool.
type BuildInfo struct {
	Version string `json:"version"`
	Build   string `json:"build,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// Info returns the build metadata of the running binary.
func Info() BuildInfo {
	return BuildInfo{Version: Version, Build: Build, Commit: GitCommit}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns version with build info.
func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", Version, Build, GitCommit)
}

// UserAgent is sent on every Airflow request.
func UserAgent() string {
	return "airflow-mcp/" + Version
}
