// Package misc keeps build time program information.
package misc

import (
	"runtime/debug"
)

// set with -ldflags "-X thr/misc.version=... -X thr/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
)

const appName = "thr"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit hash program was built from, falls back to VCS
// information embedded by go build.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
