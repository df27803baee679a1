// Package misc provides program identity and build metadata helpers.
package misc

import "runtime/debug"

const appName = "cssc"

// version is set at build time via -ldflags "-X cssc/misc.version=...".
var version = "development"

// GetAppName returns program name to be used in logs and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns vcs revision recorded in the build info, if any.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
