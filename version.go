package main

import "fmt"

const GensetVersion = "0.1.0"

var (
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildID   string = "unknown"
	buildDate string = "unknown"
)

// FullVersion appends git commit and working tree status when the build was
// stamped via ldflags.
func FullVersion() string {
	version := GensetVersion
	if gitSHA1 != "unknown" {
		version = fmt.Sprintf("%s (git:%s", version, gitSHA1)
		if gitDirty != "unknown" && gitDirty != "0" {
			version += "-dirty"
		}
		version += ")"
	}
	return version
}

func BuildIdRaw() string {
	return buildID + buildDate + gitSHA1 + gitDirty
}
