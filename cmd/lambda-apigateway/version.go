package main

import "runtime/debug"

// version can be injected at build time: -ldflags "-X main.version=v1.0.0"
var version = ""

// getVersion resolves the version to report: the ldflags value when set, the
// module version from build info when installed via "go install @version",
// otherwise "dev".
func getVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}

	return "dev"
}
