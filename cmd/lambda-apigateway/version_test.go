package main

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	version := getVersion()

	if version == "" {
		t.Error("getVersion() returned empty string")
	}

	// Under "go test" the build info carries no release version, so this
	// should be "dev"; an installed binary reports its module version.
	if version != "dev" && !strings.HasPrefix(version, "v") {
		t.Errorf("getVersion() = %q, want 'dev' or 'vX.Y.Z'", version)
	}
}
