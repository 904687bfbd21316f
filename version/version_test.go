package version

import (
	"strings"
	"testing"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	for _, want := range []string{"Version: " + Version, "Commit: " + CommitHash, "Build Time: " + BuildTime} {
		if !strings.Contains(info, want) {
			t.Fatalf("build info missing %q: %q", want, info)
		}
	}
}
