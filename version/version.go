package version

// Version info injected via ldflags at build time
var (
	// Version is set via -ldflags "-X tracker/version.Version=x.x.x"
	Version = "1.0.0"

	// CommitHash is set via -ldflags "-X tracker/version.CommitHash=xxx"
	CommitHash = "unknown"

	// BuildTime is set via -ldflags "-X tracker/version.BuildTime=xxx"
	BuildTime = "unknown"
)

// GetBuildInfo returns build metadata
func GetBuildInfo() string {
	return "Version: " + Version + "\nCommit: " + CommitHash + "\nBuild Time: " + BuildTime
}
