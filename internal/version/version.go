package version

// Build metadata injected via -ldflags; the defaults identify a local
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	Dirty   = "false"
)
