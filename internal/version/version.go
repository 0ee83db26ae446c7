package version

// Build metadata, overridden with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
