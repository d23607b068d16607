package version

// Version is overridden at release time via -ldflags "-X cpgscan/internal/version.Version=...".
var Version = "dev"
