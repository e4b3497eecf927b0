package version

// Version is overridden at build time with -ldflags "-X github.com/c9s/tastream/pkg/version.Version=..."
var Version = "v0.1.0-dev"

// BuildTime is set by the release build
var BuildTime = ""

func String() string {
	if BuildTime == "" {
		return Version
	}
	return Version + " (" + BuildTime + ")"
}
