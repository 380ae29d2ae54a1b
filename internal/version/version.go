// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/jhowell728/fsb/internal/version.Version=v1.2.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
