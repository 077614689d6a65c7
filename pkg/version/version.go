package version

import (
	"fmt"
	"runtime"
)

// Product is the name shown by the version command.
const Product = "web-cli"

var (
	// Build information, overridden with -ldflags "-X" at release time.
	Version   = "1.0"
	Commit    = "unknown"
	Date      = "unknown"
	BuiltBy   = "unknown"
	GoVersion = runtime.Version()
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns version information
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		BuiltBy:   BuiltBy,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the multi-line build report used by the CLI.
func (i Info) String() string {
	return fmt.Sprintf("%s\ncommit: %s\nbuilt: %s\nby: %s\ngo: %s\nplatform: %s",
		i.ShortString(), i.Commit, i.Date, i.BuiltBy, i.GoVersion, i.Platform)
}

// ShortString is the single line printed inside the terminal, e.g. "web-cli v1.0".
func (i Info) ShortString() string {
	return fmt.Sprintf("%s v%s", Product, i.Version)
}
