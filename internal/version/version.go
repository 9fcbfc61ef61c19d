// Package version provides build version information for thebook.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/jpl-au/thebook/internal/version.Version=v1.0.0 \
//	  -X github.com/jpl-au/thebook/internal/version.GitCommit=abc123 \
//	  -X github.com/jpl-au/thebook/internal/version.BuildTime=2026-01-15T10:30:00Z"
//
// When built without ldflags (go install), the commit and build time fall
// back to the VCS stamp Go embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build information. Set via ldflags at build time.
var (
	Version   = "dev"     // Version tag (e.g., "v1.0.0")
	GitCommit = "unknown" // Short git commit hash
	BuildTime = "unknown" // RFC3339 build timestamp
)

// shortCommit is the length commits are cut to for display.
const shortCommit = 7

// readBuildInfo is overridden in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info holds structured version information.
type Info struct {
	BuildTag  string `json:"build_tag"`  // Version tag (e.g., "v1.0.0" or "dev")
	BuildTime string `json:"build_time"` // RFC3339 build timestamp
	GitCommit string `json:"git_commit"` // Short git commit hash
	Modified  bool   `json:"modified"`   // Built from a dirty work tree
	GoVersion string `json:"go_version"` // Go runtime version
	Platform  string `json:"platform"`   // OS and architecture (e.g., "darwin arm64")
}

// Get returns the current version information.
func Get() Info {
	info := Info{
		BuildTag:  Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH),
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value[:min(len(s.Value), shortCommit)]
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	if info.BuildTag == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.BuildTag = bi.Main.Version
	}
	return info
}

// String returns a formatted version string suitable for display.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Build Tag:    %s\n", i.BuildTag)
	fmt.Fprintf(&b, "Build Time:   %s\n", i.BuildTime)
	fmt.Fprintf(&b, "Go Version:   %s\n", i.GoVersion)
	fmt.Fprintf(&b, "Platform:     %s\n", i.Platform)
	commit := i.GitCommit
	if i.Modified {
		commit += " (modified)"
	}
	fmt.Fprintf(&b, "Git Commit:   %s\n", commit)
	return b.String()
}

// Short returns just the version string (e.g., "v1.0.0" or "dev").
func Short() string {
	return Version
}
