// Package version carries build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/n3il-kb/portfolio/pkg/version.Version=...".
var (
	Version = "dev"
	Commit  = "<unknown>"
	Date    = ""
)

// Info is the resolved build metadata.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Get returns the build metadata, falling back to the VCS revision recorded
// by the Go toolchain when Commit was not injected.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}

	if bi, ok := debug.ReadBuildInfo(); ok && info.Commit == "<unknown>" {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			}
		}
	}

	return info
}

// String renders "portfolio <version> (<commit>, <go version>)".
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > shortHash {
		commit = commit[:shortHash]
	}

	return fmt.Sprintf("portfolio %s (%s, %s)", i.Version, commit, i.GoVersion)
}

const shortHash = 12
