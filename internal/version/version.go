// Package version reports what build is running. The variables are set
// with -ldflags "-X github.com/ganilson/synctechSite/internal/version.Version=...".
package version

import (
	"runtime/debug"
	"sync"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// VersionInfo is the build description served on /health and /api/version
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

var (
	buildOnce sync.Once
	vcsCommit string
	vcsTime   string
)

// readBuildInfo fills the VCS stamp `go build` embeds, used when ldflags
// were not given.
func readBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			vcsCommit = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}
}

// Info returns the build description
func Info() VersionInfo {
	buildOnce.Do(readBuildInfo)

	info := VersionInfo{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
	if info.GitCommit == "unknown" && vcsCommit != "" {
		info.GitCommit = vcsCommit
	}
	if info.BuildTime == "unknown" && vcsTime != "" {
		info.BuildTime = vcsTime
	}
	return info
}

// UserAgent names component at the running version, e.g. "synctech-cli/1.2.0"
func UserAgent(component string) string {
	return component + "/" + Version
}
