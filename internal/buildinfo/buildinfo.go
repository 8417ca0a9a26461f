// Package buildinfo identifies the running binary in window titles and logs.
package buildinfo

import "runtime/debug"

// Version and Commit are set at build time via -ldflags "-X".
var (
	Version = "dev"
	Commit  = ""
)

// Short returns the release version, else a short VCS revision, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	rev := Commit
	if rev == "" {
		rev = vcsRevision()
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" {
		return rev
	}
	return "dev"
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
