// Package version derives the build identity reported in logs and
// user-agent strings. An -ldflags override wins; otherwise the VCS
// revision from debug.BuildInfo; "dev" when neither exists.
package version

import "runtime/debug"

// AppName prefixes every version string.
const AppName = "steward"

// gitCommitOverride is injected with -ldflags for container builds
// that compile without a .git directory.
var gitCommitOverride string

// GitCommit is the short (8 char) commit hash, or "dev" under go test
// and other non-VCS builds.
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return shorten(s.Value)
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "steward/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
