package version

import "fmt"

// 发布构建通过 -ldflags 覆盖，本地构建保持 dev/unknown
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the short form used in startup logs.
func Info() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}

// Full is the long form printed by the -version flag.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
