package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Name is the program name used in version output and the UI header.
const Name = "lunitool"

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/lunitool/lunitool/internal/version.Version=v0.3.0 \
//	                   -X github.com/lunitool/lunitool/internal/version.Commit=abc123"
//
// Otherwise they are derived from VCS build info, or fall back to "dev".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		Version, Commit = fromBuildInfo(Version, Commit)
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of version and commit is empty from the
// vcs.* settings embedded by the Go toolchain.
func fromBuildInfo(version, commit string) (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return versionFromSettings(version, commit, info.Main.Version, settings)
}

func versionFromSettings(version, commit, moduleVersion string, settings map[string]string) (string, string) {
	if commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}

	if version == "" {
		switch {
		case moduleVersion != "" && moduleVersion != "(devel)":
			version = moduleVersion
		case settings["vcs.time"] != "":
			if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
				version = fmt.Sprintf("dev-%s", t.Format("20060102"))
			}
		}
	}
	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// String returns "lunitool <version> (commit: <sha>)".
func String() string {
	return Name + " " + Full()
}
