package version

import (
	"strings"
	"testing"
)

func TestVersionFromSettings(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		commit      string
		modVersion  string
		settings    map[string]string
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "ldflags win",
			version:     "v1.0.0",
			commit:      "abc",
			settings:    map[string]string{"vcs.revision": "0123456789"},
			wantVersion: "v1.0.0",
			wantCommit:  "abc",
		},
		{
			name:        "dirty tree",
			settings:    map[string]string{"vcs.revision": "0123456789abcdef", "vcs.modified": "true", "vcs.time": "2025-03-04T10:00:00Z"},
			modVersion:  "(devel)",
			wantVersion: "dev-20250304",
			wantCommit:  "0123456-dirty",
		},
		{
			name:        "module version",
			modVersion:  "v0.2.1",
			settings:    map[string]string{},
			wantVersion: "v0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := versionFromSettings(tt.version, tt.commit, tt.modVersion, tt.settings)
			if v != tt.wantVersion || c != tt.wantCommit {
				t.Errorf("versionFromSettings() = (%q, %q), want (%q, %q)", v, c, tt.wantVersion, tt.wantCommit)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "lunitool ") || !strings.Contains(s, "(commit: ") {
		t.Errorf("String() = %q, want lunitool <version> (commit: <sha>)", s)
	}
}
