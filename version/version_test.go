package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion failed: expected dev, got %v", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-01-01"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	expected := "1.2.0 (commit abc123, built 2026-01-01)"
	if got := GetFullVersion(); got != expected {
		t.Errorf("GetFullVersion failed: expected %v, got %v", expected, got)
	}
}
