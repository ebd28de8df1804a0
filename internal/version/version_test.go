package version

import "testing"

func TestDefaults(t *testing.T) {
	// Unless ldflags set them, all build info fields stay at their sentinel.
	for name, v := range map[string]string{
		"Version":   Version,
		"BuildTime": BuildTime,
		"GitCommit": GitCommit,
	} {
		if v == "" {
			t.Errorf("%s should never be empty", name)
		}
	}
}
