package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.10.0", "1.9.0", true},
		{"v2.0.0", "1.99.99", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3-dirty", false},
		{"1.2.2", "1.2.3", false},
		{"garbage", "0.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.latest+"_vs_"+tt.current, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewer(tt.latest, tt.current))
		})
	}
}

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	t.Cleanup(func() {
		Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
	})

	Version, Commit, BuildTime = "1.0.0", "", ""
	assert.Equal(t, "1.0.0 (development)", FormatVersion())

	Commit = "abc1234"
	assert.Equal(t, "1.0.0 (commit: abc1234)", FormatVersion())

	BuildTime = "2024-02-01T08:00:00Z"
	assert.Equal(t, "1.0.0 (commit: abc1234, built at: 2024-02-01T08:00:00Z)", FormatVersion())

	Version = ""
	assert.Equal(t, "0.0.0-dev (commit: abc1234, built at: 2024-02-01T08:00:00Z)", FormatVersion())
}
