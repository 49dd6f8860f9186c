package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillFromBuildInfo(t *testing.T) {
	info := Info{Version: "dev", CommitHash: "dev", BuildTime: "unknown"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, "v1.4.0", info.Version)
	assert.Equal(t, "0123456789abcdef", info.CommitHash)
	assert.Equal(t, "0123456", info.Short())
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
}

func TestFillFromBuildInfo_LdflagsWin(t *testing.T) {
	info := Info{Version: "v2.0.0", CommitHash: "cafebabe", BuildTime: "now"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "other"}},
	})
	assert.Equal(t, "v2.0.0", info.Version)
	assert.Equal(t, "cafebabe", info.CommitHash)
}

func TestSemver(t *testing.T) {
	v, err := Info{Version: "v1.4.0"}.Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Major())

	_, err = Info{Version: "dev"}.Semver()
	assert.Error(t, err)
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abc", Info{CommitHash: "abc"}.Short())
	assert.Contains(t, Info{Version: "v1.0.0", CommitHash: "abcdef123", BuildTime: "t"}.String(), "clientgen v1.0.0 (commit abcdef1")
}
