package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGet_LdflagsWin(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
		},
	}, true)

	orig := GitCommit
	GitCommit = "abc123"
	t.Cleanup(func() { GitCommit = orig })

	assert.Equal(t, "abc123", Get().GitCommit)
}

func TestGet_VCSFallback(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-15T10:30:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)

	info := Get()
	assert.Equal(t, "0123456", info.GitCommit)
	assert.Equal(t, "2026-01-15T10:30:00Z", info.BuildTime)
	assert.Equal(t, "v1.2.3", info.BuildTag)
	assert.True(t, info.Modified)
	assert.Contains(t, info.String(), "0123456 (modified)")
}

func TestGet_NoBuildInfo(t *testing.T) {
	withBuildInfo(t, nil, false)

	info := Get()
	assert.Equal(t, Version, info.BuildTag)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.Contains(t, info.String(), "Build Tag:    dev")
}
