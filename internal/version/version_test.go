package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVersion(t *testing.T) {
	assert.NoError(t, ValidateVersion())
}

func TestGetInfo(t *testing.T) {
	info, err := GetInfo()
	require.NoError(t, err)

	assert.Equal(t, Version, info.Version)
	assert.NotNil(t, info.SemVer)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestGetFormattedVersion(t *testing.T) {
	formatted := GetFormattedVersion()

	assert.True(t, strings.HasPrefix(formatted, "SentiBot v"), "got %q", formatted)
	assert.Contains(t, formatted, Version)
}

func TestGetFormattedVersion_WithBuildInfo(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit = "abcdef1234567890"
	BuildDate = "2026-08-23"

	formatted := GetFormattedVersion()
	assert.Contains(t, formatted, "commit abcdef1")
	assert.Contains(t, formatted, "built 2026-08-23")
}
