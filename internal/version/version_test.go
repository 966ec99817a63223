package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevVersion(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "ReflectivEI dev", GetShortVersion())
	assert.Contains(t, GetVersionInfo(), "ReflectivEI dev (")
}

func TestReleaseVersion(t *testing.T) {
	old := Version
	Version, Commit, Date = "v1.2.0", "abc123", "2026-10-01"
	t.Cleanup(func() { Version, Commit, Date = old, "none", "unknown" })

	assert.Equal(t, "v1.2.0", GetVersion())
	assert.Equal(t, "ReflectivEI v1.2.0", GetShortVersion())
	assert.Contains(t, GetVersionInfo(), "commit: abc123")
}
