package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = oldVersion, oldCommit, oldDate })

	Version, Commit, BuildDate = "v0.3.1", "abc1234", "2024-05-01"
	assert.Equal(t, "v0.3.1 (commit: abc1234, built: 2024-05-01)", String())
}
