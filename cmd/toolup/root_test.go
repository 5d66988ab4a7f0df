// cmd/toolup/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs), environment variables
// PURPOSE: Test CLI wiring end to end: init, setup list, setup gen

package toolup_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolup-cli/toolup/cmd/toolup"
)

func runCommand(t *testing.T, workspace string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TOOLUP_WORKSPACE", workspace)

	var out bytes.Buffer
	cmd := toolup.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSetupListShowsEmbeddedCatalog(t *testing.T) {
	out, err := runCommand(t, t.TempDir(), "setup", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "git")
	assert.Contains(t, out, "gh")
	assert.Contains(t, out, "just")
	assert.Contains(t, out, "depends on: git")
}

func TestSetupGenWritesArtifacts(t *testing.T) {
	workspace := t.TempDir()

	out, err := runCommand(t, workspace, "setup", "gen", "gh")
	require.NoError(t, err)
	assert.Contains(t, out, "Install order: git -> gh")

	script, err := os.ReadFile(filepath.Join(workspace, ".toolup", "setup.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(script), "# component: gh")
}

func TestSetupGenUnknownComponentFails(t *testing.T) {
	_, err := runCommand(t, t.TempDir(), "setup", "gen", "no-such-tool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-tool")
}

func TestInitScaffolds(t *testing.T) {
	workspace := t.TempDir()

	out, err := runCommand(t, workspace, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "toolup.toml")

	_, statErr := os.Stat(filepath.Join(workspace, ".toolup", "roles", "implementer.md"))
	assert.NoError(t, statErr)
}

func TestTopicsListsAndRenders(t *testing.T) {
	out, err := runCommand(t, t.TempDir(), "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "setup")

	out, err = runCommand(t, t.TempDir(), "topics", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "setup.sh")

	_, err = runCommand(t, t.TempDir(), "topics", "nope")
	require.Error(t, err)
}
