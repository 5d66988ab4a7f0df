// pkg/commands/list/list_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test catalog listing and early validation of broken workspaces

package list_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolup-cli/toolup/pkg/commands/list"
	"github.com/toolup-cli/toolup/pkg/errors"
)

func TestListComponents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "toolup.toml"), []byte(`
[[component]]
id = "ripgrep"
name = "ripgrep"
description = "Fast recursive grep"
install = ["apt install ripgrep"]

  [[component.env]]
  name = "RIPGREP_CONFIG_PATH"
  secret = false

  [[component.env]]
  name = "RG_TOKEN"
  secret = true
`), 0644))

	result, err := list.ListComponents(list.Options{WorkspaceRoot: root})
	require.NoError(t, err)

	var rg *list.ComponentInfo
	ids := make([]string, 0, len(result.Components))
	for i := range result.Components {
		ids = append(ids, result.Components[i].ID)
		if result.Components[i].ID == "ripgrep" {
			rg = &result.Components[i]
		}
	}

	assert.IsIncreasing(t, ids, "components are sorted by id")
	require.NotNil(t, rg)
	assert.Equal(t, "ripgrep", rg.DisplayName)
	assert.Equal(t, 2, rg.EnvVars)
	assert.Equal(t, 1, rg.Secrets)
}

func TestListComponentsRejectsBrokenCatalog(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "toolup.toml"), []byte(`
[[component]]
id = "broken"
dependencies = ["missing"]
`), 0644))

	_, err := list.ListComponents(list.Options{WorkspaceRoot: root})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrComponentNotFound))
}
