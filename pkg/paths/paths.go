// Package paths centralizes workspace path handling for toolup.
package paths

import (
	"os"
	"path/filepath"

	"github.com/toolup-cli/toolup/pkg/errors"
)

// EnvWorkspaceRoot overrides the workspace root directory.
const EnvWorkspaceRoot = "TOOLUP_WORKSPACE"

// ToolupDirName is the directory holding generated artifacts inside a
// workspace. Its layout is not user-configurable; the file names within it
// are (see catalog.Settings).
const ToolupDirName = ".toolup"

// RolesDirName is the directory holding rendered agent role prompts.
const RolesDirName = "roles"

// WorkspaceRoot returns the workspace root: TOOLUP_WORKSPACE when set,
// otherwise the current working directory.
func WorkspaceRoot() (string, error) {
	if root := os.Getenv(EnvWorkspaceRoot); root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to determine working directory")
	}
	return cwd, nil
}

// ArtifactsDir returns the directory generated artifacts are written to.
func ArtifactsDir(root string) string {
	return filepath.Join(root, ToolupDirName)
}

// RolesDir returns the directory rendered role prompts are written to.
func RolesDir(root string) string {
	return filepath.Join(ArtifactsDir(root), RolesDirName)
}
