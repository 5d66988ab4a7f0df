// Package initialize implements the "init" command: scaffold a new toolup
// workspace.
package initialize

import (
	"github.com/toolup-cli/toolup/pkg/filesystem"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/types"
	"github.com/toolup-cli/toolup/pkg/workspace"
)

// Options defines the options for the InitWorkspace command.
type Options struct {
	// WorkspaceRoot is the path to the workspace root directory.
	WorkspaceRoot string

	// Force overwrites scaffold files that already exist.
	Force bool

	// FS is the filesystem used for persistence. Defaults to the OS
	// filesystem when nil.
	FS types.FS
}

// InitWorkspace scaffolds the workspace directory tree, starter
// configuration, and agent role prompts.
func InitWorkspace(opts Options) (*workspace.InitResult, error) {
	log := logging.GetLogger("commands.initialize")
	log.Debug().Str("command", "InitWorkspace").Str("root", opts.WorkspaceRoot).Msg("Executing command")

	filesys := opts.FS
	if filesys == nil {
		filesys = filesystem.NewOS()
	}

	result, err := workspace.Init(filesys, workspace.InitOptions{
		Root:  opts.WorkspaceRoot,
		Force: opts.Force,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "InitWorkspace").Int("created", len(result.Created)).Msg("Command finished")
	return result, nil
}
