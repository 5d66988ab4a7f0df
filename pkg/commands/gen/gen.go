// Package gen implements the "setup gen" command: resolve an install order
// for the selected components, generate the install script, merge the
// environment documents, and persist the results atomically.
package gen

import (
	"io/fs"
	"path/filepath"

	"github.com/toolup-cli/toolup/pkg/catalog"
	"github.com/toolup-cli/toolup/pkg/envfile"
	"github.com/toolup-cli/toolup/pkg/filesystem"
	"github.com/toolup-cli/toolup/pkg/graph"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/paths"
	"github.com/toolup-cli/toolup/pkg/script"
	"github.com/toolup-cli/toolup/pkg/types"
)

// Options defines the options for the GenerateSetup command.
type Options struct {
	// WorkspaceRoot is the path to the workspace root directory.
	WorkspaceRoot string

	// Selected are the requested component ids. Empty selects the whole
	// catalog.
	Selected []string

	// FS is the filesystem used for persistence. Defaults to the OS
	// filesystem when nil.
	FS types.FS
}

// FileStatus reports the persistence outcome for one artifact.
type FileStatus struct {
	// Path is the artifact location, relative to the workspace root.
	Path string

	// Written is false when the file already had identical content.
	Written bool
}

// Result describes a completed generation run.
type Result struct {
	// Order is the resolved install order.
	Order []string

	// Files are the artifacts, in the order they were persisted.
	Files []FileStatus
}

// GenerateSetup runs the full pipeline: load catalog, build graph, resolve,
// generate script text, merge env documents, and write the three artifacts.
// All output strings are fully materialized before the first write, so a
// failure in any step leaves every existing artifact untouched.
func GenerateSetup(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.gen")
	log.Debug().Str("command", "GenerateSetup").Strs("selected", opts.Selected).Msg("Executing command")

	filesys := opts.FS
	if filesys == nil {
		filesys = filesystem.NewOS()
	}

	cfg, err := catalog.Load(opts.WorkspaceRoot)
	if err != nil {
		return nil, err
	}

	g, err := graph.Build(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	selected := make([]types.ComponentID, 0, len(opts.Selected))
	if len(opts.Selected) == 0 {
		selected = cfg.Catalog.IDs()
	} else {
		for _, id := range opts.Selected {
			selected = append(selected, types.ComponentID(id))
		}
	}

	order, err := g.Resolve(selected)
	if err != nil {
		return nil, err
	}

	artifactsDir := paths.ArtifactsDir(opts.WorkspaceRoot)
	scriptPath := filepath.Join(artifactsDir, cfg.Settings.Script)
	envPath := filepath.Join(artifactsDir, cfg.Settings.Env)
	secretsPath := filepath.Join(artifactsDir, cfg.Settings.Secrets)

	existingPlain, err := filesystem.ReadFileIfExists(filesys, envPath)
	if err != nil {
		return nil, err
	}
	existingSecret, err := filesystem.ReadFileIfExists(filesys, secretsPath)
	if err != nil {
		return nil, err
	}

	scriptText := script.GenerateInstallScript(order, cfg.Catalog)
	docs, err := envfile.Merge(order, cfg.Catalog, existingPlain, existingSecret)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, id := range order {
		result.Order = append(result.Order, id.String())
	}

	writes := []struct {
		path    string
		content string
		perm    fs.FileMode
	}{
		{scriptPath, scriptText, 0755},
		{envPath, docs.Plain, 0644},
		// Secrets are readable by the owner only.
		{secretsPath, docs.Secret, 0600},
	}
	for _, w := range writes {
		written, err := filesystem.WriteFileAtomic(filesys, w.path, []byte(w.content), w.perm)
		if err != nil {
			return nil, err
		}
		rel, relErr := filepath.Rel(opts.WorkspaceRoot, w.path)
		if relErr != nil {
			rel = w.path
		}
		result.Files = append(result.Files, FileStatus{Path: rel, Written: written})
	}

	log.Info().
		Str("command", "GenerateSetup").
		Int("components", len(result.Order)).
		Msg("Command finished")
	return result, nil
}
