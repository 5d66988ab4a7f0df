// Package workspace scaffolds a toolup workspace: the artifact directory,
// a starter configuration file, and rendered agent role prompts.
package workspace

import (
	"bytes"
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/toolup-cli/toolup/pkg/errors"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/paths"
	"github.com/toolup-cli/toolup/pkg/types"
)

//go:embed templates/*.md.tmpl
var roleTemplates embed.FS

//go:embed templates/toolup.toml.tmpl
var starterConfig string

// templateSuffix marks embedded role prompt templates.
const templateSuffix = ".md.tmpl"

// InitOptions configures workspace initialization.
type InitOptions struct {
	// Root is the workspace root directory.
	Root string

	// Force overwrites files that already exist.
	Force bool
}

// InitResult reports what initialization created.
type InitResult struct {
	// Created lists the paths written, relative to the workspace root.
	Created []string

	// Skipped lists paths left untouched because they already existed.
	Skipped []string
}

// roleData is the data passed to role prompt templates.
type roleData struct {
	Workspace string
	Role      string
}

// Init scaffolds the workspace. Existing files are never overwritten unless
// Force is set; they are reported as skipped instead.
func Init(filesys types.FS, opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("workspace")
	result := &InitResult{}

	if err := filesys.MkdirAll(paths.RolesDir(opts.Root), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create workspace directories")
	}

	workspaceName := filepath.Base(opts.Root)

	if err := writeIfAbsent(filesys, opts, result, "toolup.toml", []byte(starterConfig)); err != nil {
		return nil, err
	}

	roles, err := renderRoles(workspaceName)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		rel := filepath.Join(paths.ToolupDirName, paths.RolesDirName, role.name+".md")
		if err := writeIfAbsent(filesys, opts, result, rel, role.content); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("root", opts.Root).
		Int("created", len(result.Created)).
		Int("skipped", len(result.Skipped)).
		Msg("Workspace initialized")
	return result, nil
}

type renderedRole struct {
	name    string
	content []byte
}

// renderRoles renders every embedded role template, sorted by role name so
// the scaffold output order is stable.
func renderRoles(workspaceName string) ([]renderedRole, error) {
	entries, err := fs.ReadDir(roleTemplates, "templates")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to list role templates")
	}

	var roles []renderedRole
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), templateSuffix) {
			continue
		}
		role := strings.TrimSuffix(entry.Name(), templateSuffix)

		raw, err := fs.ReadFile(roleTemplates, "templates/"+entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to read role template %s", entry.Name())
		}

		tmpl, err := template.New(role).Parse(string(raw))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to parse role template %s", entry.Name())
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, roleData{Workspace: workspaceName, Role: role}); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to render role template %s", entry.Name())
		}
		roles = append(roles, renderedRole{name: role, content: buf.Bytes()})
	}

	sort.Slice(roles, func(i, j int) bool { return roles[i].name < roles[j].name })
	return roles, nil
}

func writeIfAbsent(filesys types.FS, opts InitOptions, result *InitResult, rel string, content []byte) error {
	path := filepath.Join(opts.Root, rel)

	if !opts.Force {
		if _, err := filesys.Stat(path); err == nil {
			result.Skipped = append(result.Skipped, rel)
			return nil
		}
	}

	if err := filesys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", rel)
	}
	if err := filesys.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", rel)
	}
	result.Created = append(result.Created, rel)
	return nil
}
