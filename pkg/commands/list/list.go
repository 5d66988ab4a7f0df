// Package list implements the "setup list" command: a read-only view of
// the component catalog.
package list

import (
	"github.com/toolup-cli/toolup/pkg/catalog"
	"github.com/toolup-cli/toolup/pkg/graph"
	"github.com/toolup-cli/toolup/pkg/logging"
)

// Options defines the options for the ListComponents command.
type Options struct {
	// WorkspaceRoot is the path to the workspace root directory.
	WorkspaceRoot string
}

// ComponentInfo is one catalog entry in list output.
type ComponentInfo struct {
	ID           string
	DisplayName  string
	Description  string
	Dependencies []string
	EnvVars      int
	Secrets      int
}

// Result holds the catalog contents in ascending id order.
type Result struct {
	Components []ComponentInfo
}

// ListComponents loads the catalog and returns its components sorted by id.
// The catalog is validated by building the dependency graph, so a broken
// workspace file is reported here instead of surfacing later during gen.
func ListComponents(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListComponents").Msg("Executing command")

	cfg, err := catalog.Load(opts.WorkspaceRoot)
	if err != nil {
		return nil, err
	}
	if _, err := graph.Build(cfg.Catalog); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, id := range cfg.Catalog.IDs() {
		component := cfg.Catalog[id]

		deps := make([]string, len(component.Dependencies))
		for i, dep := range component.Dependencies {
			deps[i] = dep.String()
		}

		secrets := 0
		for _, spec := range component.EnvSpecs {
			if spec.Secret {
				secrets++
			}
		}

		result.Components = append(result.Components, ComponentInfo{
			ID:           id.String(),
			DisplayName:  component.DisplayName,
			Description:  component.Description,
			Dependencies: deps,
			EnvVars:      len(component.EnvSpecs),
			Secrets:      secrets,
		})
	}

	log.Info().Str("command", "ListComponents").Int("componentCount", len(result.Components)).Msg("Command finished")
	return result, nil
}
