package graph

import (
	"sort"

	"github.com/toolup-cli/toolup/pkg/errors"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/types"
)

// Graph is a validated view over a catalog: every dependency reference is
// known to resolve, every component passed metadata validation, and the
// per-component dependency lists are deduplicated and sorted so traversal
// order never depends on declaration order.
type Graph struct {
	catalog types.Catalog
	deps    map[types.ComponentID][]types.ComponentID
}

// Build validates the catalog and constructs a Graph over it. All
// InvalidComponentMetadata and dangling-reference detection happens here,
// in one pass, so Resolve can assume a structurally sound catalog.
func Build(catalog types.Catalog) (*Graph, error) {
	log := logging.GetLogger("graph")

	deps := make(map[types.ComponentID][]types.ComponentID, len(catalog))

	// envOwners tracks which component first declared each env variable
	// name, to reject cross-component secrecy conflicts.
	type envDecl struct {
		owner  types.ComponentID
		secret bool
	}
	envOwners := make(map[string]envDecl)

	// Iterate in sorted id order so the first error reported is stable.
	for _, id := range catalog.IDs() {
		component := catalog[id]
		if component.ID != id {
			return nil, errors.Newf(errors.ErrInvalidComponentMetadata,
				"catalog key %q does not match component id %q", id, component.ID).
				WithDetail("component", id.String()).
				WithDetail("reason", "catalog key mismatch")
		}
		if err := component.Validate(); err != nil {
			return nil, err
		}

		for _, spec := range component.EnvSpecs {
			if prev, ok := envOwners[spec.Name]; ok && prev.secret != spec.Secret {
				return nil, errors.Newf(errors.ErrInvalidComponentMetadata,
					"components %q and %q declare env variable %q with conflicting secrecy",
					prev.owner, id, spec.Name).
					WithDetail("component", id.String()).
					WithDetail("reason", "conflicting secrecy for env variable "+spec.Name)
			} else if !ok {
				envOwners[spec.Name] = envDecl{owner: id, secret: spec.Secret}
			}
		}

		seen := make(map[types.ComponentID]bool, len(component.Dependencies))
		list := make([]types.ComponentID, 0, len(component.Dependencies))
		for _, dep := range component.Dependencies {
			if _, ok := catalog[dep]; !ok {
				return nil, componentNotFound(dep, catalog)
			}
			if !seen[dep] {
				seen[dep] = true
				list = append(list, dep)
			}
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		deps[id] = list
	}

	log.Debug().Int("components", len(catalog)).Msg("Dependency graph built")
	return &Graph{catalog: catalog, deps: deps}, nil
}

// Catalog returns the catalog snapshot this graph was built over.
func (g *Graph) Catalog() types.Catalog {
	return g.catalog
}

func componentNotFound(id types.ComponentID, catalog types.Catalog) error {
	return errors.Newf(errors.ErrComponentNotFound, "component %q not found in catalog", id).
		WithDetail("name", id.String()).
		WithDetail("available", catalog.IDStrings())
}
