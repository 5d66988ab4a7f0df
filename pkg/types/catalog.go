package types

import "sort"

// Catalog maps component ids to their definitions. It is loaded once per
// invocation by the config loader and treated as immutable for the lifetime
// of a resolution; no package holds a reference to "the" catalog, every
// operation receives it as an argument.
type Catalog map[ComponentID]SetupComponent

// IDs returns all catalog ids in ascending lexicographic order.
func (c Catalog) IDs() []ComponentID {
	ids := make([]ComponentID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IDStrings returns all catalog ids as plain strings, sorted. Used for
// the "available" detail on component-not-found errors.
func (c Catalog) IDStrings() []string {
	ids := c.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// ResolvedOrder is a linear install order over component ids: each
// transitively-required component appears exactly once, and every
// dependency appears before its dependents.
type ResolvedOrder []ComponentID
