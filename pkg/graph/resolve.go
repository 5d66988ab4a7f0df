package graph

import (
	"sort"

	"github.com/toolup-cli/toolup/pkg/errors"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/types"
)

// mark is the tri-state visitation marker used during traversal.
type mark uint8

const (
	unvisited mark = iota
	inProgress
	done
)

// Resolve computes a deterministic install order for the requested
// component ids: the transitive dependency closure of selected, with every
// dependency preceding its dependents. Whenever several components are
// simultaneously eligible, the lexicographically smaller id is emitted
// first, so the output is byte-identical across runs and catalog loading
// orders.
//
// Traversal state lives entirely in this call; the Graph itself is never
// mutated, so concurrent and repeated resolutions over one Graph are safe.
func (g *Graph) Resolve(selected []types.ComponentID) (types.ResolvedOrder, error) {
	log := logging.GetLogger("graph")

	roots := make([]types.ComponentID, 0, len(selected))
	seen := make(map[types.ComponentID]bool, len(selected))
	for _, id := range selected {
		if _, ok := g.catalog[id]; !ok {
			return nil, componentNotFound(id, g.catalog)
		}
		if !seen[id] {
			seen[id] = true
			roots = append(roots, id)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	closure, err := g.walk(roots)
	if err != nil {
		return nil, err
	}

	order := g.emit(closure)
	log.Debug().
		Int("selected", len(roots)).
		Int("resolved", len(order)).
		Msg("Install order resolved")
	return order, nil
}

// frame is one entry of the explicit traversal stack: a component and the
// index of the next dependency to visit.
type frame struct {
	id   types.ComponentID
	next int
}

// walk performs an explicit iterative depth-first traversal from the given
// roots, visiting dependencies in ascending lexicographic order. It returns
// the transitive closure of the roots, or a CircularDependency error whose
// cycle detail is the exact path from the repeated id back to itself.
//
// Language-level recursion is deliberately avoided: the stack of frames
// keeps depth bounded by the closure size and the in-progress path
// inspectable when a cycle is found.
func (g *Graph) walk(roots []types.ComponentID) ([]types.ComponentID, error) {
	marks := make(map[types.ComponentID]mark, len(g.catalog))
	closure := make([]types.ComponentID, 0, len(g.catalog))

	for _, root := range roots {
		if marks[root] == done {
			continue
		}

		stack := []frame{{id: root}}
		path := []types.ComponentID{root}
		marks[root] = inProgress

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := g.deps[top.id]

			if top.next < len(deps) {
				dep := deps[top.next]
				top.next++

				switch marks[dep] {
				case done:
					// Already emitted on an earlier branch.
				case inProgress:
					return nil, circularDependency(path, dep)
				default:
					marks[dep] = inProgress
					path = append(path, dep)
					stack = append(stack, frame{id: dep})
				}
				continue
			}

			marks[top.id] = done
			closure = append(closure, top.id)
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
		}
	}

	return closure, nil
}

// emit orders the closure with a wave-based topological sort: all currently
// eligible components are emitted in ascending id order before components
// they unblock. walk has already rejected cycles, so every component in the
// closure is eventually eligible.
func (g *Graph) emit(closure []types.ComponentID) types.ResolvedOrder {
	pending := make(map[types.ComponentID]int, len(closure))
	dependents := make(map[types.ComponentID][]types.ComponentID, len(closure))
	for _, id := range closure {
		pending[id] = len(g.deps[id])
		for _, dep := range g.deps[id] {
			dependents[dep] = append(dependents[dep], id)
		}
	}

	var ready []types.ComponentID
	for _, id := range closure {
		if pending[id] == 0 {
			ready = append(ready, id)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	order := make(types.ResolvedOrder, 0, len(closure))
	for len(ready) > 0 {
		var next []types.ComponentID
		for _, id := range ready {
			order = append(order, id)
			for _, dependent := range dependents[id] {
				pending[dependent]--
				if pending[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		ready = next
	}

	return order
}

// circularDependency renders the in-progress path as a cycle starting and
// ending at the repeated id, e.g. ["a", "b", "c", "a"].
func circularDependency(path []types.ComponentID, repeated types.ComponentID) error {
	start := 0
	for i, id := range path {
		if id == repeated {
			start = i
			break
		}
	}

	cycle := make([]string, 0, len(path)-start+1)
	for _, id := range path[start:] {
		cycle = append(cycle, id.String())
	}
	cycle = append(cycle, repeated.String())

	return errors.Newf(errors.ErrCircularDependency,
		"circular dependency detected: %v", cycle).
		WithDetail("cycle", cycle)
}
