// Package graph builds a validated dependency graph over a component
// catalog and resolves deterministic install orders for requested
// component sets. Resolution is pure over the catalog snapshot: no state
// survives between calls, and identical inputs always produce identical
// orders regardless of map iteration order.
package graph
