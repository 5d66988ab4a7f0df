// Package types defines the core types used throughout toolup.
// This includes ComponentID with its syntactic validation rules, the
// SetupComponent and EnvSpec descriptors, and the Catalog mapping that
// every resolution operates over.
package types
