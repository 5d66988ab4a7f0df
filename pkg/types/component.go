package types

import (
	"github.com/toolup-cli/toolup/pkg/errors"
)

// EnvSpec declares one environment variable a component needs at runtime.
// Secret values are routed to the secrets document when setup artifacts
// are generated; plain values go to the regular environment document.
type EnvSpec struct {
	// Name is the environment variable name, unique within its component
	// and, for merge purposes, across the whole catalog.
	Name string

	// Secret marks the variable as sensitive.
	Secret bool

	// Description is rendered as a comment above the variable when it is
	// first inserted into an environment document.
	Description string

	// Default is the initial value written on first insertion. A nil
	// default inserts an empty placeholder instead.
	Default *string
}

// SetupComponent describes one installable unit of developer tooling.
type SetupComponent struct {
	// ID is the component identifier, unique within a catalog.
	ID ComponentID

	// DisplayName is the human-facing name shown by list output.
	DisplayName string

	// Description explains what the component provides.
	Description string

	// Dependencies lists ids of components that must be installed first.
	// A component never depends on itself.
	Dependencies []ComponentID

	// InstallSteps are opaque shell lines emitted verbatim, in order,
	// into the generated install script.
	InstallSteps []string

	// EnvSpecs are the environment variables this component declares,
	// in declaration order.
	EnvSpecs []EnvSpec
}

// Validate checks the invariants local to a single component: a valid id,
// no self-dependency, syntactically valid dependency ids, and no duplicate
// env-spec names. Cross-component invariants (dangling references, env name
// collisions) are checked when the dependency graph is built.
func (c *SetupComponent) Validate() error {
	if err := c.ID.Validate(); err != nil {
		return err
	}
	for _, dep := range c.Dependencies {
		if err := dep.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidComponentMetadata,
				"component %q has an invalid dependency id", c.ID).
				WithDetail("component", c.ID.String()).
				WithDetail("reason", "invalid dependency id")
		}
		if dep == c.ID {
			return errors.Newf(errors.ErrInvalidComponentMetadata,
				"component %q depends on itself", c.ID).
				WithDetail("component", c.ID.String()).
				WithDetail("reason", "self-dependency")
		}
	}
	seen := make(map[string]bool, len(c.EnvSpecs))
	for _, spec := range c.EnvSpecs {
		if spec.Name == "" {
			return errors.Newf(errors.ErrInvalidComponentMetadata,
				"component %q declares an env spec with an empty name", c.ID).
				WithDetail("component", c.ID.String()).
				WithDetail("reason", "empty env spec name")
		}
		if seen[spec.Name] {
			return errors.Newf(errors.ErrInvalidComponentMetadata,
				"component %q declares env variable %q more than once", c.ID, spec.Name).
				WithDetail("component", c.ID.String()).
				WithDetail("reason", "duplicate env spec name "+spec.Name)
		}
		seen[spec.Name] = true
	}
	return nil
}
