package types

import (
	"strings"

	"github.com/toolup-cli/toolup/pkg/errors"
)

// ComponentID identifies a single installable component within a catalog.
// IDs double as filenames in banner comments and generated artifacts, so
// the accepted character set is deliberately narrow.
type ComponentID string

// isIDChar reports whether r is allowed anywhere in a component id.
func isIDChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}

// Validate checks the syntactic rules for component identifiers:
// non-empty, lowercase alphanumerics plus "-", "_", ".", and no
// path-traversal tokens.
func (id ComponentID) Validate() error {
	s := string(id)
	if s == "" {
		return errors.New(errors.ErrInvalidComponentID, "component id must not be empty").
			WithDetail("id", s)
	}
	if s == "." || s == ".." || strings.Contains(s, "..") {
		return errors.Newf(errors.ErrInvalidComponentID, "component id %q contains a path-traversal token", s).
			WithDetail("id", s)
	}
	for _, r := range s {
		if !isIDChar(r) {
			return errors.Newf(errors.ErrInvalidComponentID, "component id %q contains invalid character %q", s, r).
				WithDetail("id", s)
		}
	}
	return nil
}

func (id ComponentID) String() string {
	return string(id)
}
