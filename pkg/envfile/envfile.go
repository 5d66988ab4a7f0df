// Package envfile merges component environment-variable declarations into
// plain and secret TOML documents. The merge never overwrites, reorders, or
// relocates a value that already exists in a document: user-supplied
// values, real secrets included, always survive regeneration verbatim.
package envfile

import (
	"github.com/toolup-cli/toolup/pkg/errors"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/types"
)

// Documents holds the two merged environment documents.
type Documents struct {
	// Plain is the non-sensitive environment document.
	Plain string

	// Secret is the sensitive environment document.
	Secret string
}

// Merge routes each env spec of each component in order to the plain or
// secret document, preserving any value already present and inserting
// missing keys with their default (or an empty placeholder) under a
// description comment.
//
// Existing documents are passed as raw text; an empty string is an empty
// table, but text that fails to parse as a flat TOML table is a
// MalformedEnvToml error; it is never silently treated as empty.
// Serialization keeps keys in first-seen order: existing keys keep their
// original relative order and new keys are appended in resolved-component
// order, then in each component's own declaration order. The function is
// pure; reading and writing the files is the caller's job.
func Merge(order types.ResolvedOrder, catalog types.Catalog, existingPlain, existingSecret string) (Documents, error) {
	log := logging.GetLogger("envfile")

	plain, err := parseTable(existingPlain)
	if err != nil {
		return Documents{}, err
	}
	secret, err := parseTable(existingSecret)
	if err != nil {
		return Documents{}, err
	}

	inserted := 0
	for _, id := range order {
		component := catalog[id]
		for _, spec := range component.EnvSpecs {
			target := plain
			if spec.Secret {
				target = secret
			}
			if target.has(spec.Name) {
				continue
			}

			value := ""
			if spec.Default != nil {
				value = *spec.Default
			}
			target.insert(spec.Name, value, spec.Description)
			inserted++
		}
	}

	log.Debug().
		Int("components", len(order)).
		Int("inserted", inserted).
		Msg("Environment documents merged")

	return Documents{Plain: plain.render(), Secret: secret.render()}, nil
}

// malformed builds the structured parse-failure error.
func malformed(reason string) error {
	return errors.Newf(errors.ErrMalformedEnvToml, "malformed environment document: %s", reason).
		WithDetail("reason", reason)
}
