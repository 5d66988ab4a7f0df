// pkg/envfile/envfile_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test env document merging: preservation of existing values,
//          insertion of missing keys, routing by secrecy, order stability,
//          and rejection of malformed input

package envfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolup-cli/toolup/pkg/envfile"
	"github.com/toolup-cli/toolup/pkg/errors"
	"github.com/toolup-cli/toolup/pkg/types"
)

func strPtr(s string) *string { return &s }

func catalogWith(components ...types.SetupComponent) (types.Catalog, types.ResolvedOrder) {
	catalog := make(types.Catalog, len(components))
	order := make(types.ResolvedOrder, 0, len(components))
	for _, c := range components {
		catalog[c.ID] = c
		order = append(order, c.ID)
	}
	return catalog, order
}

func TestMergePreservesExistingSecret(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{
		ID: "gh",
		EnvSpecs: []types.EnvSpec{
			{Name: "API_KEY", Secret: true, Description: "GitHub API key", Default: strPtr("CHANGE_ME")},
		},
	})

	docs, err := envfile.Merge(order, catalog, "", "API_KEY = \"abc\"\n")
	require.NoError(t, err)

	assert.Contains(t, docs.Secret, "API_KEY = \"abc\"")
	assert.NotContains(t, docs.Secret, "CHANGE_ME")
	assert.NotContains(t, docs.Plain, "API_KEY")
}

func TestMergeInsertsMissingPlainKey(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{
		ID: "logger",
		EnvSpecs: []types.EnvSpec{
			{Name: "LOG_LEVEL", Secret: false, Description: "Minimum log level", Default: strPtr("info")},
		},
	})

	docs, err := envfile.Merge(order, catalog, "", "")
	require.NoError(t, err)

	assert.Contains(t, docs.Plain, "# Minimum log level\nLOG_LEVEL = \"info\"\n")
	assert.Empty(t, docs.Secret)
}

func TestMergeInsertsEmptyPlaceholderWithoutDefault(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{
		ID: "gh",
		EnvSpecs: []types.EnvSpec{
			{Name: "GH_TOKEN", Secret: true, Description: "GitHub token"},
		},
	})

	docs, err := envfile.Merge(order, catalog, "", "")
	require.NoError(t, err)

	assert.Contains(t, docs.Secret, "# GitHub token\nGH_TOKEN = \"\"\n")
}

func TestMergeRejectsMalformedDocument(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{ID: "gh"})

	_, err := envfile.Merge(order, catalog, "not = [valid", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedEnvToml))
	assert.NotEmpty(t, errors.GetDetail(err, "reason"))

	_, err = envfile.Merge(order, catalog, "", "not = [valid")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedEnvToml))
}

func TestMergeRejectsNestedTables(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{ID: "gh"})

	_, err := envfile.Merge(order, catalog, "[section]\nkey = \"v\"\n", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedEnvToml))
}

func TestMergeKeepsExistingKeyOrderAndUnknownKeys(t *testing.T) {
	existing := strings.Join([]string{
		"# hand-written note",
		"ZEBRA = \"stripes\"",
		"",
		"ALPHA = \"first\"",
		"",
	}, "\n")

	catalog, order := catalogWith(types.SetupComponent{
		ID: "tool",
		EnvSpecs: []types.EnvSpec{
			{Name: "NEW_VAR", Secret: false, Description: "Newly declared", Default: strPtr("x")},
		},
	})

	docs, err := envfile.Merge(order, catalog, existing, "")
	require.NoError(t, err)

	zebra := strings.Index(docs.Plain, "ZEBRA")
	alpha := strings.Index(docs.Plain, "ALPHA")
	newVar := strings.Index(docs.Plain, "NEW_VAR")

	require.GreaterOrEqual(t, zebra, 0)
	assert.Greater(t, alpha, zebra, "existing keys keep their relative order")
	assert.Greater(t, newVar, alpha, "new keys are appended after existing ones")

	// Unknown keys and their comments survive untouched.
	assert.Contains(t, docs.Plain, "# hand-written note\nZEBRA = \"stripes\"")
}

func TestMergeNeverMovesValuesBetweenDocuments(t *testing.T) {
	// The user put API_KEY in the plain document; the declaration says secret.
	// The plain value stays put and the secret document gets the default.
	catalog, order := catalogWith(types.SetupComponent{
		ID: "gh",
		EnvSpecs: []types.EnvSpec{
			{Name: "API_KEY", Secret: true, Default: strPtr("CHANGE_ME")},
		},
	})

	docs, err := envfile.Merge(order, catalog, "API_KEY = \"oops\"\n", "")
	require.NoError(t, err)

	assert.Contains(t, docs.Plain, "API_KEY = \"oops\"")
	assert.Contains(t, docs.Secret, "API_KEY = \"CHANGE_ME\"")
}

func TestMergeInsertionFollowsResolvedOrder(t *testing.T) {
	catalog, order := catalogWith(
		types.SetupComponent{
			ID: "git",
			EnvSpecs: []types.EnvSpec{
				{Name: "GIT_AUTHOR", Secret: false, Default: strPtr("me")},
				{Name: "GIT_EDITOR", Secret: false, Default: strPtr("vim")},
			},
		},
		types.SetupComponent{
			ID: "gh",
			EnvSpecs: []types.EnvSpec{
				{Name: "GH_HOST", Secret: false, Default: strPtr("github.com")},
			},
		},
	)

	docs, err := envfile.Merge(order, catalog, "", "")
	require.NoError(t, err)

	author := strings.Index(docs.Plain, "GIT_AUTHOR")
	editor := strings.Index(docs.Plain, "GIT_EDITOR")
	host := strings.Index(docs.Plain, "GH_HOST")

	assert.Less(t, author, editor, "specs keep declaration order")
	assert.Less(t, editor, host, "components keep resolved order")
}

func TestMergeIsIdempotent(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{
		ID: "gh",
		EnvSpecs: []types.EnvSpec{
			{Name: "GH_HOST", Secret: false, Description: "GitHub host", Default: strPtr("github.com")},
			{Name: "GH_TOKEN", Secret: true, Description: "GitHub token"},
		},
	})

	first, err := envfile.Merge(order, catalog, "", "")
	require.NoError(t, err)

	second, err := envfile.Merge(order, catalog, first.Plain, first.Secret)
	require.NoError(t, err)

	assert.Equal(t, first, second, "merging its own output must be a no-op")
}

func TestMergePreservesNonStringValues(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{
		ID: "tool",
		EnvSpecs: []types.EnvSpec{
			{Name: "RETRIES", Secret: false, Default: strPtr("3")},
		},
	})

	docs, err := envfile.Merge(order, catalog, "RETRIES = 5\nVERBOSE = true\n", "")
	require.NoError(t, err)

	assert.Contains(t, docs.Plain, "RETRIES = 5")
	assert.Contains(t, docs.Plain, "VERBOSE = true")
	assert.NotContains(t, docs.Plain, "\"3\"")
}

func TestMergeEscapesInsertedValues(t *testing.T) {
	catalog, order := catalogWith(types.SetupComponent{
		ID: "tool",
		EnvSpecs: []types.EnvSpec{
			{Name: "MOTD", Secret: false, Default: strPtr("say \"hi\"\nbye")},
		},
	})

	docs, err := envfile.Merge(order, catalog, "", "")
	require.NoError(t, err)
	assert.Contains(t, docs.Plain, `MOTD = "say \"hi\"\nbye"`)

	// The rendered document must itself parse.
	second, err := envfile.Merge(order, catalog, docs.Plain, "")
	require.NoError(t, err)
	assert.Equal(t, docs.Plain, second.Plain)
}
