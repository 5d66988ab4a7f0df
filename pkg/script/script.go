// Package script turns a resolved install order into install-script text.
// Generation is a total, pure function of its inputs: identical order and
// catalog always yield byte-identical output, which callers rely on for
// content-hash drift detection against previously written files.
package script

import (
	"strings"

	"github.com/toolup-cli/toolup/pkg/types"
)

const preamble = `#!/usr/bin/env bash
#
# Generated by toolup. Do not edit by hand; rerun "toolup setup gen"
# to regenerate after changing the component catalog.

set -euo pipefail
`

const bannerRule = "# ----------------------------------------------------------------------"

// GenerateInstallScript emits the install script for the given order: a
// fixed preamble followed by one banner-delimited block per component, each
// containing that component's install steps verbatim in declared order.
// It performs no dependency computation and no I/O; the order must already
// be resolved.
func GenerateInstallScript(order types.ResolvedOrder, catalog types.Catalog) string {
	var b strings.Builder
	b.WriteString(preamble)

	for _, id := range order {
		component := catalog[id]

		b.WriteString("\n")
		b.WriteString(bannerRule)
		b.WriteString("\n# component: ")
		b.WriteString(id.String())
		b.WriteString("\n")
		b.WriteString(bannerRule)
		b.WriteString("\n")

		for _, step := range component.InstallSteps {
			b.WriteString(step)
			b.WriteString("\n")
		}
	}

	return b.String()
}
