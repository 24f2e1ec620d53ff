/*
Package report renders the results of an LL(1) grammar analysis.

Plain text reports are laid out in sections, each headed by a title and a
rule:

    FIRST SETS
    ==========…
      FIRST(A) = {a, b, ε}

Conflicts are numbered and explained, parsing tables list conflicting
cells (or all cells) per non-terminal. For terminals, Table renders a
parsing table as a pterm table and Tree renders the productions of a
grammar as a pterm tree. YAML exports an analysis for further processing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcheck.report'
func tracer() tracing.Trace {
	return tracing.Select("llcheck.report")
}
