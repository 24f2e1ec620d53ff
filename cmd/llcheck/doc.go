/*
Command llcheck checks context-free grammars for the LL(1) property.

Grammars are read from production list files (see package ll/prodlist for
the format). For every file, llcheck prints the grammar, its FIRST and
FOLLOW sets, all LL(1) conflicts and the conflicting cells of the
predictive parsing table:

    llcheck [-trace Level] [-start S] [-all] [-format text|yaml|table] [-strict] file …

The exit status is 1 if a grammar is not LL(1), 2 if a grammar could not be
read.

Without files, or with flag -i, llcheck starts an interactive session.
Production lines entered are added to the current grammar, commands start
with a colon (enter ':help' for a list). Files given together with -i are
loaded into the session first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcheck.cli'
func tracer() tracing.Trace {
	return tracing.Select("llcheck.cli")
}
