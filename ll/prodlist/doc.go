/*
Package prodlist reads and writes grammars in a line-oriented production
list format.

Format

One or more productions per line, alternatives separated by '|', an
optional description at the end of a line:

    # a comment line
    %start <prog>
    <Ty>   -> int | bool | char     // Basic type
           | ID                     // Basic type: user-defined
    <Tail> -> ; <VaD> <Tail>
           | ε

Symbols are separated by white space and may contain any other character.
A symbol which would otherwise be read as a separator has to be quoted
with single quotes, e.g. '|' or '->'. Both '->' and '→' are accepted as
arrows, both 'ε' and '%empty' denote the empty derivation, and an empty
alternative is read as 'ε' as well. A line starting with '|' continues
the alternatives of the previous left-hand side. A description applies to
every alternative of its line.

The start symbol is declared with '%start'. Without a declaration, the
left-hand side of the first production is the start symbol.

Symbols are not declared as terminals or non-terminals. Every symbol
appearing on a left-hand side is a non-terminal, every other symbol is a
terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prodlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcheck.prodlist'.
func tracer() tracing.Trace {
	return tracing.Select("llcheck.prodlist")
}
