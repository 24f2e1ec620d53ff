/*
Package ll implements static analysis of LL(1) grammars.

Building a Grammar

Grammars are either filled production by production,

    g := ll.NewGrammar("G")
    g.AddProduction("S", []string{"a", "S", "b"}, "nested")
    g.AddProduction("S", []string{ll.Epsilon}, "empty")

or specified using a grammar builder object:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").T("a").N("S").T("b").End()  // S  ->  a S b
    b.LHS("S").Epsilon()                   // S  ->  ε
    g, err := b.Grammar()

Symbols are not declared. Every symbol appearing as the left hand side of a
production is a non-terminal, every other symbol on a right hand side is a
terminal. The start symbol defaults to the left hand side of the first
production.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis classifies
the symbols and computes FIRST and FOLLOW sets by fixpoint iteration.

    ga, err := ll.Analysis(g)
    ga.Grammar().EachNonTerminal(
        func(A string, alts []*ll.Production) interface{} {
            fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
            return nil
        })

    // Output:
    FIRST(S) = {a, ε}

The stages are available on their own as well (IdentifyTerminals,
ComputeFirstSets, ComputeFollowSets), each receiving and returning the
table it fills.

Conflicts and Parsing Table

    isLL1, conflicts := ga.CheckLL1()      // pairwise check of alternatives
    table := ga.BuildParsingTable()        // predictive table
    if table.HasConflicts() { ... }

Both computations are independent of each other. They agree on whether a
grammar is LL(1), but not necessarily on the pairs of alternatives they
name for a conflict.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcheck.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llcheck.ll")
}
