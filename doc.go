/*
Package llcheck is a toolbox for static analysis of LL(1) grammars.

LLCheck computes FIRST and FOLLOW sets for context-free grammars, detects
the conflicts which keep a grammar from being LL(1), and derives the
predictive parsing table. Package structure is as follows:

■ ll: Package ll implements the grammar store and the analysis engine
(FIRST/FOLLOW fixpoints, conflict detection, parsing table).

■ ll/prodlist: Package prodlist reads grammars given as a list of productions.

■ ll/report: Package report renders analysis results for humans and machines.

■ cmd/llcheck: A command line tool, usable in batch or interactive mode.

The base package contains the token and span types shared by the scanner
and the production-list reader.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llcheck
