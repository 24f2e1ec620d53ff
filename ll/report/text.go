package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/llcheck/ll"
)

const ruleWidth = 70

// FormatRHS formats the right hand side of a production as a space separated
// symbol list, or as 'ε' for an ε-production.
func FormatRHS(p *ll.Production) string {
	if p == nil || p.IsEpsilon() || len(p.RHS()) == 0 {
		return ll.Epsilon
	}
	return strings.Join(p.RHS(), " ")
}

// FormatSet formats a symbol set, sorted, as {a, b, …}.
func FormatSet(S *ll.SymbolSet) string {
	return S.String()
}

func formatProduction(p *ll.Production) string {
	return p.LHS + " → " + FormatRHS(p)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", ruleWidth))
}

// Info writes the start symbol, the non-terminals and the terminals of g.
func Info(w io.Writer, g *ll.Grammar) {
	section(w, "Grammar Information")
	fmt.Fprintf(w, "Start Symbol: %s\n", g.StartSymbol())
	if fp, err := g.Fingerprint(); err == nil {
		fmt.Fprintf(w, "Fingerprint: %s\n", fp)
	} else {
		tracer().Errorf("cannot fingerprint grammar %s: %v", g.Name, err)
	}
	nonterms := g.NonTerminals()
	fmt.Fprintf(w, "Non-terminals (%d):\n", len(nonterms))
	for _, A := range nonterms {
		fmt.Fprintf(w, "  %s\n", A)
	}
	terms := g.Terminals()
	fmt.Fprintf(w, "\nTerminals (%d):\n", len(terms))
	fmt.Fprintf(w, "  %s\n", FormatSet(ll.NewSymbolSet(terms...)))
}

// Grammar lists the productions of g, ordered by left hand side and then by
// declaration.
func Grammar(w io.Writer, g *ll.Grammar) {
	section(w, "GRAMMAR PRODUCTIONS")
	for _, A := range g.NonTerminals() {
		for _, p := range g.Alternatives(A) {
			if desc := strings.TrimSpace(p.Description); desc != "" {
				fmt.Fprintf(w, "  %s  // %s\n", formatProduction(p), desc)
			} else {
				fmt.Fprintf(w, "  %s\n", formatProduction(p))
			}
		}
	}
}

// FirstSets lists FIRST(A) for every non-terminal A.
func FirstSets(w io.Writer, ga *ll.LL1Analysis) {
	section(w, "FIRST SETS")
	for _, A := range ga.Grammar().NonTerminals() {
		fmt.Fprintf(w, "  FIRST(%s) = %s\n", A, FormatSet(ga.First(A)))
	}
}

// FollowSets lists FOLLOW(A) for every non-terminal A.
func FollowSets(w io.Writer, ga *ll.LL1Analysis) {
	section(w, "FOLLOW SETS")
	for _, A := range ga.Grammar().NonTerminals() {
		fmt.Fprintf(w, "  FOLLOW(%s) = %s\n", A, FormatSet(ga.Follow(A)))
	}
}

// Conflict formats a single conflict as a multi-line explanation.
func Conflict(c *ll.Conflict) string {
	var b strings.Builder
	A := c.NonTerminal
	fmt.Fprintf(&b, "%v Conflict in '%s':\n", c.Kind, A)
	if c.Kind == ll.FirstFirst {
		fmt.Fprintf(&b, "  Production 1: %s\n", formatProduction(c.Alt1))
		fmt.Fprintf(&b, "  Production 2: %s\n", formatProduction(c.Alt2))
		fmt.Fprintf(&b, "  FIRST(Prod1) = %s\n", FormatSet(c.First1))
		fmt.Fprintf(&b, "  FIRST(Prod2) = %s\n", FormatSet(c.First2))
	} else {
		fmt.Fprintf(&b, "  Nullable production (#%d): %s\n", c.Nullable, formatProduction(c.NullableAlt()))
		fmt.Fprintf(&b, "  Other production: %s\n", formatProduction(c.OtherAlt()))
		fmt.Fprintf(&b, "  FIRST(other) = %s\n", FormatSet(c.OtherFirst()))
		fmt.Fprintf(&b, "  FOLLOW(%s) = %s\n", A, FormatSet(c.Follow))
	}
	fmt.Fprintf(&b, "  Overlap: %s\n", FormatSet(c.Overlap))
	fmt.Fprintf(&b, "  Reason: %s", c.Explanation())
	return b.String()
}

// Conflicts writes a numbered list of conflicts.
func Conflicts(w io.Writer, conflicts []*ll.Conflict) {
	fmt.Fprintf(w, "\nFound %d conflict(s):\n", len(conflicts))
	for i, c := range conflicts {
		fmt.Fprintf(w, "\nConflict #%d\n%s\n", i+1, Conflict(c))
	}
}

// Verdict writes the result of an LL(1) check, including the conflicts found.
func Verdict(w io.Writer, isLL1 bool, conflicts []*ll.Conflict) {
	section(w, "LL(1) Analysis Results")
	if isLL1 {
		fmt.Fprintln(w, "\nThe grammar is LL(1).")
		return
	}
	fmt.Fprintln(w, "\nThe grammar is not LL(1).")
	Conflicts(w, conflicts)
}

// ParsingTable writes the cells of a parsing table, grouped by non-terminal.
// If showAll is false, only non-terminals with conflicting cells are listed,
// and only their conflicting cells.
func ParsingTable(w io.Writer, pt *ll.ParsingTable, showAll bool) {
	title := "LL(1) PARSING TABLE"
	if !showAll {
		title += " (conflicts only)"
	}
	section(w, title)
	rows := make(map[string][]ll.Cell)
	pt.EachCell(func(c ll.Cell) {
		rows[c.NonTerminal] = append(rows[c.NonTerminal], c)
	})
	hasConflicts := false
	for _, A := range pt.NonTerminals() {
		cells := rows[A]
		if !showAll && !anyConflict(cells) {
			continue
		}
		if len(cells) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n  %s:\n", A)
		for _, c := range cells {
			if c.IsConflict() {
				hasConflicts = true
				fmt.Fprintf(w, "    [%s] -> CONFLICT:\n", c.Lookahead)
				for _, p := range c.Productions {
					fmt.Fprintf(w, "           %s\n", FormatRHS(p))
				}
			} else if showAll {
				fmt.Fprintf(w, "    [%s] -> %s\n", c.Lookahead, FormatRHS(c.Productions[0]))
			}
		}
	}
	if !hasConflicts && !showAll {
		fmt.Fprintln(w, "\n  No conflicts in parsing table.")
	}
}

func anyConflict(cells []ll.Cell) bool {
	for _, c := range cells {
		if c.IsConflict() {
			return true
		}
	}
	return false
}

// Summary writes grammar statistics and the LL(1) status.
func Summary(w io.Writer, g *ll.Grammar, isLL1 bool, conflicts []*ll.Conflict) {
	section(w, "Summary")
	fmt.Fprintf(w, "Total non-terminals: %d\n", len(g.NonTerminals()))
	fmt.Fprintf(w, "Total terminals: %d\n", len(g.Terminals()))
	fmt.Fprintf(w, "Total productions: %d\n", g.Size())
	status := "PASS"
	if !isLL1 {
		status = "FAIL"
	}
	fmt.Fprintf(w, "LL(1) Status: %s\n", status)
	if !isLL1 {
		fmt.Fprintf(w, "Conflicts found: %d\n", len(conflicts))
	}
}

// Text writes a complete report for an analysis and returns the LL(1)
// verdict.
func Text(w io.Writer, ga *ll.LL1Analysis, showAll bool) bool {
	g := ga.Grammar()
	Info(w, g)
	Grammar(w, g)
	FirstSets(w, ga)
	FollowSets(w, ga)
	isLL1, conflicts := ga.CheckLL1()
	Verdict(w, isLL1, conflicts)
	ParsingTable(w, ga.BuildParsingTable(), showAll)
	Summary(w, g, isLL1, conflicts)
	return isLL1
}
