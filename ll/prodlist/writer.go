package prodlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/llcheck/ll"
)

// Write writes g as a production list, one production per line, grouped by
// left-hand side. Reading the output reproduces a grammar with the same
// fingerprint.
func Write(w io.Writer, g *ll.Grammar) error {
	bw := bufio.NewWriter(w)
	if S := g.StartSymbol(); len(g.Alternatives(S)) > 0 {
		sym, err := quote(S)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%%start %s\n", sym)
	}
	results := g.EachNonTerminal(func(A string, alts []*ll.Production) interface{} {
		lhs, err := quote(A)
		if err != nil {
			return err
		}
		for i, p := range alts {
			rhs, err := formatRHS(p)
			if err != nil {
				return err
			}
			if i == 0 {
				fmt.Fprintf(bw, "%s -> %s", lhs, rhs)
			} else {
				fmt.Fprintf(bw, "%s | %s", strings.Repeat(" ", len(lhs)), rhs)
			}
			if desc := strings.TrimSpace(p.Description); desc != "" {
				fmt.Fprintf(bw, "    // %s", desc)
			}
			bw.WriteString("\n")
		}
		return nil
	})
	for _, r := range results {
		if err, ok := r.(error); ok && err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatRHS(p *ll.Production) (string, error) {
	if p.IsEpsilon() {
		return ll.Epsilon, nil
	}
	syms := make([]string, len(p.RHS()))
	for i, sym := range p.RHS() {
		q, err := quote(sym)
		if err != nil {
			return "", err
		}
		syms[i] = q
	}
	return strings.Join(syms, " "), nil
}

// quote returns sym in a form which reads back as sym, quoted if necessary.
func quote(sym string) (string, error) {
	if sym == "" || strings.ContainsAny(sym, " \t\r\n") {
		return "", fmt.Errorf("symbol %q cannot be written as a production list symbol", sym)
	}
	switch sym {
	case ll.Epsilon, ll.EOF:
		return "", fmt.Errorf("reserved symbol %s cannot be part of a right-hand side", sym)
	case "->", "→", "|", "%start", "%empty":
		return "'" + sym + "'", nil
	}
	if strings.HasPrefix(sym, "#") || strings.HasPrefix(sym, "//") || strings.HasPrefix(sym, "'") {
		if strings.Contains(sym, "'") {
			return "", fmt.Errorf("symbol %q cannot be written as a production list symbol", sym)
		}
		return "'" + sym + "'", nil
	}
	return sym, nil
}
