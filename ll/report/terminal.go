package report

import (
	"strings"

	"github.com/npillmayer/llcheck/ll"
	"github.com/pterm/pterm"
)

// TableData returns the parsing table as rows of strings, headed by a row
// of lookaheads. Conflicting cells list all their productions, separated
// by ' ‖ '.
func TableData(pt *ll.ParsingTable) [][]string {
	cols := pt.Lookaheads()
	header := append([]string{""}, cols...)
	data := [][]string{header}
	colIndex := make(map[string]int, len(cols))
	for j, a := range cols {
		colIndex[a] = j + 1
	}
	rowIndex := make(map[string]int)
	for _, A := range pt.NonTerminals() {
		row := make([]string, len(cols)+1)
		row[0] = A
		rowIndex[A] = len(data)
		data = append(data, row)
	}
	pt.EachCell(func(c ll.Cell) {
		rhs := make([]string, len(c.Productions))
		for i, p := range c.Productions {
			rhs[i] = FormatRHS(p)
		}
		data[rowIndex[c.NonTerminal]][colIndex[c.Lookahead]] = strings.Join(rhs, " ‖ ")
	})
	return data
}

// Table renders the parsing table as a terminal table.
func Table(pt *ll.ParsingTable) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(TableData(pt)).Srender()
}

// Tree renders the productions of g as a terminal tree, with a node per
// non-terminal in order of declaration.
func Tree(g *ll.Grammar) (string, error) {
	root := pterm.TreeNode{Text: g.Name}
	g.EachNonTerminal(func(A string, alts []*ll.Production) interface{} {
		node := pterm.TreeNode{Text: A}
		for _, p := range alts {
			text := "→ " + FormatRHS(p)
			if desc := strings.TrimSpace(p.Description); desc != "" {
				text += "  // " + desc
			}
			node.Children = append(node.Children, pterm.TreeNode{Text: text})
		}
		root.Children = append(root.Children, node)
		return nil
	})
	return pterm.DefaultTree.WithRoot(root).Srender()
}
