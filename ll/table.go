package ll

import (
	"sort"

	"github.com/npillmayer/llcheck/ll/sparse"
)

// ParsingTable is a predictive LL(1) parsing table. Rows are non-terminals,
// columns are lookahead symbols (terminals and EOF). Every cell holds the set
// of productions applicable for a (non-terminal, lookahead) combination.
// Cells with more than one production are conflicts.
type ParsingTable struct {
	g        *Grammar
	rows     []string // non-terminals, sorted
	cols     []string // lookaheads, sorted
	rowIndex map[string]int
	colIndex map[string]int
	matrix   *sparse.IntMatrix
}

// Cell is an entry of a parsing table.
type Cell struct {
	NonTerminal string
	Lookahead   string
	Productions []*Production
}

// IsConflict is a predicate: does the cell hold more than one production?
func (c Cell) IsConflict() bool {
	return len(c.Productions) > 1
}

// BuildParsingTable constructs the predictive parsing table. For every
// production A ➞ α, α is entered at [A,t] for every terminal t ∈ FIRST(α).
// If ε ∈ FIRST(α), α is entered at [A,u] for every u ∈ FOLLOW(A).
//
// The table is computed independently from CheckLL1.
func (ga *LL1Analysis) BuildParsingTable() *ParsingTable {
	prods := ga.g.Productions()
	lookaheads := make([]*SymbolSet, len(prods))
	universe := NewSymbolSet()
	for i, p := range prods {
		f := ga.FirstOfSequence(p.rhs)
		la := f.Without(Epsilon)
		if f.Contains(Epsilon) {
			la.Union(ga.Follow(p.LHS))
		}
		lookaheads[i] = la
		universe.Union(la)
	}
	pt := newParsingTable(ga.g, ga.g.NonTerminals(), universe.Values())
	for i, p := range prods {
		for _, a := range lookaheads[i].Values() {
			tracer().Debugf("table[%s,%s] += %v", p.LHS, a, p)
			pt.matrix.Add(pt.rowIndex[p.LHS], pt.colIndex[a], int32(p.Serial))
		}
	}
	tracer().Infof("parsing table for %s: %d x %d, %d cells set", ga.g.Name,
		len(pt.rows), len(pt.cols), pt.matrix.ValueCount())
	return pt
}

func newParsingTable(g *Grammar, rows, cols []string) *ParsingTable {
	sort.Strings(rows)
	sort.Strings(cols)
	pt := &ParsingTable{
		g:        g,
		rows:     rows,
		cols:     cols,
		rowIndex: make(map[string]int, len(rows)),
		colIndex: make(map[string]int, len(cols)),
		matrix:   sparse.NewIntMatrix(len(rows), len(cols), sparse.DefaultNullValue),
	}
	for i, A := range rows {
		pt.rowIndex[A] = i
	}
	for j, a := range cols {
		pt.colIndex[a] = j
	}
	return pt
}

// NonTerminals returns the row labels of the table.
func (pt *ParsingTable) NonTerminals() []string {
	return pt.rows
}

// Lookaheads returns the column labels of the table, i.e. every terminal (or
// EOF) which selects at least one production.
func (pt *ParsingTable) Lookaheads() []string {
	return pt.cols
}

// Entries returns the productions at [A,a], in order of declaration.
func (pt *ParsingTable) Entries(A, a string) []*Production {
	i, ok1 := pt.rowIndex[A]
	j, ok2 := pt.colIndex[a]
	if !ok1 || !ok2 {
		return nil
	}
	return pt.productions(pt.matrix.Values(i, j))
}

// EachCell calls f for every non-empty cell, ordered by non-terminal, then lookahead.
func (pt *ParsingTable) EachCell(f func(Cell)) {
	pt.matrix.Each(func(i, j int, serials []int32) {
		f(Cell{
			NonTerminal: pt.rows[i],
			Lookahead:   pt.cols[j],
			Productions: pt.productions(serials),
		})
	})
}

// ConflictCells returns all cells holding more than one production.
func (pt *ParsingTable) ConflictCells() []Cell {
	var cells []Cell
	pt.EachCell(func(c Cell) {
		if c.IsConflict() {
			cells = append(cells, c)
		}
	})
	return cells
}

// HasConflicts is a predicate: is there a cell with more than one production?
func (pt *ParsingTable) HasConflicts() bool {
	return len(pt.ConflictCells()) > 0
}

func (pt *ParsingTable) productions(serials []int32) []*Production {
	sort.Slice(serials, func(i, j int) bool { return serials[i] < serials[j] })
	prods := make([]*Production, 0, len(serials))
	for _, s := range serials {
		prods = append(prods, pt.g.Production(int(s)))
	}
	return prods
}
