package ll

// FirstTable maps grammar symbols to their FIRST-sets.
type FirstTable map[string]*SymbolSet

// ComputeFirstSets computes FIRST(X) for every symbol X of g. Terminals have to be
// identified beforehand. The sets are computed into the table first, which
// is returned; if first is nil, a new table is allocated. Entries present in
// first are re-initialized.
//
// FIRST(t) = { t } for terminals. For non-terminals, every production A ➞ α
// contributes FIRST(α) to FIRST(A). This is repeated until no set grows any
// more.
func ComputeFirstSets(g *Grammar, first FirstTable, opts ...Option) (FirstTable, error) {
	cfg := makeConfig(opts)
	if first == nil {
		first = make(FirstTable)
	}
	for _, t := range g.Terminals() {
		first[t] = NewSymbolSet(t)
	}
	for _, A := range g.NonTerminals() {
		first[A] = NewSymbolSet()
	}
	prods := g.Productions()
	for pass, changed := 1, true; changed; pass++ {
		changed = false
		for _, p := range prods {
			f, err := first.OfSequence(g, p.rhs, cfg.policy)
			if err != nil {
				return first, err
			}
			if first[p.LHS].Union(f) {
				tracer().Debugf("FIRST(%s) grows to %v", p.LHS, first[p.LHS])
				changed = true
			}
		}
		cfg.observe("FIRST", pass, first)
	}
	return first, nil
}

// OfSequence computes FIRST(X1 … Xn) for a sequence of symbols, given the
// current state of the FIRST table. An empty sequence or a sequence of [ε]
// results in { ε }.
//
// Symbols are scanned from left to right. A terminal is added and ends the
// scan, a non-terminal X contributes FIRST(X) \ { ε } and ends the scan only if
// X does not derive ε. If every symbol of the sequence may derive ε, so does
// the sequence.
func (first FirstTable) OfSequence(g *Grammar, seq []string, policy SymbolPolicy) (*SymbolSet, error) {
	result := NewSymbolSet()
	if len(seq) == 0 || len(seq) == 1 && seq[0] == Epsilon {
		return result.Add(Epsilon), nil
	}
	nullable := true
scan:
	for _, sym := range seq {
		class, err := policy.classify(g, sym)
		if err != nil {
			return result, err
		}
		switch class {
		case EpsilonSymbol:
			continue
		case NonTerminalSymbol:
			f := first[sym]
			result.Union(f.Without(Epsilon))
			if !f.Contains(Epsilon) {
				nullable = false
				break scan
			}
		default: // terminals and unknown symbols
			result.Add(sym)
			nullable = false
			break scan
		}
	}
	if nullable {
		result.Add(Epsilon)
	}
	return result, nil
}

// sizes returns the cardinality of every set in a table.
func sizes(table map[string]*SymbolSet) map[string]int {
	s := make(map[string]int, len(table))
	for sym, S := range table {
		s[sym] = S.Size()
	}
	return s
}
