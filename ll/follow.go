package ll

// FollowTable maps non-terminals to their FOLLOW-sets.
type FollowTable map[string]*SymbolSet

// ComputeFollowSets computes FOLLOW(A) for every non-terminal A of g, using a
// completed FIRST table. first is not modified. The sets are computed into
// table follow, which is returned; if follow is nil, a new table is allocated.
//
// FOLLOW(S) of the start symbol S always contains EOF. For every production
// A ➞ … B β with non-terminal B, FOLLOW(B) receives FIRST(β) \ { ε }, and
// FOLLOW(A) if β may derive ε or is empty. This is repeated until no set
// grows any more.
func ComputeFollowSets(g *Grammar, first FirstTable, follow FollowTable, opts ...Option) (FollowTable, error) {
	cfg := makeConfig(opts)
	if follow == nil {
		follow = make(FollowTable)
	}
	for _, A := range g.NonTerminals() {
		follow[A] = NewSymbolSet()
	}
	if S := g.StartSymbol(); S != "" {
		if follow[S] == nil {
			follow[S] = NewSymbolSet()
		}
		follow[S].Add(EOF)
	}
	prods := g.Productions()
	for pass, changed := 1, true; changed; pass++ {
		changed = false
		for _, p := range prods {
			for i, B := range p.rhs {
				if g.Classify(B) != NonTerminalSymbol {
					continue
				}
				grown, err := followInto(g, first, follow, p.LHS, B, p.rhs[i+1:], cfg.policy)
				if err != nil {
					return follow, err
				}
				if grown {
					tracer().Debugf("FOLLOW(%s) grows to %v", B, follow[B])
					changed = true
				}
			}
		}
		cfg.observe("FOLLOW", pass, follow)
	}
	return follow, nil
}

// followInto handles a single occurence  A ➞ … B rest. It returns true if
// FOLLOW(B) has grown.
func followInto(g *Grammar, first FirstTable, follow FollowTable, A, B string,
	rest []string, policy SymbolPolicy) (bool, error) {
	//
	rest = withoutEpsilon(rest)
	before := follow[B].Size()
	if len(rest) == 0 { // B is the last symbol to derive anything
		follow[B].Union(follow[A])
		return follow[B].Size() > before, nil
	}
	f, err := first.OfSequence(g, rest, policy)
	if err != nil {
		return false, err
	}
	follow[B].Union(f.Without(Epsilon))
	if f.Contains(Epsilon) {
		follow[B].Union(follow[A])
	}
	return follow[B].Size() > before, nil
}

func withoutEpsilon(seq []string) []string {
	r := make([]string, 0, len(seq))
	for _, sym := range seq {
		if sym != Epsilon {
			r = append(r, sym)
		}
	}
	return r
}
