package ll

import "fmt"

// ConflictKind is the type of an LL(1) conflict.
type ConflictKind int

const (
	// FirstFirst: two alternatives may start with the same terminal.
	FirstFirst ConflictKind = iota
	// FirstFollow: a nullable alternative may be followed by a terminal
	// another alternative starts with.
	FirstFollow
)

func (k ConflictKind) String() string {
	if k == FirstFirst {
		return "FIRST/FIRST"
	}
	return "FIRST/FOLLOW"
}

// Conflict describes an LL(1) conflict between two alternatives of a
// non-terminal. Alt1 is always declared before Alt2.
type Conflict struct {
	Kind        ConflictKind
	NonTerminal string
	Alt1, Alt2  *Production
	First1      *SymbolSet // FIRST(Alt1)
	First2      *SymbolSet // FIRST(Alt2)
	Follow      *SymbolSet // FOLLOW(NonTerminal), FIRST/FOLLOW only
	Overlap     *SymbolSet // the terminals no decision is possible for
	Nullable    int        // number (1 or 2) of the nullable alternative, FIRST/FOLLOW only
	Both        bool       // both alternatives derive ε
}

// NullableAlt returns the alternative deriving ε for FIRST/FOLLOW conflicts,
// nil otherwise.
func (c *Conflict) NullableAlt() *Production {
	switch c.Nullable {
	case 1:
		return c.Alt1
	case 2:
		return c.Alt2
	}
	return nil
}

// OtherAlt returns the alternative opposite to NullableAlt, nil for FIRST/FIRST conflicts.
func (c *Conflict) OtherAlt() *Production {
	switch c.Nullable {
	case 1:
		return c.Alt2
	case 2:
		return c.Alt1
	}
	return nil
}

// OtherFirst returns FIRST of the alternative opposite to NullableAlt.
func (c *Conflict) OtherFirst() *SymbolSet {
	if c.Nullable == 2 {
		return c.First1
	}
	return c.First2
}

// Explanation returns a human readable explanation of the ambiguity.
func (c *Conflict) Explanation() string {
	switch {
	case c.Kind == FirstFirst:
		return fmt.Sprintf("Cannot determine which production to use when seeing %v", c.Overlap)
	case c.Both:
		return fmt.Sprintf("Both productions derive ε, when seeing %v after %s can't decide which one to use",
			c.Overlap, c.NonTerminal)
	}
	return fmt.Sprintf("When seeing %v, can't decide between using ε and expecting these tokens after %s or parsing the other production",
		c.Overlap, c.NonTerminal)
}

func (c *Conflict) String() string {
	return fmt.Sprintf("%v conflict in %s on %v: [%s] vs [%s]", c.Kind, c.NonTerminal, c.Overlap,
		rhsString(c.Alt1), rhsString(c.Alt2))
}

func rhsString(p *Production) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(p.rhs)
}

// --- LL(1) check -----------------------------------------------------------

// CheckLL1 compares every pair of alternatives of every non-terminal. Two
// alternatives α and β of a non-terminal A are in conflict, if
//
//    FIRST(α) ∩ FIRST(β) \ { ε } ≠ ∅                       (FIRST/FIRST)
//    ε ∈ FIRST(α) and FIRST(β) \ { ε } ∩ FOLLOW(A) ≠ ∅     (FIRST/FOLLOW)
//    ε ∈ FIRST(β) and FIRST(α) \ { ε } ∩ FOLLOW(A) ≠ ∅     (FIRST/FOLLOW)
//    ε ∈ FIRST(α) ∩ FIRST(β) and FOLLOW(A) ≠ ∅             (FIRST/FOLLOW)
//
// The last condition extends the textbook pairwise test, which lets two
// nullable alternatives pass although both fill every cell of FOLLOW(A).
// With it, CheckLL1 and BuildParsingTable agree on the LL(1) property for
// every grammar. Such conflicts are flagged with Both.
//
// Conflicts are returned in order of declaration of non-terminals and
// alternatives. The grammar is LL(1) if no conflict is found.
func (ga *LL1Analysis) CheckLL1() (bool, []*Conflict) {
	var conflicts []*Conflict
	ga.g.EachNonTerminal(func(A string, alts []*Production) interface{} {
		if len(alts) < 2 {
			return nil
		}
		firsts := make([]*SymbolSet, len(alts))
		for i, alt := range alts {
			firsts[i] = ga.FirstOfSequence(alt.rhs)
		}
		for i := 0; i < len(alts); i++ {
			for j := i + 1; j < len(alts); j++ {
				c := checkPair(A, alts[i], alts[j], firsts[i], firsts[j], ga.Follow(A))
				conflicts = append(conflicts, c...)
			}
		}
		return nil
	})
	for _, c := range conflicts {
		tracer().Debugf("%v", c)
	}
	tracer().Infof("grammar %s: %d LL(1) conflicts", ga.g.Name, len(conflicts))
	return len(conflicts) == 0, conflicts
}

// checkPair tests two alternatives α and β of non-terminal A, with f1 = FIRST(α)
// and f2 = FIRST(β).
func checkPair(A string, alpha, beta *Production, f1, f2, follow *SymbolSet) []*Conflict {
	var conflicts []*Conflict
	conflict := func(kind ConflictKind, overlap *SymbolSet, nullable int) *Conflict {
		c := &Conflict{
			Kind:        kind,
			NonTerminal: A,
			Alt1:        alpha,
			Alt2:        beta,
			First1:      f1,
			First2:      f2,
			Overlap:     overlap,
			Nullable:    nullable,
		}
		if kind == FirstFollow {
			c.Follow = follow
		}
		return c
	}
	t1, t2 := f1.Without(Epsilon), f2.Without(Epsilon)
	if I := t1.Intersection(t2); !I.Empty() {
		conflicts = append(conflicts, conflict(FirstFirst, I, 0))
	}
	if f1.Contains(Epsilon) {
		if I := t2.Intersection(follow); !I.Empty() {
			conflicts = append(conflicts, conflict(FirstFollow, I, 1))
		}
	}
	if f2.Contains(Epsilon) {
		if I := t1.Intersection(follow); !I.Empty() {
			conflicts = append(conflicts, conflict(FirstFollow, I, 2))
		}
	}
	if f1.Contains(Epsilon) && f2.Contains(Epsilon) && !follow.Empty() {
		c := conflict(FirstFollow, follow.Copy(), 1)
		c.Both = true
		conflicts = append(conflicts, c)
	}
	return conflicts
}
