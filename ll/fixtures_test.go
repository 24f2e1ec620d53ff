package ll

import "testing"

// Grammars used throughout the tests of this package.

//  S ➞ a S b | ε
func nestedGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Nested")
	b.LHS("S").T("a").N("S").T("b").End()
	b.LHS("S").Epsilon()
	return mustGrammar(t, b)
}

//  S ➞ A | B
//  A ➞ a
//  B ➞ a
func firstFirstGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("FirstFirst")
	b.LHS("S").N("A").End()
	b.LHS("S").N("B").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("a").End()
	return mustGrammar(t, b)
}

//  S ➞ a A | A b
//  A ➞ b | ε
func firstFollowGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("FirstFollow")
	b.LHS("S").T("a").N("A").End()
	b.LHS("S").N("A").T("b").End()
	b.LHS("A").T("b").End()
	b.LHS("A").Epsilon()
	return mustGrammar(t, b)
}

//  E  ➞ T E'
//  E' ➞ + T E' | ε
//  T  ➞ F T'
//  T' ➞ * F T' | ε
//  F  ➞ ( E ) | id
func exprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Expr")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	return mustGrammar(t, b)
}

//  E ➞ E + T | T
//  T ➞ T * F | F
//  F ➞ ( E ) | id
func leftRecursiveGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("LeftRecursive")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	return mustGrammar(t, b)
}

//  S  ➞ i E t S S' | a
//  S' ➞ e S | ε
//  E  ➞ b
func danglingElseGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("DanglingElse")
	b.LHS("S").T("i").N("E").T("t").N("S").N("S'").End()
	b.LHS("S").T("a").End()
	b.LHS("S'").T("e").N("S").End()
	b.LHS("S'").Epsilon()
	b.LHS("E").T("b").End()
	return mustGrammar(t, b)
}

//  S ➞ A x
//  A ➞ B C
//  B ➞ C | ε
//  C ➞ A | ε
func cyclicNullableGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("CyclicNullable")
	b.LHS("S").N("A").T("x").End()
	b.LHS("A").N("B").N("C").End()
	b.LHS("B").N("C").End()
	b.LHS("B").Epsilon()
	b.LHS("C").N("A").End()
	b.LHS("C").Epsilon()
	return mustGrammar(t, b)
}

//  S ➞ A | B
//  A ➞ ε
//  B ➞ ε
func bothNullableGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("BothNullable")
	b.LHS("S").N("A").End()
	b.LHS("S").N("B").End()
	b.LHS("A").Epsilon()
	b.LHS("B").Epsilon()
	return mustGrammar(t, b)
}

//  S ➞ X c | d
//  X ➞ A | B | c
//  A ➞ ε
//  B ➞ ε d
func threeAltGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("ThreeAlternatives")
	b.LHS("S").N("X").T("c").End()
	b.LHS("S").T("d").End()
	b.LHS("X").N("A").End()
	b.LHS("X").N("B").End()
	b.LHS("X").T("c").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T(Epsilon).T("d").End()
	return mustGrammar(t, b)
}

func allGrammars(t *testing.T) []*Grammar {
	return []*Grammar{
		NewGrammar("Empty"),
		nestedGrammar(t),
		firstFirstGrammar(t),
		firstFollowGrammar(t),
		exprGrammar(t),
		leftRecursiveGrammar(t),
		danglingElseGrammar(t),
		cyclicNullableGrammar(t),
		bothNullableGrammar(t),
		threeAltGrammar(t),
	}
}

func mustGrammar(t *testing.T, b *GrammarBuilder) *Grammar {
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	return g
}

func mustAnalyse(t *testing.T, g *Grammar, opts ...Option) *LL1Analysis {
	ga, err := Analysis(g, opts...)
	if err != nil {
		t.Fatalf("cannot analyse grammar %s: %v", g.Name, err)
	}
	return ga
}
