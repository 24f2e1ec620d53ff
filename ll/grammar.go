package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// === Productions ===========================================================

// Production is a grammar rule  LHS ➞ RHS. Serial is the declaration index of
// the production within its grammar.
type Production struct {
	Serial      int
	LHS         string
	rhs         []string
	Description string // for reporting only
}

// RHS returns the right hand side of a production. The RHS of an
// epsilon-production is [ε], never empty.
func (p *Production) RHS() []string {
	return p.rhs
}

// IsEpsilon is a predicate: is this an epsilon-production?
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 1 && p.rhs[0] == Epsilon
}

func (p *Production) String() string {
	return fmt.Sprintf("%s ➞ %s", p.LHS, strings.Join(p.rhs, " "))
}

// === Grammar ===============================================================

// Grammar is a context-free grammar, given as an ordered list of productions.
// Productions are grouped by their left hand side, keeping declaration order.
//
// Terminals are not declared. Call IdentifyTerminals after the grammar is
// complete (Analysis does this).
type Grammar struct {
	Name         string
	rules        *linkedhashmap.Map // non-terminal -> *arraylist.List of *Production
	productions  *arraylist.List    // all productions in declaration order
	nonterminals *treeset.Set
	terminals    *treeset.Set
	start        string
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		rules:        linkedhashmap.New(),
		productions:  arraylist.New(),
		nonterminals: treeset.NewWith(utils.StringComparator),
		terminals:    treeset.NewWith(utils.StringComparator),
	}
}

// AddProduction appends a production lhs ➞ rhs to the grammar. An empty rhs
// is stored as [ε]. The first production added determines the start symbol,
// unless it is set explicitly.
//
// No validation is performed.
func (g *Grammar) AddProduction(lhs string, rhs []string, description string) *Production {
	if len(rhs) == 0 {
		rhs = []string{Epsilon}
	}
	p := &Production{
		Serial:      g.productions.Size(),
		LHS:         lhs,
		rhs:         append([]string(nil), rhs...),
		Description: description,
	}
	g.productions.Add(p)
	g.nonterminals.Add(lhs)
	alts, found := g.rules.Get(lhs)
	if !found {
		alts = arraylist.New()
		g.rules.Put(lhs, alts)
	}
	alts.(*arraylist.List).Add(p)
	if g.start == "" {
		g.start = lhs
	}
	return p
}

// SetStartSymbol overrides the start symbol.
func (g *Grammar) SetStartSymbol(sym string) {
	g.start = sym
}

// StartSymbol returns the start symbol, or "" for an empty grammar.
func (g *Grammar) StartSymbol() string {
	return g.start
}

// IdentifyTerminals classifies every symbol referenced on a right hand side,
// which is not a non-terminal, as a terminal. Terminals are re-computed from
// scratch with every call.
func (g *Grammar) IdentifyTerminals() {
	g.terminals.Clear()
	for _, x := range g.productions.Values() {
		for _, sym := range x.(*Production).rhs {
			if sym != Epsilon && !g.nonterminals.Contains(sym) {
				g.terminals.Add(sym)
			}
		}
	}
	tracer().Debugf("grammar %s has %d terminals and %d non-terminals",
		g.Name, g.terminals.Size(), g.nonterminals.Size())
}

// Classify returns the category of a symbol.
// Terminals are known only after IdentifyTerminals has been called.
func (g *Grammar) Classify(sym string) SymbolClass {
	switch {
	case sym == Epsilon:
		return EpsilonSymbol
	case g.nonterminals.Contains(sym):
		return NonTerminalSymbol
	case g.terminals.Contains(sym):
		return TerminalSymbol
	}
	return UnknownSymbol
}

// NonTerminals returns the non-terminals of g in sorted order.
func (g *Grammar) NonTerminals() []string {
	return stringValues(g.nonterminals)
}

// Terminals returns the terminals of g in sorted order.
func (g *Grammar) Terminals() []string {
	return stringValues(g.terminals)
}

// Alternatives returns all productions with left hand side A, in order of
// declaration.
func (g *Grammar) Alternatives(A string) []*Production {
	alts, found := g.rules.Get(A)
	if !found {
		return nil
	}
	return productionValues(alts.(*arraylist.List))
}

// Productions returns all productions of g in order of declaration.
func (g *Grammar) Productions() []*Production {
	return productionValues(g.productions)
}

// Production returns the production with a given serial number, or nil.
func (g *Grammar) Production(serial int) *Production {
	p, ok := g.productions.Get(serial)
	if !ok {
		return nil
	}
	return p.(*Production)
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return g.productions.Size()
}

// EachNonTerminal iterates over all non-terminals in order of their first
// declaration, calling a mapper function for each. The results of the
// mapper calls are collected and returned.
func (g *Grammar) EachNonTerminal(mapper func(A string, alts []*Production) interface{}) []interface{} {
	var r []interface{}
	it := g.rules.Iterator()
	for it.Next() {
		A := it.Key().(string)
		r = append(r, mapper(A, productionValues(it.Value().(*arraylist.List))))
	}
	return r
}

// Dump is a debugging helper, tracing all productions.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol: %s", g.start)
	for _, p := range g.Productions() {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("-------------------------------------------------------")
}

type fingerprint struct {
	Start string
	Rules [][]string
}

// Fingerprint returns a hash of the start symbol and the productions of g.
// Grammar names and descriptions do not contribute.
func (g *Grammar) Fingerprint() (string, error) {
	fp := fingerprint{Start: g.start}
	for _, p := range g.Productions() {
		fp.Rules = append(fp.Rules, append([]string{p.LHS}, p.rhs...))
	}
	return structhash.Hash(fp, 1)
}

func stringValues(S *treeset.Set) []string {
	vals := make([]string, 0, S.Size())
	for _, v := range S.Values() {
		vals = append(vals, v.(string))
	}
	return vals
}

func productionValues(l *arraylist.List) []*Production {
	prods := make([]*Production, 0, l.Size())
	for _, x := range l.Values() {
		prods = append(prods, x.(*Production))
	}
	return prods
}

// === Grammar Builder =======================================================

// GrammarBuilder is a builder type for grammars. Use it like this:
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S ➞ A a
//    b.LHS("A").T("b").End()         // A ➞ b
//    b.LHS("A").Epsilon()            // A ➞ ε
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	g         *Grammar
	nonterms  map[string]int // symbols used with N(), by rule serial
	err       error
	rulecount int
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		g:        NewGrammar(gname),
		nonterms: make(map[string]int),
	}
}

// RuleBuilder is a builder type for a single production, created by
// GrammarBuilder.LHS.
type RuleBuilder struct {
	gb   *GrammarBuilder
	lhs  string
	rhs  []string
	desc string
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: s}
}

// Start sets an explicit start symbol.
func (gb *GrammarBuilder) Start(s string) *GrammarBuilder {
	gb.g.SetStartSymbol(s)
	return gb
}

// Grammar returns the grammar built, with terminals identified. Rules with
// an empty left hand side or with empty symbol names are reported as an error.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	gb.g.IdentifyTerminals()
	for sym, serial := range gb.nonterms {
		if gb.g.Classify(sym) != NonTerminalSymbol {
			tracer().Debugf("%q used as non-terminal in rule %d, but has no productions; treated as terminal",
				sym, serial)
		}
	}
	return gb.g, nil
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	if _, ok := rb.gb.nonterms[s]; !ok {
		rb.gb.nonterms[s] = rb.gb.rulecount
	}
	rb.rhs = append(rb.rhs, s)
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	rb.rhs = append(rb.rhs, s)
	return rb
}

// Describe attaches a description to the rule.
func (rb *RuleBuilder) Describe(text string) *RuleBuilder {
	rb.desc = text
	return rb
}

// End ends a rule. It returns the production, or nil if the rule is malformed.
func (rb *RuleBuilder) End() *Production {
	gb := rb.gb
	defer func() { gb.rulecount++ }()
	if rb.lhs == "" {
		gb.fail(fmt.Errorf("rule #%d: left hand side is empty", gb.rulecount))
		return nil
	}
	for i, sym := range rb.rhs {
		if sym == "" {
			gb.fail(fmt.Errorf("rule #%d (%s): symbol #%d is empty", gb.rulecount, rb.lhs, i+1))
			return nil
		}
	}
	if len(rb.rhs) == 0 {
		rb.rhs = []string{Epsilon}
	}
	return gb.g.AddProduction(rb.lhs, rb.rhs, rb.desc)
}

// Epsilon sets the RHS to ε and ends the rule.
func (rb *RuleBuilder) Epsilon() *Production {
	rb.rhs = []string{Epsilon}
	return rb.End()
}

func (gb *GrammarBuilder) fail(err error) {
	tracer().Errorf(err.Error())
	if gb.err == nil {
		gb.err = err
	}
}
