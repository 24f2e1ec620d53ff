package ll

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Reserved symbols. They must not collide with symbols of a grammar.
const (
	Epsilon = "ε" // the empty string
	EOF     = "$" // end of input
)

// ErrUnknownSymbol is returned by analysis stages running with a strict
// symbol policy, whenever a symbol is neither a non-terminal nor a known terminal.
var ErrUnknownSymbol = errors.New("unknown grammar symbol")

// SymbolClass is the category of a symbol with respect to a grammar.
type SymbolClass int

// Symbol classes, as returned by Grammar.Classify.
const (
	UnknownSymbol SymbolClass = iota // neither declared non-terminal nor classified terminal
	NonTerminalSymbol
	TerminalSymbol
	EpsilonSymbol
)

func (c SymbolClass) String() string {
	switch c {
	case NonTerminalSymbol:
		return "non-terminal"
	case TerminalSymbol:
		return "terminal"
	case EpsilonSymbol:
		return "epsilon"
	}
	return "unknown"
}

// SymbolPolicy decides how analysis stages treat unknown symbols.
type SymbolPolicy int

const (
	// LenientSymbols treats unknown symbols as terminals.
	LenientSymbols SymbolPolicy = iota
	// StrictSymbols makes an unknown symbol an error.
	StrictSymbols
)

// classify is the single place where the symbol policy is applied.
func (policy SymbolPolicy) classify(g *Grammar, sym string) (SymbolClass, error) {
	c := g.Classify(sym)
	if c == UnknownSymbol {
		if policy == StrictSymbols {
			return c, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
		}
		tracer().Debugf("symbol %q is unknown, treated as terminal", sym)
	}
	return c, nil
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is a sorted set of grammar symbols. The zero value is not usable,
// create sets with NewSymbolSet. A nil *SymbolSet behaves like an empty set for
// all read operations.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...string) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(utils.StringComparator)}
	for _, sym := range syms {
		S.set.Add(sym)
	}
	return S
}

// Add adds symbols to S.
func (S *SymbolSet) Add(syms ...string) *SymbolSet {
	for _, sym := range syms {
		S.set.Add(sym)
	}
	return S
}

// Contains is a predicate: is sym an element of S?
func (S *SymbolSet) Contains(sym string) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(sym)
}

// Size returns the number of elements of S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is a predicate: has S no elements?
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the elements of S in sorted order.
func (S *SymbolSet) Values() []string {
	if S == nil {
		return []string{}
	}
	vals := make([]string, 0, S.set.Size())
	for _, v := range S.set.Values() {
		vals = append(vals, v.(string))
	}
	return vals
}

// Union adds all elements of other to S. It returns true if S has grown.
func (S *SymbolSet) Union(other *SymbolSet) bool {
	before := S.set.Size()
	for _, sym := range other.Values() {
		S.set.Add(sym)
	}
	return S.set.Size() > before
}

// Without returns a copy of S without sym. S is not changed.
func (S *SymbolSet) Without(sym string) *SymbolSet {
	C := S.Copy()
	C.set.Remove(sym)
	return C
}

// Intersection returns a new set of all elements contained in both S and other.
func (S *SymbolSet) Intersection(other *SymbolSet) *SymbolSet {
	I := NewSymbolSet()
	for _, sym := range S.Values() {
		if other.Contains(sym) {
			I.set.Add(sym)
		}
	}
	return I
}

// Copy returns a shallow copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Values()...)
}

// Equals is a predicate: do S and other contain the same symbols?
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, sym := range S.Values() {
		if !other.Contains(sym) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	return "{" + strings.Join(S.Values(), ", ") + "}"
}
