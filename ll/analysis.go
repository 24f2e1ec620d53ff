package ll

// --- Options ---------------------------------------------------------------

// Option configures grammar analysis.
type Option func(cfg *config)

// PassObserver is called after every pass of a fixpoint iteration, with the
// stage ("FIRST" or "FOLLOW"), the 1-based pass number and the cardinality of
// every set of the table.
type PassObserver func(stage string, pass int, sizes map[string]int)

type config struct {
	policy   SymbolPolicy
	observer PassObserver
}

func makeConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg config) observe(stage string, pass int, table map[string]*SymbolSet) {
	tracer().Debugf("%s pass %d done", stage, pass)
	if cfg.observer != nil {
		cfg.observer(stage, pass, sizes(table))
	}
}

// Strict sets or clears the strict symbol policy. With a strict policy, an
// analysis stage which encounters a symbol being neither a non-terminal
// nor a classified terminal fails with ErrUnknownSymbol. Otherwise unknown
// symbols are treated as terminals.
func Strict(b bool) Option {
	return func(cfg *config) {
		if b {
			cfg.policy = StrictSymbols
		} else {
			cfg.policy = LenientSymbols
		}
	}
}

// ObservePasses installs an observer for fixpoint iterations.
func ObservePasses(observer PassObserver) Option {
	return func(cfg *config) {
		cfg.observer = observer
	}
}

// === Grammar Analysis ======================================================

// LL1Analysis is an object for grammar analysis (compute FIRST and FOLLOW sets,
// check for LL(1) conflicts, build the predictive parsing table).
type LL1Analysis struct {
	g      *Grammar
	first  FirstTable
	follow FollowTable
	cfg    config
}

// Analysis creates an analysis object for a grammar. It identifies the
// terminals of g and computes FIRST and FOLLOW sets. g must not be changed
// afterwards.
func Analysis(g *Grammar, opts ...Option) (*LL1Analysis, error) {
	ga := &LL1Analysis{g: g, cfg: makeConfig(opts)}
	g.IdentifyTerminals()
	var err error
	if ga.first, err = ComputeFirstSets(g, nil, opts...); err != nil {
		return nil, err
	}
	if ga.follow, err = ComputeFollowSets(g, ga.first, nil, opts...); err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s analysed: %d productions, %d non-terminals, %d terminals",
		g.Name, g.Size(), len(g.NonTerminals()), len(g.Terminals()))
	return ga, nil
}

// Grammar returns the grammar this analyser operates on.
func (ga *LL1Analysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(X) for a symbol X, or an empty set for symbols not part
// of the grammar.
func (ga *LL1Analysis) First(X string) *SymbolSet {
	if f, ok := ga.first[X]; ok {
		return f
	}
	return NewSymbolSet()
}

// Follow returns FOLLOW(A) for a non-terminal A, or an empty set.
func (ga *LL1Analysis) Follow(A string) *SymbolSet {
	if f, ok := ga.follow[A]; ok {
		return f
	}
	return NewSymbolSet()
}

// FirstTable returns the table of FIRST-sets.
func (ga *LL1Analysis) FirstTable() FirstTable {
	return ga.first
}

// FollowTable returns the table of FOLLOW-sets.
func (ga *LL1Analysis) FollowTable() FollowTable {
	return ga.follow
}

// FirstOfSequence returns FIRST(X1 … Xn). Unknown symbols are treated as
// terminals, even with a strict policy; in this case the violation is traced.
func (ga *LL1Analysis) FirstOfSequence(seq []string) *SymbolSet {
	f, err := ga.first.OfSequence(ga.g, seq, ga.cfg.policy)
	if err != nil {
		tracer().Errorf("FIRST%v: %v", seq, err)
		f, _ = ga.first.OfSequence(ga.g, seq, LenientSymbols)
	}
	return f
}
