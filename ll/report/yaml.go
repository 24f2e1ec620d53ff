package report

import (
	"io"

	"github.com/npillmayer/llcheck/ll"
	"gopkg.in/yaml.v3"
)

// Document is the exported form of an analysis.
type Document struct {
	Grammar      string              `yaml:"grammar"`
	Start        string              `yaml:"start"`
	Fingerprint  string              `yaml:"fingerprint"`
	LL1          bool                `yaml:"ll1"`
	NonTerminals []string            `yaml:"nonterminals,flow"`
	Terminals    []string            `yaml:"terminals,flow"`
	Productions  []ProductionEntry   `yaml:"productions"`
	First        map[string][]string `yaml:"first"`
	Follow       map[string][]string `yaml:"follow"`
	Conflicts    []ConflictEntry     `yaml:"conflicts,omitempty"`
	Table        []CellEntry         `yaml:"table"`
}

// ProductionEntry is a production of a Document.
type ProductionEntry struct {
	Serial      int      `yaml:"serial"`
	LHS         string   `yaml:"lhs"`
	RHS         []string `yaml:"rhs,flow"`
	Description string   `yaml:"description,omitempty"`
}

// ConflictEntry is a conflict of a Document. Productions are referenced by serial.
type ConflictEntry struct {
	Kind        string   `yaml:"kind"`
	NonTerminal string   `yaml:"nonterminal"`
	Productions []int    `yaml:"productions,flow"`
	Overlap     []string `yaml:"overlap,flow"`
	Reason      string   `yaml:"reason"`
}

// CellEntry is a non-empty parsing table cell of a Document.
type CellEntry struct {
	NonTerminal string `yaml:"nonterminal"`
	Lookahead   string `yaml:"lookahead"`
	Productions []int  `yaml:"productions,flow"`
	Conflict    bool   `yaml:"conflict,omitempty"`
}

// Export collects grammar, sets, conflicts and parsing table of an analysis.
// It fails if the grammar cannot be fingerprinted.
func Export(ga *ll.LL1Analysis) (*Document, error) {
	g := ga.Grammar()
	fp, err := g.Fingerprint()
	if err != nil {
		return nil, err
	}
	isLL1, conflicts := ga.CheckLL1()
	doc := &Document{
		Grammar:      g.Name,
		Start:        g.StartSymbol(),
		Fingerprint:  fp,
		LL1:          isLL1,
		NonTerminals: g.NonTerminals(),
		Terminals:    g.Terminals(),
		First:        make(map[string][]string),
		Follow:       make(map[string][]string),
	}
	for _, p := range g.Productions() {
		doc.Productions = append(doc.Productions, ProductionEntry{
			Serial:      p.Serial,
			LHS:         p.LHS,
			RHS:         p.RHS(),
			Description: p.Description,
		})
	}
	for _, A := range g.NonTerminals() {
		doc.First[A] = ga.First(A).Values()
		doc.Follow[A] = ga.Follow(A).Values()
	}
	for _, c := range conflicts {
		doc.Conflicts = append(doc.Conflicts, ConflictEntry{
			Kind:        c.Kind.String(),
			NonTerminal: c.NonTerminal,
			Productions: []int{c.Alt1.Serial, c.Alt2.Serial},
			Overlap:     c.Overlap.Values(),
			Reason:      c.Explanation(),
		})
	}
	ga.BuildParsingTable().EachCell(func(c ll.Cell) {
		serials := make([]int, len(c.Productions))
		for i, p := range c.Productions {
			serials[i] = p.Serial
		}
		doc.Table = append(doc.Table, CellEntry{
			NonTerminal: c.NonTerminal,
			Lookahead:   c.Lookahead,
			Productions: serials,
			Conflict:    c.IsConflict(),
		})
	})
	return doc, nil
}

// YAML writes the exported analysis as YAML.
func YAML(w io.Writer, ga *ll.LL1Analysis) error {
	doc, err := Export(ga)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
