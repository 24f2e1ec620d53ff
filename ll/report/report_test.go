package report

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/llcheck/ll"
	"github.com/npillmayer/llcheck/ll/prodlist"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var grammarFiles = map[string]string{
	"subc": "../prodlist/testdata/subc.grammar",
	"stmt": "testdata/stmt.grammar",
}

func analyse(t *testing.T, name string) *ll.LL1Analysis {
	f, err := os.Open(grammarFiles[name])
	require.NoError(t, err)
	defer f.Close()
	g, err := prodlist.Read(name, f)
	require.NoError(t, err)
	ga, err := ll.Analysis(g)
	require.NoError(t, err)
	return ga
}

func golden(t *testing.T, name string) string {
	data, err := ioutil.ReadFile("testdata/" + name + ".golden")
	require.NoError(t, err)
	return string(data)
}

func TestGoldenSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	for name := range grammarFiles {
		ga := analyse(t, name)
		var first, follow strings.Builder
		FirstSets(&first, ga)
		FollowSets(&follow, ga)
		assert.Equal(t, golden(t, name+".first"), first.String(), "FIRST sets of %s", name)
		assert.Equal(t, golden(t, name+".follow"), follow.String(), "FOLLOW sets of %s", name)
	}
}

func TestGoldenTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	for file, showAll := range map[string]bool{
		"subc.table":     true,
		"subc.conflicts": false,
		"stmt.table":     false,
	} {
		ga := analyse(t, strings.Split(file, ".")[0])
		var b strings.Builder
		ParsingTable(&b, ga.BuildParsingTable(), showAll)
		assert.Equal(t, golden(t, file), b.String(), "parsing table %s", file)
	}
}

func TestGoldenConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	ga := analyse(t, "stmt")
	isLL1, conflicts := ga.CheckLL1()
	assert.False(t, isLL1)
	var b strings.Builder
	Conflicts(&b, conflicts)
	assert.Equal(t, golden(t, "stmt.conflicts"), b.String())
}

func TestGoldenGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	var b strings.Builder
	Grammar(&b, analyse(t, "stmt").Grammar())
	assert.Equal(t, golden(t, "stmt.grammar"), b.String())
}

func TestBothNullableConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	g, err := prodlist.Parse("both", "S -> A b\nA -> B | C\nB -> x | ε\nC -> ε")
	require.NoError(t, err)
	ga, err := ll.Analysis(g)
	require.NoError(t, err)
	_, conflicts := ga.CheckLL1()
	require.Len(t, conflicts, 1)
	text := Conflict(conflicts[0])
	t.Logf("\n%s", text)
	assert.Contains(t, text, "FIRST/FOLLOW Conflict in 'A':")
	assert.Contains(t, text, "Nullable production (#1): A → B")
	assert.Contains(t, text, "Other production: A → C")
	assert.Contains(t, text, "Overlap: {b}")
}

func TestSummaryAndText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	ga := analyse(t, "subc")
	var b strings.Builder
	isLL1 := Text(&b, ga, false)
	assert.True(t, isLL1)
	out := b.String()
	for _, expected := range []string{
		"Start Symbol: <prog>",
		"Non-terminals (43):",
		"Terminals (37):",
		"The grammar is LL(1).",
		"No conflicts in parsing table.",
		"Total productions: 84",
		"LL(1) Status: PASS",
	} {
		assert.Contains(t, out, expected)
	}
	fp, err := ga.Grammar().Fingerprint()
	require.NoError(t, err)
	assert.Contains(t, out, "Start Symbol: <prog>\nFingerprint: "+fp+"\n")
	order := []string{"Grammar Information", "GRAMMAR PRODUCTIONS", "FIRST SETS",
		"FOLLOW SETS", "LL(1) Analysis Results", "LL(1) PARSING TABLE (conflicts only)", "Summary"}
	pos := -1
	for _, title := range order {
		i := strings.Index(out, "\n"+title+"\n")
		assert.Greater(t, i, pos, "section %s out of order", title)
		pos = i
	}
	b.Reset()
	Text(&b, ga, true)
	assert.Contains(t, b.String(), "\nLL(1) PARSING TABLE\n")
	assert.NotContains(t, b.String(), "(conflicts only)")
	//
	b.Reset()
	ga = analyse(t, "stmt")
	isLL1, conflicts := ga.CheckLL1()
	Summary(&b, ga.Grammar(), isLL1, conflicts)
	assert.Contains(t, b.String(), "LL(1) Status: FAIL\nConflicts found: 6\n")
}

func TestFormatRHS(t *testing.T) {
	g := ll.NewGrammar("G")
	p1 := g.AddProduction("S", []string{"a", "S"}, "")
	p2 := g.AddProduction("S", nil, "")
	assert.Equal(t, "a S", FormatRHS(p1))
	assert.Equal(t, "ε", FormatRHS(p2))
	assert.Equal(t, "{a, b}", FormatSet(ll.NewSymbolSet("b", "a")))
	assert.Equal(t, "{}", FormatSet(ll.NewSymbolSet()))
}

func TestTerminalRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	ga := analyse(t, "stmt")
	pt := ga.BuildParsingTable()
	data := TableData(pt)
	require.Len(t, data, len(pt.NonTerminals())+1)
	assert.Equal(t, append([]string{""}, pt.Lookaheads()...), data[0])
	for _, row := range data[1:] {
		if row[0] == "<else>" {
			col := 1
			for j, a := range pt.Lookaheads() {
				if a == "else" {
					col = j + 1
				}
			}
			assert.Equal(t, "else <stmt> ‖ ε", row[col])
		}
	}
	table, err := Table(pt)
	require.NoError(t, err)
	assert.Contains(t, table, "<label>")
	tree, err := Tree(ga.Grammar())
	require.NoError(t, err)
	assert.Contains(t, tree, "→ id :")
	assert.Contains(t, tree, "// conditional")
}

func TestYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	ga := analyse(t, "stmt")
	var b strings.Builder
	require.NoError(t, YAML(&b, ga))
	t.Logf("\n%s", b.String())
	doc := Document{}
	require.NoError(t, yaml.Unmarshal([]byte(b.String()), &doc))
	assert.Equal(t, "stmt", doc.Grammar)
	assert.Equal(t, "<prog>", doc.Start)
	fp, err := ga.Grammar().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fp, doc.Fingerprint)
	assert.False(t, doc.LL1)
	assert.Len(t, doc.Productions, 13)
	assert.Equal(t, []string{"$"}, doc.Follow["<prog>"])
	assert.Equal(t, []string{"else", "ε"}, doc.First["<else>"])
	require.Len(t, doc.Conflicts, 6)
	assert.Equal(t, "FIRST/FIRST", doc.Conflicts[0].Kind)
	assert.Equal(t, "<stmts>", doc.Conflicts[0].NonTerminal)
	conflicting := 0
	for _, cell := range doc.Table {
		if cell.Conflict {
			conflicting++
			assert.Len(t, cell.Productions, 2)
		}
	}
	assert.Equal(t, 8, conflicting)
}

func TestFingerprintIdentifiesGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.ll")
	defer teardown()
	//
	export := func(name, source string) *Document {
		g, err := prodlist.Parse(name, source)
		require.NoError(t, err)
		ga, err := ll.Analysis(g)
		require.NoError(t, err)
		doc, err := Export(ga)
		require.NoError(t, err)
		return doc
	}
	d1 := export("one", "S -> a S b | ε  // nested")
	d2 := export("two", "S -> a S b\n  | ε")
	d3 := export("three", "S -> a S b | c")
	assert.NotEmpty(t, d1.Fingerprint)
	assert.Equal(t, d1.Fingerprint, d2.Fingerprint, "names and descriptions do not count")
	assert.NotEqual(t, d1.Fingerprint, d3.Fingerprint)
}
