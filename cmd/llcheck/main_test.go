package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	subcFile = "../../ll/prodlist/testdata/subc.grammar"
	stmtFile = "../../ll/report/testdata/stmt.grammar"
)

func TestBatchExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.cli")
	defer teardown()
	//
	opts := options{format: "text"}
	var out strings.Builder
	assert.Equal(t, exitOK, batch([]string{subcFile}, opts, &out))
	assert.Contains(t, out.String(), "LL(1) Status: PASS")
	out.Reset()
	assert.Equal(t, exitNotLL1, batch([]string{subcFile, stmtFile}, opts, &out))
	assert.Contains(t, out.String(), "LL(1) Status: FAIL")
	assert.Equal(t, exitBadInput, batch([]string{stmtFile, "testdata/missing.grammar"}, opts, &out))
}

func TestBatchFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.cli")
	defer teardown()
	//
	var out strings.Builder
	code := batch([]string{stmtFile}, options{format: "yaml"}, &out)
	assert.Equal(t, exitNotLL1, code)
	assert.Contains(t, out.String(), "grammar: stmt\n")
	assert.Contains(t, out.String(), "ll1: false\n")
	out.Reset()
	code = batch([]string{stmtFile}, options{format: "table"}, &out)
	assert.Equal(t, exitNotLL1, code)
	assert.Contains(t, out.String(), "<label>")
	assert.Equal(t, exitBadInput, batch([]string{stmtFile}, options{format: "xml"}, &out))
}

func TestBatchStartOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.cli")
	defer teardown()
	//
	var out strings.Builder
	code := batch([]string{stmtFile}, options{start: "<expr>", showAll: true}, &out)
	assert.Equal(t, exitNotLL1, code)
	assert.Contains(t, out.String(), "Start Symbol: <expr>")
	assert.Contains(t, out.String(), "FOLLOW(<prog>) = {}")
	assert.Equal(t, exitBadInput, batch([]string{stmtFile}, options{start: "id"}, &out))
}

func TestSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.cli")
	defer teardown()
	//
	var out strings.Builder
	s := NewSession("test", options{}, &out)
	_, err := s.Eval(":check")
	assert.Error(t, err, "empty grammar cannot be checked")
	for _, line := range []string{
		"S -> a S b",
		"   | ε",
	} {
		quit, err := s.Eval(line)
		require.NoError(t, err, line)
		assert.False(t, quit)
	}
	_, err = s.Eval("S -> -> x")
	assert.Error(t, err)
	assert.Len(t, s.source, 2, "rejected lines are not kept")
	//
	out.Reset()
	_, err = s.Eval(":first S")
	require.NoError(t, err)
	assert.Equal(t, "  FIRST(S) = {a, ε}\n", out.String())
	out.Reset()
	_, err = s.Eval(":follow")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "FOLLOW(S) = {$, b}")
	_, err = s.Eval(":follow a")
	assert.Error(t, err)
	//
	out.Reset()
	_, err = s.Eval(":check")
	require.NoError(t, err)
	assert.Empty(t, out.String())
	_, err = s.Eval("S -> a")
	require.NoError(t, err)
	_, err = s.Eval(":check")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "FIRST/FIRST Conflict in 'S'")
	//
	for _, cmd := range []string{":table", ":table all", ":grammar", ":list", ":yaml", ":help"} {
		out.Reset()
		_, err = s.Eval(cmd)
		require.NoError(t, err, cmd)
		assert.NotEmpty(t, out.String(), cmd)
	}
	_, err = s.Eval(":start X")
	assert.Error(t, err)
	_, err = s.Eval(":nonsense")
	assert.Error(t, err)
	_, err = s.Eval(":")
	assert.Error(t, err)
	_, err = s.Eval(":reset")
	require.NoError(t, err)
	assert.Empty(t, s.source)
	quit, err := s.Eval(":quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestSessionLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcheck.cli")
	defer teardown()
	//
	var out strings.Builder
	s := NewSession("test", options{}, &out)
	_, err := s.Eval(":load " + stmtFile)
	require.NoError(t, err)
	_, err = s.Eval(":start <stmt>")
	require.NoError(t, err)
	ga, err := s.Analysis()
	require.NoError(t, err)
	assert.Equal(t, "<stmt>", ga.Grammar().StartSymbol())
	assert.Error(t, s.Load("testdata/missing.grammar"))
}
