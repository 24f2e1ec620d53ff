package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/llcheck/ll"
	"github.com/npillmayer/llcheck/ll/prodlist"
	"github.com/npillmayer/llcheck/ll/report"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Exit codes
const (
	exitOK       = 0
	exitNotLL1   = 1
	exitBadInput = 2
	exitFailure  = 3
)

// traceKeys are the trace selectors of all packages of this module.
var traceKeys = []string{"llcheck.cli", "llcheck.ll", "llcheck.prodlist", "llcheck.report", "llcheck.scanner"}

// options are the settings taken from the command line.
type options struct {
	start   string // start symbol, overrides %start
	showAll bool   // print every cell of a parsing table
	format  string // text, yaml or table
	strict  bool   // fail on unclassified symbols
}

func (opts options) analysisOptions() []ll.Option {
	return []ll.Option{ll.Strict(opts.strict)}
}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	start := flag.String("start", "", "Start symbol, overrides %start declarations")
	all := flag.Bool("all", false, "Print all cells of the parsing table")
	format := flag.String("format", "text", "Output format [text|yaml|table]")
	strict := flag.Bool("strict", false, "Fail on symbols which are neither terminals nor non-terminals")
	interactive := flag.Bool("i", false, "Interactive mode, after loading files")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	opts := options{
		start:   *start,
		showAll: *all,
		format:  strings.ToLower(*format),
		strict:  *strict,
	}
	if *interactive || flag.NArg() == 0 {
		os.Exit(interact(flag.Args(), opts))
	}
	os.Exit(batch(flag.Args(), opts, os.Stdout))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// --- Batch mode ------------------------------------------------------------

// batch analyses every file and writes a report per file to w. It returns
// the exit code.
func batch(files []string, opts options, w io.Writer) int {
	code := exitOK
	for _, file := range files {
		isLL1, err := checkFile(file, opts, w)
		if err != nil {
			pterm.Error.Println(err.Error())
			code = exitBadInput
			continue
		}
		if !isLL1 && code == exitOK {
			code = exitNotLL1
		}
	}
	return code
}

func checkFile(file string, opts options, w io.Writer) (bool, error) {
	g, err := readGrammar(file, opts)
	if err != nil {
		return false, err
	}
	ga, err := ll.Analysis(g, opts.analysisOptions()...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", file, err)
	}
	return render(w, ga, opts)
}

func readGrammar(file string, opts options) (*ll.Grammar, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	g, err := prodlist.Read(name, f)
	if err != nil {
		return nil, err
	}
	if err = overrideStart(g, opts.start); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	g.Dump()
	return g, nil
}

func overrideStart(g *ll.Grammar, start string) error {
	if start == "" {
		return nil
	}
	if len(g.Alternatives(start)) == 0 {
		return fmt.Errorf("start symbol %s has no productions", start)
	}
	g.SetStartSymbol(start)
	return nil
}

// render writes an analysis in the format selected and returns the LL(1)
// verdict.
func render(w io.Writer, ga *ll.LL1Analysis, opts options) (bool, error) {
	switch opts.format {
	case "yaml":
		isLL1, _ := ga.CheckLL1()
		return isLL1, report.YAML(w, ga)
	case "table":
		isLL1, conflicts := ga.CheckLL1()
		table, err := report.Table(ga.BuildParsingTable())
		if err != nil {
			return isLL1, err
		}
		report.Info(w, ga.Grammar())
		fmt.Fprintf(w, "\n%s\n", table)
		report.Summary(w, ga.Grammar(), isLL1, conflicts)
		return isLL1, nil
	case "text", "":
		return report.Text(w, ga, opts.showAll), nil
	}
	return false, fmt.Errorf("unknown output format %q", opts.format)
}
