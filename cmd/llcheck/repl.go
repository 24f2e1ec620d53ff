package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/llcheck/ll"
	"github.com/npillmayer/llcheck/ll/prodlist"
	"github.com/npillmayer/llcheck/ll/report"
	"github.com/pterm/pterm"
)

// interact loads files into a session and starts the REPL. It returns the
// exit code.
func interact(files []string, opts options) int {
	pterm.Info.Println("Welcome to llcheck") // colored welcome message
	session := NewSession("session", opts, os.Stdout)
	for _, file := range files {
		if err := session.Load(file); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	repl, err := readline.New("llcheck> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return exitFailure
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := session.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
	return exitOK
}

// Session is an interactive grammar editing and checking session. The
// grammar is kept as production list source and re-read after every change.
type Session struct {
	name   string
	opts   options
	out    io.Writer
	source []string // accepted production list lines
}

// NewSession creates an empty session writing its reports to out.
func NewSession(name string, opts options, out io.Writer) *Session {
	return &Session{name: name, opts: opts, out: out}
}

type command struct {
	args string // argument synopsis
	help string
	run  func(s *Session, args []string) (bool, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"check":   {"", "check the LL(1) property and list conflicts", (*Session).check},
		"first":   {"[A …]", "print FIRST sets", (*Session).first},
		"follow":  {"[A …]", "print FOLLOW sets", (*Session).follow},
		"table":   {"[all]", "print the parsing table", (*Session).table},
		"grammar": {"", "print the productions", (*Session).grammar},
		"list":    {"", "print the grammar as a production list", (*Session).list},
		"yaml":    {"", "export the analysis as YAML", (*Session).yaml},
		"start":   {"S", "set the start symbol", (*Session).start},
		"load":    {"file", "add the productions of a file", (*Session).load},
		"reset":   {"", "clear the grammar", (*Session).reset},
		"help":    {"", "show this list", (*Session).help},
		"quit":    {"", "leave llcheck", (*Session).quit},
	}
}

// Eval evaluates an input line, which is either a command starting with ':'
// or a production list line. Eval returns true if the session should end.
func (s *Session) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		fields := strings.Fields(line[1:])
		if len(fields) == 0 {
			return false, errors.New("missing command after ':'")
		}
		cmd, ok := commands[fields[0]]
		if !ok {
			return false, fmt.Errorf("unknown command :%s, try :help", fields[0])
		}
		tracer().Debugf("command :%s %v", fields[0], fields[1:])
		return cmd.run(s, fields[1:])
	}
	return false, s.add(line)
}

// add appends lines to the grammar source if the resulting source can be read.
func (s *Session) add(lines ...string) error {
	source := append(append([]string{}, s.source...), lines...)
	g, err := prodlist.Parse(s.name, strings.Join(source, "\n"))
	if err != nil {
		return err
	}
	s.source = source
	tracer().Infof("grammar has %d productions", g.Size())
	return nil
}

// Load adds the productions of a production list file to the session.
func (s *Session) Load(file string) error {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}
	if err = s.add(strings.Split(string(data), "\n")...); err != nil {
		return err
	}
	pterm.Success.Println("loaded " + file)
	return nil
}

// Analysis reads the current grammar and analyses it.
func (s *Session) Analysis() (*ll.LL1Analysis, error) {
	g, err := prodlist.Parse(s.name, strings.Join(s.source, "\n"))
	if err != nil {
		return nil, err
	}
	if g.Size() == 0 {
		return nil, errors.New("grammar is empty, enter productions like 'S -> a S | ε'")
	}
	if err = overrideStart(g, s.opts.start); err != nil {
		return nil, err
	}
	return ll.Analysis(g, s.opts.analysisOptions()...)
}

func (s *Session) check(args []string) (bool, error) {
	ga, err := s.Analysis()
	if err != nil {
		return false, err
	}
	isLL1, conflicts := ga.CheckLL1()
	if isLL1 {
		pterm.Success.Println("The grammar is LL(1).")
		return false, nil
	}
	pterm.Warning.Println("The grammar is not LL(1).")
	report.Conflicts(s.out, conflicts)
	return false, nil
}

func (s *Session) first(args []string) (bool, error) {
	return false, s.sets("FIRST", args)
}

func (s *Session) follow(args []string) (bool, error) {
	return false, s.sets("FOLLOW", args)
}

func (s *Session) sets(kind string, args []string) error {
	ga, err := s.Analysis()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if kind == "FIRST" {
			report.FirstSets(s.out, ga)
		} else {
			report.FollowSets(s.out, ga)
		}
		return nil
	}
	for _, A := range args {
		if ga.Grammar().Classify(A) != ll.NonTerminalSymbol {
			return fmt.Errorf("%s is not a non-terminal", A)
		}
		S := ga.First(A)
		if kind == "FOLLOW" {
			S = ga.Follow(A)
		}
		fmt.Fprintf(s.out, "  %s(%s) = %s\n", kind, A, report.FormatSet(S))
	}
	return nil
}

func (s *Session) table(args []string) (bool, error) {
	ga, err := s.Analysis()
	if err != nil {
		return false, err
	}
	pt := ga.BuildParsingTable()
	if len(args) > 0 && args[0] == "all" {
		report.ParsingTable(s.out, pt, true)
		return false, nil
	}
	table, err := report.Table(pt)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, table)
	return false, nil
}

func (s *Session) grammar(args []string) (bool, error) {
	ga, err := s.Analysis()
	if err != nil {
		return false, err
	}
	tree, err := report.Tree(ga.Grammar())
	if err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, tree)
	return false, nil
}

func (s *Session) list(args []string) (bool, error) {
	ga, err := s.Analysis()
	if err != nil {
		return false, err
	}
	return false, prodlist.Write(s.out, ga.Grammar())
}

func (s *Session) yaml(args []string) (bool, error) {
	ga, err := s.Analysis()
	if err != nil {
		return false, err
	}
	return false, report.YAML(s.out, ga)
}

func (s *Session) start(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: :start S")
	}
	prev := s.opts.start
	s.opts.start = args[0]
	if _, err := s.Analysis(); err != nil {
		s.opts.start = prev
		return false, err
	}
	return false, nil
}

func (s *Session) load(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: :load file")
	}
	return false, s.Load(args[0])
}

func (s *Session) reset(args []string) (bool, error) {
	s.source = nil
	s.opts.start = ""
	pterm.Info.Println("grammar cleared")
	return false, nil
}

func (s *Session) help(args []string) (bool, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(s.out, "  :%-16s %s\n", strings.TrimSpace(name+" "+cmd.args), cmd.help)
	}
	fmt.Fprintln(s.out, "  Any other input is read as a production line, e.g. 'S -> a S | ε'.")
	return false, nil
}

func (s *Session) quit(args []string) (bool, error) {
	return true, nil
}
