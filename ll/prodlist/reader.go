package prodlist

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/npillmayer/llcheck"
	"github.com/npillmayer/llcheck/ll"
	"github.com/npillmayer/llcheck/ll/scanner"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// ErrSyntax is wrapped by every error reporting malformed input.
var ErrSyntax = errors.New("syntax error")

// Token types of the production list format.
const (
	tokArrow llcheck.TokType = iota + 1
	tokBar
	tokStart
	tokEmpty
	tokDesc
	tokQuoted
	tokSymbol
	tokNewline
)

var literals = []string{"->", "|"}
var keywords = []string{"%start", "%empty"}
var tokenIds = map[string]int{
	"->":     int(tokArrow),
	"|":      int(tokBar),
	"%start": int(tokStart),
	"%empty": int(tokEmpty),
}

// patterns are added after literals and keywords. The order is significant,
// as for matches of equal length the first pattern wins.
func patterns(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`→`), scanner.MakeToken("->", int(tokArrow)))
	lexer.Add([]byte(`ε`), scanner.MakeToken("%empty", int(tokEmpty)))
	lexer.Add([]byte(`#[^\n]*`), scanner.Skip)
	lexer.Add([]byte(`//[^\n]*`), description)
	lexer.Add([]byte(`'[^'\n]*'`), quoted)
	lexer.Add([]byte(`[^ \t\r\n]+`), scanner.MakeToken("SYMBOL", int(tokSymbol)))
	lexer.Add([]byte(`( |\t|\r)+`), scanner.Skip)
	lexer.Add([]byte(`\n`), scanner.MakeToken("NL", int(tokNewline)))
}

func description(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	text := strings.TrimSpace(strings.TrimPrefix(string(m.Bytes), "//"))
	return s.Token(int(tokDesc), text, m), nil
}

func quoted(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	sym := string(m.Bytes[1 : len(m.Bytes)-1])
	return s.Token(int(tokQuoted), sym, m), nil
}

var lexerOnce sync.Once
var lexer *scanner.LMAdapter
var lexerErr error

// The DFA is compiled once and shared by all readers.
func lm() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = scanner.NewLMAdapter(patterns, literals, keywords, tokenIds)
	})
	return lexer, lexerErr
}

// --- Reader ----------------------------------------------------------------

// Read reads a production list from r and returns the grammar, with
// terminals identified. name is used as the grammar's name and for error
// positions.
func Read(name string, r io.Reader) (*ll.Grammar, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return Parse(name, string(input))
}

// Parse parses a production list. See Read.
func Parse(name, input string) (*ll.Grammar, error) {
	adapter, err := lm()
	if err != nil {
		return nil, err
	}
	sc, err := adapter.Scanner(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	p := &parser{name: name, g: ll.NewGrammar(name), sc: sc}
	sc.SetErrorHandler(p.scanError)
	for toks := p.nextLine(); toks != nil; toks = p.nextLine() {
		if p.err != nil {
			break
		}
		if len(toks) == 0 {
			continue
		}
		if err := p.line(toks); err != nil {
			return nil, err
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.finish()
}

type parser struct {
	name  string
	g     *ll.Grammar
	sc    scanner.Tokenizer
	lhs   string        // left-hand side of the most recent production line
	start llcheck.Token // %start declaration, if any
	eof   bool
	err   error // first scanning error
}

func (p *parser) scanError(err error) {
	if p.err != nil {
		return
	}
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		p.err = fmt.Errorf("%s:%d: %w: %v", p.name, ui.StartLine, ErrSyntax, err)
		return
	}
	p.err = fmt.Errorf("%s: %w: %v", p.name, ErrSyntax, err)
}

func (p *parser) errorf(at llcheck.Token, format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d: %w: %s", p.name, at.Line(), ErrSyntax, fmt.Sprintf(format, args...))
}

// nextLine returns the tokens of the next input line, excluding the
// newline. It returns nil at end of input.
func (p *parser) nextLine() []llcheck.Token {
	if p.eof {
		return nil
	}
	toks := []llcheck.Token{}
	for {
		tok := p.sc.NextToken()
		switch tok.TokType() {
		case scanner.EOF:
			p.eof = true
			return toks
		case tokNewline:
			return toks
		}
		toks = append(toks, tok)
	}
}

func (p *parser) line(toks []llcheck.Token) error {
	first := toks[0]
	switch first.TokType() {
	case tokStart:
		return p.startDecl(toks)
	case tokBar:
		if p.lhs == "" {
			return p.errorf(first, "continuation without a preceding production")
		}
		return p.alternatives(first, toks[1:])
	case tokSymbol, tokQuoted:
		if len(toks) < 2 || toks[1].TokType() != tokArrow {
			return p.errorf(first, "expected '->' after %s", first.Lexeme())
		}
		sym, err := p.symbol(first)
		if err != nil {
			return err
		}
		p.lhs = sym
		return p.alternatives(toks[1], toks[2:])
	case tokDesc:
		return p.errorf(first, "description without a production")
	}
	return p.errorf(first, "unexpected %q at start of line", first.Lexeme())
}

func (p *parser) startDecl(toks []llcheck.Token) error {
	if p.start != nil {
		return p.errorf(toks[0], "start symbol declared twice, first at line %d", p.start.Line())
	}
	if len(toks) != 2 || (toks[1].TokType() != tokSymbol && toks[1].TokType() != tokQuoted) {
		return p.errorf(toks[0], "%%start expects exactly one symbol")
	}
	sym, err := p.symbol(toks[1])
	if err != nil {
		return err
	}
	p.start = scanner.MakeDefaultToken(toks[1].TokType(), sym, toks[1].Span(), toks[1].Line())
	return nil
}

// alternatives adds the productions of a line for the current left-hand
// side. at is the arrow or bar introducing the first alternative.
func (p *parser) alternatives(at llcheck.Token, toks []llcheck.Token) error {
	var desc string
	if n := len(toks); n > 0 && toks[n-1].TokType() == tokDesc {
		desc = toks[n-1].Value().(string)
		toks = toks[:n-1]
	}
	alts := [][]string{{}}
	for _, tok := range toks {
		cur := len(alts) - 1
		switch tok.TokType() {
		case tokBar:
			alts = append(alts, []string{})
		case tokEmpty:
			alts[cur] = append(alts[cur], ll.Epsilon)
		case tokSymbol, tokQuoted:
			sym, err := p.symbol(tok)
			if err != nil {
				return err
			}
			alts[cur] = append(alts[cur], sym)
		case tokDesc:
			return p.errorf(tok, "description has to end the line")
		case tokArrow:
			return p.errorf(tok, "unexpected '->', quote it to use it as a symbol")
		case tokStart:
			return p.errorf(tok, "%%start has to begin a line")
		default:
			return p.errorf(tok, "unexpected %q", tok.Lexeme())
		}
	}
	for _, rhs := range alts {
		if len(rhs) > 1 && contains(rhs, ll.Epsilon) {
			return p.errorf(at, "ε has to stand alone in an alternative of %s", p.lhs)
		}
		prod := p.g.AddProduction(p.lhs, rhs, desc)
		tracer().Debugf("%s:%d: %v", p.name, at.Line(), prod)
	}
	tracer().Debugf("%d alternative(s) for %s at %v", len(alts), p.lhs, at.Span())
	return nil
}

// symbol returns the grammar symbol for a symbol token, which may be quoted.
func (p *parser) symbol(tok llcheck.Token) (string, error) {
	sym := tok.Value().(string)
	if tok.TokType() == tokSymbol && strings.HasPrefix(sym, "'") {
		return "", p.errorf(tok, "unterminated quote in %s", sym)
	}
	if sym == "" {
		return "", p.errorf(tok, "empty symbol")
	}
	if sym == ll.Epsilon || sym == ll.EOF {
		return "", p.errorf(tok, "%s is a reserved symbol", sym)
	}
	return sym, nil
}

func (p *parser) finish() (*ll.Grammar, error) {
	if p.start != nil {
		S := p.start.Lexeme()
		if len(p.g.Alternatives(S)) == 0 {
			return nil, p.errorf(p.start, "start symbol %s has no productions", S)
		}
		p.g.SetStartSymbol(S)
	}
	p.g.IdentifyTerminals()
	tracer().Infof("read grammar %s: %d productions, start symbol %s",
		p.name, p.g.Size(), p.g.StartSymbol())
	return p.g, nil
}

func contains(syms []string, sym string) bool {
	for _, s := range syms {
		if s == sym {
			return true
		}
	}
	return false
}
