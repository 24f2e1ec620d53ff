package scanner

import (
	"strings"

	"github.com/npillmayer/llcheck"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// ASCII literals ('|', '->', …), a list of keywords ("%start", …) and a
// map for translating token strings to their values. Literals and keywords
// take precedence over patterns added by init for matches of equal length,
// thus init may add catch-all patterns.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	stuck   bool // scanner cannot advance any more
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Input which cannot be
// matched is reported to the error handler and skipped. Any other error
// which leaves the scanner at the same position ends the input.
func (lms *LMScanner) NextToken() llcheck.Token {
	if lms.stuck {
		return lms.eof()
	}
	tc := lms.scanner.TC
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		} else if lms.scanner.TC == tc {
			tracer().Errorf("scanner stuck at position %d", tc)
			lms.stuck = true
			return lms.eof()
		}
		tc = lms.scanner.TC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return lms.eof()
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q", token.Type, token.Lexeme)
	t := MakeDefaultToken(
		llcheck.TokType(token.Type),
		string(token.Lexeme),
		llcheck.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		token.StartLine,
	)
	t.Val = token.Value
	return t
}

func (lms *LMScanner) eof() llcheck.Token {
	pos := uint64(lms.scanner.TC)
	return MakeDefaultToken(EOF, "", llcheck.Span{pos, pos}, 0)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
