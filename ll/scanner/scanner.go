/*
Package scanner defines an interface for scanners of grammar sources, and
an adapter to use lexmachine as a scanner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/llcheck"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcheck.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llcheck.scanner")
}

// EOF is the token type for end of input, identical to text/scanner.EOF.
const EOF llcheck.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llcheck.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the LexMachine scanner.
type DefaultToken struct {
	kind   llcheck.TokType
	lexeme string
	Val    interface{}
	span   llcheck.Span
	line   int
}

var _ llcheck.Token = DefaultToken{}

// MakeDefaultToken creates a token. Its value is the lexeme.
func MakeDefaultToken(typ llcheck.TokType, lexeme string, span llcheck.Span, line int) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		Val:    lexeme,
		span:   span,
		line:   line,
	}
}

func (t DefaultToken) TokType() llcheck.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() llcheck.Span {
	return t.span
}

func (t DefaultToken) Line() int {
	return t.line
}
