package llcheck

import "fmt"

// --- Tokens of grammar sources ----------------------------------------------

// TokType is a category type for a Token. Constants are defined by the scanners
// producing tokens.
type TokType int

// Tokens represent input tokens of a grammar source. They are produced by a
// scanner and consumed by a grammar reader.
//
// An example would be a token for a grammar symbol:
//
//    TokType = Symbol      // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "<Expr>"    // lexeme how it appeared in the input stream
//    Value   = "<Expr>"    // symbol name, with quotes removed if any
//    Span    = 67…73       // occured from position 67 in the input stream
//    Line    = 4           // line of the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Line() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
