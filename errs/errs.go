// Package errs defines the CSONH error taxonomy: LexError for failures
// in the lexical analyzer, ParseError for failures in the parser. Both
// carry a 1-based source Position pinpointing the offending token.
package errs

import (
	"fmt"

	"github.com/csonh-lang/csonh/token"
)

// LexKind enumerates the lexical error taxonomy.
type LexKind int

const (
	MixedIndent LexKind = iota
	IndentChar
	IndentUnit
	DedentMismatch
	UnterminatedString
	NewlineInString
	Interpolation
	UnterminatedBlockComment
	InvalidEscape
	InvalidUnicodeEscape
	InvalidScientific
	LeadingZero
	RangeOperator
	InvalidDigitRun
	UnexpectedChar
)

// LexError is returned by the lexer when the input cannot be
// tokenized.
type LexError struct {
	Kind LexKind
	Pos  token.Position
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// ParseKind enumerates the syntactic error taxonomy.
type ParseKind int

const (
	ExpectedKey ParseKind = iota
	ExpectedColon
	ExpectedValue
	BarewordRejected
	ExpectedSeparator
	UnclosedObject
	UnclosedArray
	RootMustBeObjectOrArray
	TrailingJunk
)

// ParseError is returned by the parser when the token stream does not
// match the grammar.
type ParseError struct {
	Kind ParseKind
	Pos  token.Position
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}
