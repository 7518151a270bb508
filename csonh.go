// Package csonh implements CSONH: a strict, data-only configuration
// format combining JSON's unambiguous typing with indentation-based
// readability. Parse turns a complete UTF-8 source document into an
// immutable Value tree, or a precise diagnostic error carrying a
// source line and column.
//
// The pipeline is two stages: a hand-written lexical analyzer
// (package lexer) that also performs indentation bookkeeping, and a
// recursive-descent parser (package parser) that mixes an
// indentation-sensitive grammar with a bracket-delimited one. Parsing
// is a pure, synchronous function of its input: no I/O, no shared
// mutable state, safe to call concurrently on independent inputs.
package csonh

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/csonh-lang/csonh/errs"
	"github.com/csonh-lang/csonh/parser"
	"github.com/csonh-lang/csonh/token"
)

// Value is the result of a successful parse: an immutable tree of
// Object, Array, String, Integer, Float, Boolean, or Null nodes.
type Value = parser.Value

// Kind discriminates the variants of Value.
type Kind = parser.Kind

const (
	KindNull    = parser.KindNull
	KindBoolean = parser.KindBoolean
	KindInteger = parser.KindInteger
	KindFloat   = parser.KindFloat
	KindString  = parser.KindString
	KindArray   = parser.KindArray
	KindObject  = parser.KindObject
)

// Object is an ordered string-keyed mapping preserving first-insertion
// key order with last-write-wins semantics on duplicate keys.
type Object = parser.Object

// Entry is one key/value pair of an Object, in insertion order.
type Entry = parser.Entry

// Position is a 1-based (line, column) source location.
type Position = token.Position

// LexError is returned when the lexical analyzer cannot tokenize the
// input.
type LexError = errs.LexError

// LexKind enumerates the lexical error taxonomy.
type LexKind = errs.LexKind

// ParseError is returned when the token stream does not match the
// CSONH grammar.
type ParseError = errs.ParseError

// ParseKind enumerates the syntactic error taxonomy.
type ParseKind = errs.ParseKind

const (
	ExpectedKey             = errs.ExpectedKey
	ExpectedColon           = errs.ExpectedColon
	ExpectedValue           = errs.ExpectedValue
	BarewordRejected        = errs.BarewordRejected
	ExpectedSeparator       = errs.ExpectedSeparator
	UnclosedObject          = errs.UnclosedObject
	UnclosedArray           = errs.UnclosedArray
	RootMustBeObjectOrArray = errs.RootMustBeObjectOrArray
	TrailingJunk            = errs.TrailingJunk
)

const (
	MixedIndent              = errs.MixedIndent
	IndentChar               = errs.IndentChar
	IndentUnit               = errs.IndentUnit
	DedentMismatch           = errs.DedentMismatch
	UnterminatedString       = errs.UnterminatedString
	NewlineInString          = errs.NewlineInString
	Interpolation            = errs.Interpolation
	UnterminatedBlockComment = errs.UnterminatedBlockComment
	InvalidEscape            = errs.InvalidEscape
	InvalidUnicodeEscape     = errs.InvalidUnicodeEscape
	InvalidScientific        = errs.InvalidScientific
	LeadingZero              = errs.LeadingZero
	RangeOperator            = errs.RangeOperator
	InvalidDigitRun          = errs.InvalidDigitRun
	UnexpectedChar           = errs.UnexpectedChar
)

// Parse parses a complete CSONH source document held in memory.
func Parse(source string) (Value, error) {
	v, err := parser.Parse(source)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// ParseBytes parses a complete CSONH source document given as bytes.
func ParseBytes(source []byte) (Value, error) {
	return Parse(string(source))
}

// ParseReader reads r to completion and parses the result.
func ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, fmt.Errorf("csonh: read source: %w", err)
	}
	return ParseBytes(data)
}

// Dump renders v as a human-readable tree for debugging and tooling —
// not a CSONH encoder, and not round-trippable back to source text.
func Dump(v Value) string {
	return repr.String(v, repr.Indent("  "), repr.OmitEmpty(true))
}
