// Package token defines the lexical token vocabulary shared by the
// CSONH lexer and parser.
package token

import (
	"fmt"

	participle "github.com/alecthomas/participle/v2/lexer"
)

// Position is a 1-based (line, column) source location. It is the same
// Position type participle's lexer package uses, so error values and
// tokens carry positions in a shape already familiar from the rest of
// the dependency graph.
type Position = participle.Position

// Kind identifies the grammatical category of a Token.
type Kind int

const (
	EOF Kind = iota
	INDENT
	DEDENT
	NEWLINE
	STRING
	NUMBER
	TRUE
	FALSE
	NULL
	IDENTIFIER
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COLON
	COMMA
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case INDENT:
		return "INDENT"
	case DEDENT:
		return "DEDENT"
	case NEWLINE:
		return "NEWLINE"
	case STRING:
		return "STRING"
	case NUMBER:
		return "NUMBER"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NULL:
		return "NULL"
	case IDENTIFIER:
		return "IDENTIFIER"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case COLON:
		return "COLON"
	case COMMA:
		return "COMMA"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// StringPayload is the STRING token's payload. For an ordinary
// (single- or double-quoted, single-line) string, Text is already
// escape-decoded and ready to use. For a triple-quoted string, Text is
// the raw, undecoded interior — the lexer cannot know the closing
// indentation width until the parser sees where the value ends, so
// dedent and escape decoding are deferred to the string post-processor.
type StringPayload struct {
	Triple bool
	Quote  rune
	Text   string
}

// NumberPayload is the NUMBER token's already-computed value.
type NumberPayload struct {
	Float   bool
	Int     int64
	Float64 float64
}

// Token is a single lexical unit. Exactly one of the payload fields is
// meaningful, selected by Kind: Str for STRING, Num for NUMBER, Bool
// for TRUE/FALSE, Ident for IDENTIFIER. Raw holds the literal source
// text for structural tokens (braces, brackets, colon, comma), keywords
// and identifiers; it is empty for STRING, NUMBER and the synthetic
// layout tokens. String prints Raw, when set, for kinds without their
// own payload formatting.
type Token struct {
	Kind  Kind
	Pos   Position
	Raw   string
	Str   *StringPayload
	Num   *NumberPayload
	Bool  bool
	Ident string
}

func (t Token) String() string {
	switch t.Kind {
	case STRING:
		return fmt.Sprintf("%s STRING %q", t.Pos, t.Str.Text)
	case NUMBER:
		if t.Num.Float {
			return fmt.Sprintf("%s NUMBER %v", t.Pos, t.Num.Float64)
		}
		return fmt.Sprintf("%s NUMBER %v", t.Pos, t.Num.Int)
	case IDENTIFIER:
		return fmt.Sprintf("%s IDENTIFIER %q", t.Pos, t.Ident)
	default:
		if t.Raw != "" {
			return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Raw)
		}
		return fmt.Sprintf("%s %s", t.Pos, t.Kind)
	}
}
