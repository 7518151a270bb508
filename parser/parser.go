// Package parser implements the CSONH recursive-descent parser: it
// consumes the lexer's token vector and produces one Value tree, or a
// *errs.ParseError pinpointing the offending token.
//
// The parser has no explicit state machine beyond the call stack: a
// hand-rolled token cursor walked with Peek/Next rather than a
// declarative grammar, because the grammar mixes an indentation-
// sensitive "indented" form with a bracket-delimited form that share
// literal and key parsing but differ in terminator and separator
// rules.
package parser

import (
	"github.com/csonh-lang/csonh/errs"
	"github.com/csonh-lang/csonh/lexer"
	"github.com/csonh-lang/csonh/token"
)

// Parse lexes and parses source in one step, returning the root Value
// (always an Object or Array, or an empty Object for blank/comment-only
// input) or an error (*errs.LexError or *errs.ParseError).
func Parse(source string) (Value, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return Value{}, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses an already-lexed token vector.
func ParseTokens(tokens []token.Token) (Value, error) {
	p := &parser{tokens: tokens}
	return p.parseRoot()
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() token.Token {
	t := p.tokens[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(kind errs.ParseKind, pos token.Position, msg string) error {
	return &errs.ParseError{Kind: kind, Pos: pos, Msg: msg}
}

// skipNewlines consumes zero or more NEWLINE tokens.
func (p *parser) skipNewlines() {
	for p.peek().Kind == token.NEWLINE {
		p.next()
	}
}

// skipBracketNoise consumes NEWLINE, INDENT, and DEDENT tokens, which
// are purely informational inside {...} and [...] — indentation is
// not grammatical there.
func (p *parser) skipBracketNoise() {
	for {
		switch p.peek().Kind {
		case token.NEWLINE, token.INDENT, token.DEDENT:
			p.next()
		default:
			return
		}
	}
}

func (p *parser) parseRoot() (Value, error) {
	p.skipNewlines()
	switch p.peek().Kind {
	case token.EOF:
		return Obj2Value(NewObject()), nil
	case token.LBRACKET:
		v, err := p.parseBracketedArray()
		if err != nil {
			return Value{}, err
		}
		return p.sealRoot(v)
	case token.LBRACE:
		v, err := p.parseBracketedObject()
		if err != nil {
			return Value{}, err
		}
		return p.sealRoot(v)
	}

	if !isKeyToken(p.peek()) || p.tokens[p.pos+1].Kind != token.COLON {
		t := p.peek()
		return Value{}, p.errorf(errs.RootMustBeObjectOrArray, t.Pos, "root must be object or array")
	}

	obj, err := p.parseIndentedObjectBody()
	if err != nil {
		return Value{}, err
	}
	return p.sealRoot(Obj2Value(obj))
}

// sealRoot enforces the top-level seal: after the root value, only
// whitespace/newlines/comments may precede EOF.
func (p *parser) sealRoot(v Value) (Value, error) {
	p.skipNewlines()
	if p.peek().Kind != token.EOF {
		t := p.peek()
		return Value{}, p.errorf(errs.TrailingJunk, t.Pos, "unexpected content at top level")
	}
	return v, nil
}

func isKeyToken(t token.Token) bool {
	return t.Kind == token.IDENTIFIER || t.Kind == token.STRING
}

// parseKey parses one object key: an IDENTIFIER or STRING token.
func (p *parser) parseKey() (string, error) {
	t := p.peek()
	switch t.Kind {
	case token.IDENTIFIER:
		p.next()
		return t.Ident, nil
	case token.STRING:
		p.next()
		return p.stringValue(t), nil
	default:
		return "", p.errorf(errs.ExpectedKey, t.Pos, "expected a key")
	}
}

// parseIndentedObjectBody parses the body of an implicitly-nested
// object: "key: value" pairs separated by newlines, terminated by
// DEDENT or EOF.
func (p *parser) parseIndentedObjectBody() (*Object, error) {
	obj := NewObject()
	for {
		switch p.peek().Kind {
		case token.DEDENT, token.EOF:
			return obj, nil
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != token.COLON {
			t := p.peek()
			return nil, p.errorf(errs.ExpectedColon, t.Pos, "expected ':' after key")
		}
		p.next()
		p.skipNewlines()

		val, err := p.parseValueAfterColon()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
		p.skipNewlines()
	}
}

// parseValueAfterColon parses the value that follows a colon: the
// routine shared by the indented and bracketed grammars alike.
func (p *parser) parseValueAfterColon() (Value, error) {
	switch p.peek().Kind {
	case token.INDENT:
		p.next()
		obj, err := p.parseIndentedObjectBody()
		if err != nil {
			return Value{}, err
		}
		if p.peek().Kind != token.DEDENT {
			t := p.peek()
			return Value{}, p.errorf(errs.ExpectedValue, t.Pos, "expected dedent to close indented block")
		}
		p.next()
		return Obj2Value(obj), nil
	case token.LBRACE:
		return p.parseBracketedObject()
	case token.LBRACKET:
		return p.parseBracketedArray()
	default:
		return p.parseLiteral()
	}
}

// parseLiteral parses a scalar literal: STRING, NUMBER, TRUE, FALSE,
// or NULL. An IDENTIFIER here is a rejected bareword.
func (p *parser) parseLiteral() (Value, error) {
	t := p.peek()
	switch t.Kind {
	case token.STRING:
		p.next()
		return String(p.stringValue(t)), nil
	case token.NUMBER:
		p.next()
		if t.Num.Float {
			return Float(t.Num.Float64), nil
		}
		return Int(t.Num.Int), nil
	case token.TRUE:
		p.next()
		return Bool(true), nil
	case token.FALSE:
		p.next()
		return Bool(false), nil
	case token.NULL:
		p.next()
		return Null(), nil
	case token.IDENTIFIER:
		return Value{}, p.errorf(errs.BarewordRejected, t.Pos, "bareword rejected as value")
	default:
		return Value{}, p.errorf(errs.ExpectedValue, t.Pos, "expected a value")
	}
}

// stringValue resolves a STRING token's payload to its final decoded
// text, running the triple-quoted dedent+decode post-processor when
// needed.
func (p *parser) stringValue(t token.Token) string {
	if t.Str.Triple {
		return decodeTripleQuoted(t.Str.Text)
	}
	return t.Str.Text
}

// parseBracketedObject parses a "{ ... }" literal.
func (p *parser) parseBracketedObject() (Value, error) {
	open := p.peek()
	p.next() // consume '{'
	obj := NewObject()
	p.skipBracketNoise()
	for {
		if p.peek().Kind == token.RBRACE {
			p.next()
			return Obj2Value(obj), nil
		}
		if p.peek().Kind == token.EOF {
			return Value{}, p.errorf(errs.UnclosedObject, open.Pos, "unclosed object")
		}

		key, err := p.parseKey()
		if err != nil {
			return Value{}, err
		}
		p.skipBracketNoise()
		if p.peek().Kind != token.COLON {
			t := p.peek()
			return Value{}, p.errorf(errs.ExpectedColon, t.Pos, "expected ':' after key")
		}
		p.next()
		p.skipBracketNoise()

		val, err := p.parseValueAfterColon()
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, val)

		if err := p.consumeBracketSeparator(token.RBRACE); err != nil {
			return Value{}, err
		}
		if p.peek().Kind == token.RBRACE {
			p.next()
			return Obj2Value(obj), nil
		}
		p.skipBracketNoise()
	}
}

// parseBracketedArray parses a "[ ... ]" literal, symmetric to
// parseBracketedObject except its items are arbitrary values rather
// than key/value pairs.
func (p *parser) parseBracketedArray() (Value, error) {
	open := p.peek()
	p.next() // consume '['
	var items []Value
	p.skipBracketNoise()
	for {
		if p.peek().Kind == token.RBRACKET {
			p.next()
			return Array(items), nil
		}
		if p.peek().Kind == token.EOF {
			return Value{}, p.errorf(errs.UnclosedArray, open.Pos, "unclosed array")
		}

		val, err := p.parseValueAfterColon()
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)

		if err := p.consumeBracketSeparator(token.RBRACKET); err != nil {
			return Value{}, err
		}
		if p.peek().Kind == token.RBRACKET {
			p.next()
			return Array(items), nil
		}
		p.skipBracketNoise()
	}
}

// consumeBracketSeparator accepts exactly one separator after a
// bracketed entry: a single comma, or a run of one or more newlines.
// A trailing comma (immediately followed by the closing bracket) is
// allowed; no separator at all is also allowed when the closer follows
// directly. At end of input nothing is consumed, so the caller reports
// the bracket as unclosed.
func (p *parser) consumeBracketSeparator(closer token.Kind) error {
	switch p.peek().Kind {
	case token.COMMA:
		p.next()
		return nil
	case token.NEWLINE:
		p.skipNewlines()
		return nil
	case closer, token.EOF:
		return nil
	default:
		t := p.peek()
		return p.errorf(errs.ExpectedSeparator, t.Pos, "expected comma or newline between entries")
	}
}
