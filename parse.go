// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom

import (
	"errors"
	"strconv"

	"go4.org/mem"
)

// ParseErrKind is the type of an error reported by the parser.
type ParseErrKind byte

// Constants defining the valid ParseErrKind values.
const (
	ParseOK            ParseErrKind = iota // no error
	MissingCommaAttrib                     // expected "," before the next object attribute
	MissingCommaItem                       // expected "," before the next array item
	UnexpectedComma                        // expected an attribute but got ","
	MissingStringKey                       // attribute key absent, empty, or not a string
	UnterminatedString                     // reached end of input inside a string
	UnexpectedToken                        // no value can start with this character
	MissingColon                           // expected ":" after an attribute key
	InvalidNumber                          // number with no digits
)

var parseErrStr = [...]string{
	ParseOK:            "no error",
	MissingCommaAttrib: `expected "," before the next object attribute`,
	MissingCommaItem:   `expected "," before the next array item`,
	UnexpectedComma:    `expected an attribute but got ","`,
	MissingStringKey:   "expected a non-empty string attribute key",
	UnterminatedString: "expected a closing quote but got end of input",
	UnexpectedToken:    "expected the start of an object, array, string, number, boolean, or null",
	MissingColon:       `expected ":" after an object attribute key`,
	InvalidNumber:      "expected an integer or floating-point number",
}

func (e ParseErrKind) String() string {
	if int(e) >= len(parseErrStr) {
		return "unknown error"
	}
	return parseErrStr[e]
}

// An ErrorHandler receives the context of a parse failure.
type ErrorHandler func(*ParseContext)

// Parse parses text into a document tree. It always returns a usable root
// value, never nil.
//
// If any error occurs during the walk, onError (when non-nil) is invoked
// exactly once with the failure context, the best-effort tree built so far
// is returned, and its root carries ErrParse in the sticky error register.
//
// The parser recurses once per nesting level of the input, so the maximum
// accepted nesting depth is bounded only by the call stack.
func Parse(text string, onError ErrorHandler) *Value {
	p := &parser{in: text}
	root := p.parseValue()
	if p.err != ParseOK {
		if onError != nil {
			onError(&ParseContext{in: text, pos: p.pos, err: p.err})
		}
		root.lastErr = ErrParse
	}
	return root
}

// A parser is a cursor over an immutable input span, plus a sticky error
// register. Each sub-parser consumes the text of one production and leaves
// the cursor one past it.
type parser struct {
	in  string
	pos int
	err ParseErrKind
}

func (p *parser) fail(err ParseErrKind) { p.err = err }

// skipSpace advances the cursor past spaces, tabs and newlines. It is never
// applied inside a string literal.
func (p *parser) skipSpace() {
	for p.pos < len(p.in) && isSpace(p.in[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// parseValue consumes a single value of any kind, dispatching on the first
// significant character. An unrecognized character fails with
// UnexpectedToken and yields a default empty object, so the caller always
// receives a well-formed value.
func (p *parser) parseValue() *Value {
	p.skipSpace()
	if p.pos >= len(p.in) {
		p.fail(UnexpectedToken)
		return NewObject()
	}
	switch c := p.in[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		return p.parseString()
	case c == 't' || c == 'f':
		return p.parseBoolean()
	case c == 'n':
		return p.parseNull()
	case c == '-' || isDigit(c):
		return p.parseNumber()
	}
	p.fail(UnexpectedToken)
	return NewObject()
}

// parseObject consumes an object.
// Precondition: the cursor is at "{".
//
// On any error the partially built object is returned immediately. Reaching
// the end of input without a closing "}" returns the partial object without
// error.
func (p *parser) parseObject() *Value {
	p.pos++ // consume "{"
	obj := NewObject()

	wantComma := false
	for p.pos < len(p.in) {
		p.skipSpace()
		if p.pos >= len(p.in) {
			break
		}
		switch c := p.in[p.pos]; {
		case c == '}':
			p.pos++
			return obj

		case c == ',':
			if !wantComma {
				p.fail(UnexpectedComma)
				return obj
			}
			wantComma = false
			p.pos++

		default:
			if wantComma {
				p.fail(MissingCommaAttrib)
				return obj
			}

			// The key must itself parse as a JSON string value.
			var key string
			p.parseValue().MapString(func(s string) { key = s })
			if p.err != ParseOK {
				return obj
			} else if key == "" {
				p.fail(MissingStringKey)
				return obj
			}

			p.skipSpace()
			if p.pos >= len(p.in) || p.in[p.pos] != ':' {
				p.fail(MissingColon)
				return obj
			}
			p.pos++

			val := p.parseValue()
			obj.Set(key, val)
			if p.err != ParseOK {
				return obj
			}
			wantComma = true
		}
	}
	return obj
}

// parseArray consumes an array. It runs the same comma state machine as
// parseObject, except that items carry no key.
// Precondition: the cursor is at "[".
func (p *parser) parseArray() *Value {
	p.pos++ // consume "["
	arr := NewArray()

	wantComma := false
	for p.pos < len(p.in) {
		p.skipSpace()
		if p.pos >= len(p.in) {
			break
		}
		switch c := p.in[p.pos]; {
		case c == ']':
			p.pos++
			return arr

		case c == ',':
			if !wantComma {
				p.fail(MissingCommaItem)
				return arr
			}
			wantComma = false
			p.pos++

		default:
			if wantComma {
				p.fail(MissingCommaItem)
				return arr
			}
			arr.Push(p.parseValue())
			if p.err != ParseOK {
				return arr
			}
			wantComma = true
		}
	}
	return arr
}

// parseString consumes a string literal.
// Precondition: the cursor is at the opening quote.
//
// A quote counts as closing unless the single immediately preceding byte is
// a backslash. This look-behind is an approximation: a literal backslash
// followed by a quote (\\") is misread as an escaped quote. The accumulated
// text is stored undecoded; escape sequences are not translated.
func (p *parser) parseString() *Value {
	p.pos++ // consume the opening quote
	start := p.pos
	for p.pos < len(p.in) {
		if p.in[p.pos] == '"' && p.in[p.pos-1] != '\\' {
			s := p.in[start:p.pos]
			p.pos++
			return New(s)
		}
		p.pos++
	}
	p.fail(UnterminatedString)
	return New(p.in[start:])
}

// parseNumber consumes a maximal run of digits with an optional leading "-"
// and at most one ".", which marks the value as a float. Exponent notation
// is not supported. A run with no digits fails with InvalidNumber and yields
// a zero value of the scanned kind; a run that overflows the 64-bit range is
// clamped by the conversion, not treated as an error.
func (p *parser) parseNumber() *Value {
	start := p.pos
	if p.in[p.pos] == '-' {
		p.pos++
	}
	isFloat := false
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		if c == '.' && !isFloat {
			isFloat = true
		} else if !isDigit(c) {
			break
		}
		p.pos++
	}

	text := p.in[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if errors.Is(err, strconv.ErrSyntax) {
			p.fail(InvalidNumber)
		}
		return New(f)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if errors.Is(err, strconv.ErrSyntax) {
		p.fail(InvalidNumber)
	}
	return New(n)
}

// parseBoolean consumes a boolean constant. Matching is lax: the next four
// bytes are compared against "true", and anything else starting with the
// dispatch character is taken as false with five bytes consumed, without
// re-validation.
func (p *parser) parseBoolean() *Value {
	end := p.pos + len("true")
	if end <= len(p.in) && mem.S(p.in[p.pos:end]).Equal(mem.S("true")) {
		p.pos = end
		return New(true)
	}
	p.pos += len("false")
	return New(false)
}

// parseNull consumes the null constant. Input starting with "n" that is not
// "null" fails with UnexpectedToken.
func (p *parser) parseNull() *Value {
	end := p.pos + len("null")
	if end > len(p.in) || !mem.S(p.in[p.pos:end]).Equal(mem.S("null")) {
		p.fail(UnexpectedToken)
	}
	p.pos = end
	return New(nil)
}
