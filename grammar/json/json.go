// Package json is a JSON grammar (https://www.json.org) built from parser
// combinators.
package json

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/dhamidi/combo/parser"
)

// Grammar holds the production rules of JSON. Every rule skips the
// whitespace that follows it.
type Grammar struct {
	Value  parser.Parser[Value]
	Object parser.Parser[Object]
	Array  parser.Parser[Array]
	String parser.Parser[String]
	Number parser.Parser[Number]

	// Document is a whole JSON text: a value surrounded by optional
	// whitespace and nothing else.
	Document parser.Parser[Value]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isHex(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

var whitespace = parser.Many(parser.Satisfies(isSpace))

func token[T any](p parser.Parser[T]) parser.Parser[T] {
	return parser.Left(p, whitespace)
}

func punct(r rune) parser.Parser[rune] {
	return token(parser.Literal(r))
}

func asValue[T Value](p parser.Parser[T]) parser.Parser[Value] {
	return parser.Map(p, func(v T) Value { return v })
}

// New builds the JSON grammar.
func New() *Grammar {
	g := &Grammar{}

	g.String = token(stringLiteral())
	g.Number = token(number())

	// object and array refer back to value, so value reaches them lazily.
	g.Value = parser.Trace("value", parser.Choice(
		asValue(g.String),
		asValue(g.Number),
		asValue(parser.Lazy(func() parser.Parser[Object] { return g.Object })),
		asValue(parser.Lazy(func() parser.Parser[Array] { return g.Array })),
		asValue(token(parser.Value(parser.LiteralString("true"), Bool(true)))),
		asValue(token(parser.Value(parser.LiteralString("false"), Bool(false)))),
		asValue(token(parser.Value(parser.LiteralString("null"), Null{}))),
	))

	elements := parser.Sequence(g.Value, parser.Many(parser.Right(punct(','), g.Value)), prepend[Value])
	g.Array = parser.Trace("array", parser.Or(
		parser.Value(parser.Right(punct('['), punct(']')), Array{Values: []Value{}}),
		parser.Map(parser.Right(punct('['), parser.Left(elements, punct(']'))), func(values []Value) Array {
			return Array{Values: values}
		}),
	))

	member := parser.Sequence(parser.Left(g.String, punct(':')), g.Value, func(key String, v Value) Member {
		return Member{Key: string(key), Value: v}
	})
	members := parser.Sequence(member, parser.Many(parser.Right(punct(','), member)), prepend[Member])
	g.Object = parser.Trace("object", parser.Or(
		parser.Value(parser.Right(punct('{'), punct('}')), Object{Members: []Member{}}),
		parser.Map(parser.Right(punct('{'), parser.Left(members, punct('}'))), func(m []Member) Object {
			return Object{Members: m}
		}),
	))

	g.Document = parser.Left(parser.Right(whitespace, g.Value), parser.End)

	return g
}

func prepend[T any](first T, rest []T) []T {
	return append([]T{first}, rest...)
}

func stringLiteral() parser.Parser[String] {
	hex4 := parser.Map(parser.AsString(parser.Repeat(parser.Satisfies(isHex), 4)), func(s string) rune {
		n, _ := strconv.ParseUint(s, 16, 16)
		return rune(n)
	})
	escapes := map[rune]rune{'"': '"', '\\': '\\', '/': '/', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t'}
	simpleEscape := parser.Map(parser.Satisfies(func(r rune) bool {
		_, ok := escapes[r]
		return ok
	}), func(r rune) string { return string(escapes[r]) })

	// \uXXXX optionally followed by a second \uXXXX completing a surrogate pair.
	unicodeEscape := parser.Sequence(
		parser.Right(parser.Literal('u'), hex4),
		parser.Optional(parser.Right(parser.LiteralString(`\u`), hex4), -1),
		func(first, second rune) string {
			if second < 0 {
				return string(first)
			}
			if utf16.IsSurrogate(first) {
				if r := utf16.DecodeRune(first, second); r != unicode.ReplacementChar {
					return string(r)
				}
			}
			return string(first) + string(second)
		},
	)

	plain := parser.Map(parser.Satisfies(func(r rune) bool {
		return r >= 0x20 && r != '\\' && r != '"'
	}), func(r rune) string { return string(r) })
	escaped := parser.Right(parser.Literal('\\'), parser.Or(simpleEscape, unicodeEscape))

	body := parser.AsString(parser.Many(parser.Or(plain, escaped)))
	return parser.Map(parser.Right(parser.Literal('"'), parser.Left(body, parser.Label(parser.Literal('"'), "unterminated string"))), func(s string) String {
		return String(s)
	})
}

func number() parser.Parser[Number] {
	minus := parser.Optional(parser.Value(parser.Literal('-'), Negative), Positive)
	digits := parser.AsString(parser.AtLeastOne(parser.Digit))

	integer := parser.Or(
		parser.LiteralString("0"),
		parser.Sequence(parser.Range('1', '9'), parser.AsString(parser.Many(parser.Digit)), func(first rune, rest string) string {
			return string(first) + rest
		}),
	)
	frac := parser.Optional(parser.Right(parser.Literal('.'), digits), "")

	expSign := parser.Optional(parser.Or(
		parser.Value(parser.Literal('+'), Positive),
		parser.Value(parser.Literal('-'), Negative),
	), Positive)
	exp := parser.Optional(parser.Right(parser.Satisfies(func(r rune) bool { return r == 'e' || r == 'E' }),
		parser.Sequence(expSign, digits, func(s Sign, d string) *Exp { return &Exp{Sign: s, Digits: d} })), nil)

	signed := parser.Sequence(minus, integer, func(s Sign, i string) Number { return Number{Sign: s, Int: i} })
	withFrac := parser.Sequence(signed, frac, func(n Number, f string) Number {
		n.Frac = f
		return n
	})
	return parser.Sequence(withFrac, exp, func(n Number, e *Exp) Number {
		n.Exp = e
		return n
	})
}

var defaultGrammar = New()

// Parse parses a complete JSON document.
func Parse(text string, opts ...parser.Option) (Value, error) {
	v, err := parser.Parse(defaultGrammar.Document, text, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return v, nil
}

// Quote returns s as a JSON string literal. Only the characters JSON
// requires to be escaped are escaped.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
