package ebnf

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/combo/parser"
)

var log = commonlog.GetLogger("combo.ebnf")

// Option configures Compile.
type Option func(*compiler)

// WithSkipSpace skips white space before the terminals of non-lexical
// productions and after the start production, the usual convention for
// grammars written in this notation.
func WithSkipSpace() Option {
	return func(c *compiler) {
		c.skipSpace = true
	}
}

// WithTrace wraps every production in parser.Trace.
func WithTrace() Option {
	return func(c *compiler) {
		c.trace = true
	}
}

type compiler struct {
	grammar   ebnf.Grammar
	rules     map[string]parser.Parser[*Node]
	skipSpace bool
	trace     bool
}

var space = parser.Many(parser.Satisfies(unicode.IsSpace))

// Compile verifies grammar and builds a parser for the start production.
//
// Alternatives are tried in order and the first that matches wins, unlike
// EBNF's set semantics: write longer alternatives first. Left-recursive
// productions recurse without consuming input and must be avoided.
func Compile(grammar ebnf.Grammar, start string, opts ...Option) (parser.Parser[*Node], error) {
	if err := Verify(grammar, start); err != nil {
		return nil, err
	}

	c := &compiler{
		grammar: grammar,
		rules:   make(map[string]parser.Parser[*Node], len(grammar)),
	}
	for _, opt := range opts {
		opt(c)
	}

	for name, prod := range grammar {
		rule, err := c.production(name, prod)
		if err != nil {
			return nil, err
		}
		c.rules[name] = rule
	}
	log.Debugf("compiled %d productions, start %q", len(c.rules), start)

	root := c.rules[start]
	if c.skipSpace {
		root = parser.Left(root, space)
	}
	return root, nil
}

func (c *compiler) production(name string, prod *ebnf.Production) (parser.Parser[*Node], error) {
	lexical := isLexical(name)
	body, err := c.expression(prod.Expr, lexical)
	if err != nil {
		return nil, fmt.Errorf("production %s: %w", name, err)
	}

	var rule parser.Parser[*Node]
	if lexical {
		rule = leaf(name, body)
	} else {
		rule = node(name, body)
	}
	rule = parser.Label(rule, "expected "+name)
	if c.trace {
		rule = parser.Trace(name, rule)
	}
	return rule, nil
}

// reference resolves a production at parse time, so productions can refer
// to each other in any order and recursively.
func (c *compiler) reference(name string) parser.Parser[*Node] {
	return parser.Lazy(func() parser.Parser[*Node] {
		return c.rules[name]
	})
}

func (c *compiler) terminal(p parser.Parser[*Node], lexical bool) parser.Parser[*Node] {
	if c.skipSpace && !lexical {
		return parser.Right(space, p)
	}
	return p
}

func single(p parser.Parser[*Node]) parser.Parser[[]*Node] {
	return parser.Map(p, func(n *Node) []*Node { return []*Node{n} })
}

func concat(a, b []*Node) []*Node {
	out := make([]*Node, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func flatten(groups [][]*Node) []*Node {
	var out []*Node
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func (c *compiler) expression(expr ebnf.Expression, lexical bool) (parser.Parser[[]*Node], error) {
	switch e := expr.(type) {
	case nil:
		return parser.Parser[[]*Node](func(cur parser.Cursor) parser.Result[[]*Node] {
			return parser.Success[[]*Node](cur, nil)
		}), nil

	case *ebnf.Token:
		return single(c.terminal(leaf(TokenKind, parser.LiteralString(e.String)), lexical)), nil

	case *ebnf.Range:
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		return single(c.terminal(leaf(TokenKind, parser.Range(lo, hi)), lexical)), nil

	case *ebnf.Name:
		ref := c.reference(e.String)
		if isLexical(e.String) {
			ref = c.terminal(ref, lexical)
		}
		return single(ref), nil

	case ebnf.Sequence:
		if len(e) == 0 {
			return c.expression(nil, lexical)
		}
		seq, err := c.expression(e[0], lexical)
		if err != nil {
			return nil, err
		}
		for _, item := range e[1:] {
			next, err := c.expression(item, lexical)
			if err != nil {
				return nil, err
			}
			seq = parser.Sequence(seq, next, concat)
		}
		return seq, nil

	case ebnf.Alternative:
		alternatives := make([]parser.Parser[[]*Node], len(e))
		for i, alt := range e {
			p, err := c.expression(alt, lexical)
			if err != nil {
				return nil, err
			}
			alternatives[i] = p
		}
		return parser.Choice(alternatives...), nil

	case *ebnf.Group:
		return c.expression(e.Body, lexical)

	case *ebnf.Option:
		body, err := c.expression(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parser.Optional(body, nil), nil

	case *ebnf.Repetition:
		body, err := c.expression(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parser.Map(parser.Many(body), flatten), nil

	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}
