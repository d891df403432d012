// Package ebnf builds parsers from EBNF grammars, producing concrete syntax
// trees.
package ebnf

import (
	"github.com/dhamidi/combo/parser"
)

// TokenKind is the Kind of leaf nodes created for literal tokens and
// character ranges.
const TokenKind = "token"

// Span is a range of byte offsets in the input.
type Span struct {
	Start int
	End   int
}

// Node is a node in the concrete syntax tree.
// Lexical productions (names starting with a lower-case letter) and literal
// tokens are leaves;
// other productions have Children.
type Node struct {
	Kind     string  // production name or TokenKind
	Text     string  // source text covered by the node
	Children []*Node // nil for leaves
	Span     Span
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk calls f for n and all of its descendants, depth first.
func (n *Node) Walk(f func(*Node)) {
	f(n)
	for _, child := range n.Children {
		child.Walk(f)
	}
}

// Find returns all descendants of n (including n) of the given kind.
func (n *Node) Find(kind string) []*Node {
	var found []*Node
	n.Walk(func(m *Node) {
		if m.Kind == kind {
			found = append(found, m)
		}
	})
	return found
}

// node wraps the children produced by p into a node covering the input p
// consumed.
func node(kind string, p parser.Parser[[]*Node]) parser.Parser[*Node] {
	return func(c parser.Cursor) parser.Result[*Node] {
		r := p(c)
		if !r.IsSuccess() {
			return parser.Failure[*Node](r.Cursor(), r.Reason())
		}
		end := r.Cursor()
		return parser.Success(end, &Node{
			Kind:     kind,
			Text:     c.Text()[c.Offset():end.Offset()],
			Children: r.Value(),
			Span:     Span{Start: c.Offset(), End: end.Offset()},
		})
	}
}

// leaf is like node but drops the children.
func leaf[T any](kind string, p parser.Parser[T]) parser.Parser[*Node] {
	return node(kind, parser.Value(p, []*Node(nil)))
}
