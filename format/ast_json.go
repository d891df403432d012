package format

import (
	"encoding/json"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/dhamidi/combo/ebnf"
)

// ASTJSONEncoder writes syntax trees as indented JSON. When the source text
// is set, spans carry line and column numbers as well as offsets.
type ASTJSONEncoder struct {
	w          io.Writer
	lineStarts []int // byte offset of the first byte of each line
	runes      []int // runes before each byte offset
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

// SetSource sets the text the trees were parsed from.
func (e *ASTJSONEncoder) SetSource(text string) {
	e.lineStarts = []int{0}
	e.runes = make([]int, len(text)+1)
	n := 0
	for i := 0; i < len(text); i++ {
		e.runes[i] = n
		if utf8.RuneStart(text[i]) {
			n++
		}
		if text[i] == '\n' {
			e.lineStarts = append(e.lineStarts, i+1)
		}
	}
	e.runes[len(text)] = n
}

func (e *ASTJSONEncoder) Encode(node *ebnf.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *ebnf.Node) ([]byte, error) {
	return json.MarshalIndent(e.nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     astJSONSpan    `json:"span"`
	Text     string         `json:"text,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

func (e *ASTJSONEncoder) position(offset int) astJSONPosition {
	if e.lineStarts == nil || offset < 0 || offset >= len(e.runes) {
		return astJSONPosition{Offset: offset}
	}
	line := sort.SearchInts(e.lineStarts, offset+1) - 1
	return astJSONPosition{
		Offset: offset,
		Line:   line + 1,
		Column: 1 + e.runes[offset] - e.runes[e.lineStarts[line]],
	}
}

func (e *ASTJSONEncoder) nodeToJSON(n *ebnf.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind: n.Kind,
		Span: astJSONSpan{Start: e.position(n.Span.Start), End: e.position(n.Span.End)},
	}

	if n.IsLeaf() {
		jn.Text = n.Text
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = e.nodeToJSON(child)
		}
	}

	return jn
}
