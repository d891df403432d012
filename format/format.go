// Package format encodes parse results: JSON values as JSON text or as
// path/value lines, and syntax trees as JSON.
package format

import (
	"github.com/dhamidi/combo/ebnf"
	"github.com/dhamidi/combo/grammar/json"
)

// Encoder writes one encoded value per call to Encode.
type Encoder[T any] interface {
	Encode(v T) error
	MarshalText(v T) ([]byte, error)
}

var (
	_ Encoder[json.Value] = (*JSONEncoder)(nil)
	_ Encoder[json.Value] = (*LineEncoder)(nil)
	_ Encoder[*ebnf.Node] = (*ASTJSONEncoder)(nil)
)
