package format

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/combo/grammar/json"
)

// JSONEncoder writes JSON values as JSON text, one per line.
type JSONEncoder struct {
	w      io.Writer
	indent string
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// SetIndent makes the encoder indent nested values by indent.
func (e *JSONEncoder) SetIndent(indent string) {
	e.indent = indent
}

func (e *JSONEncoder) Encode(v json.Value) error {
	text, err := e.MarshalText(v)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText(v json.Value) ([]byte, error) {
	var sb strings.Builder
	if err := writeValue(&sb, v); err != nil {
		return nil, err
	}
	if e.indent == "" {
		return []byte(sb.String()), nil
	}
	var out bytes.Buffer
	if err := stdjson.Indent(&out, []byte(sb.String()), "", e.indent); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	return out.Bytes(), nil
}

func writeValue(sb *strings.Builder, v json.Value) error {
	switch v := v.(type) {
	case json.Object:
		sb.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(json.Quote(m.Key))
			sb.WriteByte(':')
			if err := writeValue(sb, m.Value); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	case json.Array:
		sb.WriteByte('[')
		for i, item := range v.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeValue(sb, item); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	default:
		s, err := scalar(v)
		if err != nil {
			return err
		}
		sb.WriteString(s)
	}
	return nil
}

func scalar(v json.Value) (string, error) {
	switch v := v.(type) {
	case json.String:
		return json.Quote(string(v)), nil
	case json.Number:
		return v.Text(), nil
	case json.Bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case json.Null:
		return "null", nil
	default:
		return "", fmt.Errorf("unsupported json value %T", v)
	}
}
