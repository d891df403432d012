package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/combo/grammar/json"
)

// LineEncoder writes one line per scalar of a JSON value:
//
//	$.a[0]	number	1
//
// Empty objects and arrays get a line of their own so nothing is lost.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(v json.Value) error {
	text, err := e.MarshalText(v)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText(v json.Value) ([]byte, error) {
	var sb strings.Builder
	if err := writeLines(&sb, "$", v); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func writeLines(sb *strings.Builder, path string, v json.Value) error {
	switch v := v.(type) {
	case json.Object:
		if len(v.Members) == 0 {
			fmt.Fprintf(sb, "%s\tobject\t{}\n", path)
		}
		for _, m := range v.Members {
			if err := writeLines(sb, memberPath(path, m.Key), m.Value); err != nil {
				return err
			}
		}
	case json.Array:
		if len(v.Values) == 0 {
			fmt.Fprintf(sb, "%s\tarray\t[]\n", path)
		}
		for i, item := range v.Values {
			if err := writeLines(sb, fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	default:
		s, err := scalar(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s\t%s\t%s\n", path, kindOf(v), s)
	}
	return nil
}

func memberPath(path, key string) string {
	for _, r := range key {
		if !(r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')) {
			return fmt.Sprintf("%s[%s]", path, json.Quote(key))
		}
	}
	if key == "" {
		return path + `[""]`
	}
	return path + "." + key
}

func kindOf(v json.Value) string {
	switch v.(type) {
	case json.String:
		return "string"
	case json.Number:
		return "number"
	case json.Bool:
		return "bool"
	case json.Null:
		return "null"
	default:
		return "unknown"
	}
}
