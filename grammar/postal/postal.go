// Package postal parses Japanese postal codes such as "123-4567".
package postal

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/combo/parser"
)

// Code is a postal code split at the hyphen.
type Code struct {
	Left  int
	Right int
}

func (c Code) String() string {
	return fmt.Sprintf("%03d-%04d", c.Left, c.Right)
}

func number(digits int) parser.Parser[int] {
	return parser.Map(parser.AsString(parser.Repeat(parser.Digit, digits)), func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
}

var (
	leftPart  = number(3)
	rightPart = number(4)

	// Hyphenated matches "123-4567".
	Hyphenated = parser.Sequence(parser.Left(leftPart, parser.Literal('-')), rightPart, newCode)

	// Compact matches "1234567".
	Compact = parser.Sequence(leftPart, rightPart, newCode)

	// Grammar matches either form, optionally prefixed with the postal mark.
	Grammar = parser.Trace("postal", parser.Or(
		parser.Right(parser.Literal('〒'), parser.Or(Hyphenated, Compact)),
		parser.Or(Hyphenated, Compact),
	))
)

func newCode(left, right int) Code {
	return Code{Left: left, Right: right}
}

// Parse parses a complete postal code.
func Parse(text string) (Code, error) {
	code, err := parser.Parse(Grammar, text, parser.WithRequireEnd())
	if err != nil {
		return Code{}, fmt.Errorf("parse postal code %q: %w", text, err)
	}
	return code, nil
}
