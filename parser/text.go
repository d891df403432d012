package parser

import (
	"strings"
	"unicode/utf8"
)

// LiteralString consumes exactly the runes of want.
func LiteralString(want string) Parser[string] {
	n := utf8.RuneCountInString(want)
	return func(c Cursor) Result[string] {
		s, next, err := c.ReadString(n)
		if err != nil {
			return Failuref[string](c, "expected %q, %v", want, err)
		}
		if s != want {
			return Failuref[string](next, "expected %q, got %q", want, s)
		}
		return Success(next, s)
	}
}

// AsString folds a sequence of runes or strings into one string.
func AsString[E rune | string](p Parser[[]E]) Parser[string] {
	return Map(p, func(items []E) string {
		var b strings.Builder
		for _, item := range items {
			switch v := any(item).(type) {
			case rune:
				b.WriteRune(v)
			case string:
				b.WriteString(v)
			}
		}
		return b.String()
	})
}
