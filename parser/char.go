package parser

import "strconv"

// Any consumes one rune, whatever it is.
var Any Parser[rune] = func(c Cursor) Result[rune] {
	r, next, err := c.ReadOne()
	if err != nil {
		return Failure[rune](c, err.Error())
	}
	return Success(next, r)
}

// Digit consumes one decimal digit.
var Digit Parser[rune] = func(c Cursor) Result[rune] {
	r, next, err := c.ReadOne()
	if err != nil {
		return Failure[rune](c, err.Error())
	}
	if r < '0' || r > '9' {
		return Failuref[rune](next, "expected digit, got %q", r)
	}
	return Success(next, r)
}

// End succeeds without consuming anything when the input is exhausted.
var End Parser[struct{}] = func(c Cursor) Result[struct{}] {
	if !c.AtEnd() {
		return Failuref[struct{}](c, "expected end of input, got %s", describeRemaining(c))
	}
	return Success(c, struct{}{})
}

// Literal consumes the rune want.
func Literal(want rune) Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, next, err := c.ReadOne()
		if err != nil {
			return Failure[rune](c, err.Error())
		}
		if r != want {
			return Failuref[rune](next, "expected %q, got %q", want, r)
		}
		return Success(next, r)
	}
}

// Satisfies consumes one rune accepted by pred.
func Satisfies(pred func(rune) bool) Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, next, err := c.ReadOne()
		if err != nil {
			return Failure[rune](c, err.Error())
		}
		if !pred(r) {
			return Failuref[rune](next, "unexpected %q", r)
		}
		return Success(next, r)
	}
}

// Range consumes one rune between lo and hi inclusive.
func Range(lo, hi rune) Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, next, err := c.ReadOne()
		if err != nil {
			return Failure[rune](c, err.Error())
		}
		if r < lo || r > hi {
			return Failuref[rune](next, "expected %q…%q, got %q", lo, hi, r)
		}
		return Success(next, r)
	}
}

func quote(s string) string {
	return strconv.Quote(s)
}
