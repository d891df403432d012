package parser

// Many applies p until it fails and collects the values in order.
// It never fails; when p does not match at all the result is an empty
// slice at the original cursor.
//
// A match that consumes no input is collected and ends the repetition,
// otherwise Many(Optional(...)) would never terminate.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		next, items := repeatUntilFailure(p, c, []T{})
		return Success(next, items)
	}
}

// AtLeastOne is Many, except that it propagates the failure when the first
// application of p fails. Otherwise its result is the result of Many.
func AtLeastOne[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		first := p(c)
		if !first.IsSuccess() {
			return propagate[[]T](first)
		}
		items := []T{first.value}
		if first.Cursor().Offset() == c.Offset() {
			return Success(first.Cursor(), items)
		}
		next, items := repeatUntilFailure(p, first.Cursor(), items)
		return Success(next, items)
	}
}

func repeatUntilFailure[T any](p Parser[T], c Cursor, items []T) (Cursor, []T) {
	for {
		r := p(c)
		if !r.IsSuccess() {
			return c, items
		}
		items = append(items, r.value)
		if r.Cursor().Offset() == c.Offset() {
			return c, items
		}
		c = r.Cursor()
	}
}

// Repeat applies p exactly n times. If any application fails the whole
// parse fails with that failure.
func Repeat[T any](p Parser[T], n int) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		items := make([]T, 0, max(n, 0))
		for i := 0; i < n; i++ {
			r := p(c)
			if !r.IsSuccess() {
				return propagate[[]T](r)
			}
			items = append(items, r.value)
			c = r.Cursor()
		}
		return Success(c, items)
	}
}

// RepeatSep applies p exactly n times with sep between consecutive
// applications. A failure of either p or sep fails the whole parse.
func RepeatSep[T, S any](p Parser[T], n int, sep Parser[S]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		items := make([]T, 0, max(n, 0))
		for i := 0; i < n; i++ {
			if i > 0 {
				rs := sep(c)
				if !rs.IsSuccess() {
					return propagate[[]T](rs)
				}
				c = rs.Cursor()
			}
			r := p(c)
			if !r.IsSuccess() {
				return propagate[[]T](r)
			}
			items = append(items, r.value)
			c = r.Cursor()
		}
		return Success(c, items)
	}
}
