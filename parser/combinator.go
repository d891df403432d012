package parser

// Sequence runs a and then b on the input a left, and combines both values.
// The first failure is returned as is.
func Sequence[A, B, R any](a Parser[A], b Parser[B], combine func(A, B) R) Parser[R] {
	return func(c Cursor) Result[R] {
		ra := a(c)
		if !ra.IsSuccess() {
			return propagate[R](ra)
		}
		rb := b(ra.Cursor())
		if !rb.IsSuccess() {
			return propagate[R](rb)
		}
		return Success(rb.Cursor(), combine(ra.value, rb.value))
	}
}

// Left runs a then b and keeps the value of a.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Sequence(a, b, func(l A, _ B) A { return l })
}

// Right runs a then b and keeps the value of b.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Sequence(a, b, func(_ A, r B) B { return r })
}

// Then runs a then b and collects both values.
func Then[T any](a, b Parser[T]) Parser[[]T] {
	return Sequence(a, b, func(l, r T) []T { return []T{l, r} })
}

// Append runs list then next and appends the value of next.
func Append[T any](list Parser[[]T], next Parser[T]) Parser[[]T] {
	return Sequence(list, next, func(items []T, item T) []T {
		out := make([]T, len(items), len(items)+1)
		copy(out, items)
		return append(out, item)
	})
}

// Or tries a and, if it fails, tries b from the same starting cursor.
// The first success wins even when b would have consumed more input.
func Or[T any](a, b Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		if r := a(c); r.IsSuccess() {
			return r
		}
		return b(c)
	}
}

// Choice is Or over any number of alternatives, tried in order.
// When all of them fail it returns the failure that got furthest into the
// input, the later one on a tie. With no alternatives it always fails.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		failure := Failure[T](c, "no alternatives")
		for _, p := range alternatives {
			r := p(c)
			if r.IsSuccess() {
				return r
			}
			if r.Cursor().Offset() >= failure.Cursor().Offset() {
				failure = r
			}
		}
		return failure
	}
}

// Optional runs p and falls back to value, consuming nothing, when p fails.
func Optional[T any](p Parser[T], value T) Parser[T] {
	return func(c Cursor) Result[T] {
		if r := p(c); r.IsSuccess() {
			return r
		}
		return Success(c, value)
	}
}

// Map transforms the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) Result[U] {
		r := p(c)
		if !r.IsSuccess() {
			return propagate[U](r)
		}
		return Success(r.Cursor(), f(r.value))
	}
}

// Value replaces the value of a successful parse with value.
func Value[T, U any](p Parser[T], value U) Parser[U] {
	return Map(p, func(T) U { return value })
}

// Label replaces the reason of a failed parse.
func Label[T any](p Parser[T], reason string) Parser[T] {
	return func(c Cursor) Result[T] {
		r := p(c)
		if r.IsSuccess() {
			return r
		}
		return Failure[T](r.Cursor(), reason)
	}
}
