package parser

import "fmt"

// Result is the outcome of applying a parser to a cursor.
//
// A successful result carries the cursor after the consumed input and the
// parsed value. A failed result carries a reason and the cursor the failing
// attempt reached; that cursor is only useful for diagnostics.
type Result[T any] struct {
	cursor Cursor
	ok     bool
	value  T
	reason string
}

// Success returns a successful result.
func Success[T any](c Cursor, value T) Result[T] {
	return Result[T]{cursor: c, ok: true, value: value}
}

// Failure returns a failed result.
func Failure[T any](c Cursor, reason string) Result[T] {
	return Result[T]{cursor: c, reason: reason}
}

// Failuref returns a failed result with a formatted reason.
func Failuref[T any](c Cursor, format string, args ...any) Result[T] {
	return Failure[T](c, fmt.Sprintf(format, args...))
}

// IsSuccess reports whether the parse succeeded.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Cursor returns the cursor the parse ended at.
func (r Result[T]) Cursor() Cursor {
	return r.cursor
}

// Value returns the parsed value. It panics if the parse failed.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("parser: Value called on failed result: %s", r.reason))
	}
	return r.value
}

// Reason returns why the parse failed. It panics if the parse succeeded.
func (r Result[T]) Reason() string {
	if r.ok {
		panic("parser: Reason called on successful result")
	}
	return r.reason
}

// Err returns nil for a successful result and an *Error otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &Error{Reason: r.reason, Position: r.cursor.Position()}
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v) at %s", r.value, r.cursor.Position())
	}
	return fmt.Sprintf("failure(%q) at %s", r.reason, r.cursor.Position())
}

// propagate re-types a failure so it can be returned from a parser of
// another type.
func propagate[U, T any](r Result[T]) Result[U] {
	return Failure[U](r.cursor, r.reason)
}

// Error is a parse failure reported to the caller of Parse.
type Error struct {
	Reason   string
	Position Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Reason)
}
