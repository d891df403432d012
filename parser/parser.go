package parser

// Parser consumes a prefix of the input at a cursor and produces a T, or
// fails. Parsers hold no mutable state, so the same parser may be applied
// any number of times, including from several goroutines at once.
type Parser[T any] func(Cursor) Result[T]

type config struct {
	filename   string
	requireEnd bool
}

// Option configures Run and Parse.
type Option func(*config)

// WithFilename sets the filename reported in positions and errors.
func WithFilename(name string) Option {
	return func(c *config) {
		c.filename = name
	}
}

// WithRequireEnd makes Parse fail when input remains after a successful
// parse.
func WithRequireEnd() Option {
	return func(c *config) {
		c.requireEnd = true
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run applies p to the start of text.
func Run[T any](p Parser[T], text string, opts ...Option) Result[T] {
	c := newConfig(opts)
	r := p(NewCursor(text).WithFilename(c.filename))
	if c.requireEnd && r.IsSuccess() && !r.Cursor().AtEnd() {
		return Failuref[T](r.Cursor(), "unexpected input %s", describeRemaining(r.Cursor()))
	}
	return r
}

// Parse applies p to text and returns its value, or an *Error describing
// the failure.
func Parse[T any](p Parser[T], text string, opts ...Option) (T, error) {
	r := Run(p, text, opts...)
	if !r.IsSuccess() {
		var zero T
		return zero, r.Err()
	}
	return r.Value(), nil
}

func describeRemaining(c Cursor) string {
	rest := []rune(c.Remaining())
	if len(rest) > 16 {
		return quote(string(rest[:16])) + "..."
	}
	return quote(string(rest))
}
