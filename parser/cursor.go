package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEndOfInput is returned by cursor reads that run past the end of the text.
var ErrEndOfInput = errors.New("unexpected end of input")

// Position represents a location in the input text.
type Position struct {
	Filename string
	Offset   int // byte offset from the start of the text
	Line     int // 1-based
	Column   int // 1-based, counted in runes
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Cursor is an immutable position within an input text.
// Reads return a new Cursor and leave the receiver untouched, so a Cursor
// can be kept around and reused to backtrack.
type Cursor struct {
	text     string
	offset   int
	filename string
}

// NewCursor returns a cursor at the start of text.
func NewCursor(text string) Cursor {
	return Cursor{text: text}
}

// WithFilename returns a copy of c that reports positions in the named file.
func (c Cursor) WithFilename(name string) Cursor {
	c.filename = name
	return c
}

// Text returns the whole input text.
func (c Cursor) Text() string {
	return c.text
}

// Offset returns the byte offset of the cursor.
func (c Cursor) Offset() int {
	return c.offset
}

// Remaining returns the unread part of the input.
func (c Cursor) Remaining() string {
	return c.text[c.offset:]
}

// AtEnd reports whether the whole input has been read.
func (c Cursor) AtEnd() bool {
	return c.offset >= len(c.text)
}

// Position computes the line and column of the cursor.
func (c Cursor) Position() Position {
	consumed := c.text[:c.offset]
	line := 1 + strings.Count(consumed, "\n")
	lineStart := strings.LastIndexByte(consumed, '\n') + 1
	return Position{
		Filename: c.filename,
		Offset:   c.offset,
		Line:     line,
		Column:   1 + utf8.RuneCountInString(consumed[lineStart:]),
	}
}

func (c Cursor) advance(n int) Cursor {
	c.offset += n
	return c
}

// ReadOne reads the next rune.
func (c Cursor) ReadOne() (rune, Cursor, error) {
	if c.AtEnd() {
		return utf8.RuneError, c, ErrEndOfInput
	}
	r, size := utf8.DecodeRuneInString(c.text[c.offset:])
	return r, c.advance(size), nil
}

// ReadN reads the next n runes.
func (c Cursor) ReadN(n int) ([]rune, Cursor, error) {
	s, next, err := c.ReadString(n)
	if err != nil {
		return nil, c, err
	}
	return []rune(s), next, nil
}

// ReadString reads the next n runes as a string.
func (c Cursor) ReadString(n int) (string, Cursor, error) {
	end := c.offset
	for i := 0; i < n; i++ {
		if end >= len(c.text) {
			return "", c, ErrEndOfInput
		}
		_, size := utf8.DecodeRuneInString(c.text[end:])
		end += size
	}
	return c.text[c.offset:end], c.advance(end - c.offset), nil
}
