package parser

import (
	"errors"
	"testing"
)

func TestCursorReadOne(t *testing.T) {
	c := NewCursor("ab")

	r, next, err := c.ReadOne()
	if err != nil {
		t.Fatalf("ReadOne: %v", err)
	}
	if r != 'a' {
		t.Errorf("ReadOne() = %q, want 'a'", r)
	}
	if next.Offset() != 1 {
		t.Errorf("next.Offset() = %d, want 1", next.Offset())
	}
	if c.Offset() != 0 {
		t.Errorf("original cursor moved to %d", c.Offset())
	}

	_, end, _ := next.ReadOne()
	if !end.AtEnd() {
		t.Error("cursor should be at end")
	}
	if _, same, err := end.ReadOne(); !errors.Is(err, ErrEndOfInput) || same != end {
		t.Errorf("ReadOne at end = (%v, %v), want ErrEndOfInput at same cursor", same, err)
	}
}

func TestCursorMultibyte(t *testing.T) {
	c := NewCursor("〒1")
	r, next, err := c.ReadOne()
	if err != nil {
		t.Fatalf("ReadOne: %v", err)
	}
	if r != '〒' {
		t.Errorf("ReadOne() = %q, want '〒'", r)
	}
	if next.Remaining() != "1" {
		t.Errorf("Remaining() = %q, want %q", next.Remaining(), "1")
	}
	if col := next.Position().Column; col != 2 {
		t.Errorf("Column = %d, want 2", col)
	}
}

func TestCursorReadN(t *testing.T) {
	tests := []struct {
		input   string
		n       int
		want    string
		wantErr bool
	}{
		{"abcdef", 3, "abc", false},
		{"abc", 3, "abc", false},
		{"ab", 3, "", true},
		{"", 0, "", false},
		{"héllo", 2, "hé", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := NewCursor(tt.input)
			s, next, err := c.ReadString(tt.n)
			if tt.wantErr {
				if !errors.Is(err, ErrEndOfInput) {
					t.Fatalf("ReadString(%d) err = %v, want ErrEndOfInput", tt.n, err)
				}
				if next != c {
					t.Error("cursor should not move on failed read")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadString(%d): %v", tt.n, err)
			}
			if s != tt.want {
				t.Errorf("ReadString(%d) = %q, want %q", tt.n, s, tt.want)
			}
			if next.Offset() != len(tt.want) {
				t.Errorf("next.Offset() = %d, want %d", next.Offset(), len(tt.want))
			}

			runes, _, err := c.ReadN(tt.n)
			if err != nil {
				t.Fatalf("ReadN(%d): %v", tt.n, err)
			}
			if string(runes) != tt.want {
				t.Errorf("ReadN(%d) = %q, want %q", tt.n, string(runes), tt.want)
			}
		})
	}
}

func TestCursorPosition(t *testing.T) {
	c := NewCursor("ab\ncd\ne").WithFilename("in.txt")
	_, c, _ = c.ReadString(4)

	pos := c.Position()
	if pos.Line != 2 || pos.Column != 2 || pos.Offset != 4 {
		t.Errorf("Position() = %+v, want line 2 column 2 offset 4", pos)
	}
	if got := pos.String(); got != "in.txt:2:2" {
		t.Errorf("Position().String() = %q, want %q", got, "in.txt:2:2")
	}
	if got := NewCursor("x").Position().String(); got != "1:1" {
		t.Errorf("Position().String() = %q, want %q", got, "1:1")
	}
}
