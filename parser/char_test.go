package parser

import (
	"strings"
	"testing"
	"unicode"
)

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		parser   Parser[rune]
		input    string
		wantOK   bool
		want     rune
		wantRest string
	}{
		{"any", Any, "a", true, 'a', ""},
		{"any empty", Any, "", false, 0, ""},
		{"digit", Digit, "12a", true, '1', "2a"},
		{"digit letter", Digit, "a12", false, 0, ""},
		{"digit unicode", Digit, "٣", false, 0, ""},
		{"literal", Literal('a'), "abc", true, 'a', "bc"},
		{"literal mismatch", Literal('a'), "ccc", false, 0, ""},
		{"literal empty", Literal('a'), "", false, 0, ""},
		{"satisfies", Satisfies(unicode.IsLower), "abc", true, 'a', "bc"},
		{"satisfies reject", Satisfies(unicode.IsLower), "ABC", false, 0, ""},
		{"range", Range('a', 'f'), "c1", true, 'c', "1"},
		{"range outside", Range('a', 'f'), "g", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.parser(NewCursor(tt.input))
			if r.IsSuccess() != tt.wantOK {
				t.Fatalf("IsSuccess() = %v, want %v (%s)", r.IsSuccess(), tt.wantOK, r)
			}
			if !tt.wantOK {
				return
			}
			if r.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", r.Value(), tt.want)
			}
			if rest := r.Cursor().Remaining(); rest != tt.wantRest {
				t.Errorf("Remaining() = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestLiteralMismatchReason(t *testing.T) {
	r := Literal('a')(NewCursor("ccc"))
	if r.IsSuccess() {
		t.Fatal("expected failure")
	}
	if !strings.Contains(r.Reason(), `'a'`) || !strings.Contains(r.Reason(), `'c'`) {
		t.Errorf("Reason() = %q, want expected and actual runes", r.Reason())
	}
	if r.Cursor().Offset() != 1 {
		t.Errorf("failure cursor at %d, want 1 (past the mismatched read)", r.Cursor().Offset())
	}
}

func TestEndOfInputIsFailure(t *testing.T) {
	parsers := map[string]Parser[rune]{
		"any":       Any,
		"digit":     Digit,
		"literal":   Literal('x'),
		"satisfies": Satisfies(unicode.IsLetter),
		"range":     Range('0', '9'),
	}
	for name, p := range parsers {
		t.Run(name, func(t *testing.T) {
			r := p(NewCursor(""))
			if r.IsSuccess() {
				t.Fatal("expected failure at end of input")
			}
			if r.Reason() != ErrEndOfInput.Error() {
				t.Errorf("Reason() = %q, want %q", r.Reason(), ErrEndOfInput.Error())
			}
			if r.Cursor().Offset() != 0 {
				t.Errorf("failure cursor at %d, want 0", r.Cursor().Offset())
			}
		})
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		want     string
		input    string
		wantOK   bool
		wantRest string
	}{
		{"true", "true!", true, "!"},
		{"true", "trux", false, ""},
		{"true", "tr", false, ""},
		{"〒", "〒123", true, "123"},
		{"", "abc", true, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.input, func(t *testing.T) {
			r := LiteralString(tt.want)(NewCursor(tt.input))
			if r.IsSuccess() != tt.wantOK {
				t.Fatalf("IsSuccess() = %v, want %v (%s)", r.IsSuccess(), tt.wantOK, r)
			}
			if !tt.wantOK {
				if !strings.Contains(r.Reason(), tt.want) {
					t.Errorf("Reason() = %q, should name %q", r.Reason(), tt.want)
				}
				return
			}
			if r.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", r.Value(), tt.want)
			}
			if rest := r.Cursor().Remaining(); rest != tt.wantRest {
				t.Errorf("Remaining() = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestEnd(t *testing.T) {
	if r := End(NewCursor("")); !r.IsSuccess() {
		t.Errorf("End on empty input failed: %s", r)
	}
	if r := End(NewCursor("x")); r.IsSuccess() {
		t.Error("End should fail when input remains")
	}
}

func TestStringSupport(t *testing.T) {
	sample := AsString(Then(Left(LiteralString("parser"), LiteralString(" ")), LiteralString("combinator")))

	r := sample(NewCursor("parser combinator"))
	if !r.IsSuccess() {
		t.Fatalf("parse failed: %s", r.Reason())
	}
	if r.Value() != "parsercombinator" {
		t.Errorf("Value() = %q, want %q", r.Value(), "parsercombinator")
	}

	if r := sample(NewCursor("paaaaaaaaaaaaaaaa")); r.IsSuccess() {
		t.Error("expected failure")
	}
}
