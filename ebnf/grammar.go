package ebnf

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// ParseGrammar reads an EBNF grammar from r. The name is used in error
// messages.
func ParseGrammar(name string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// Verify checks that every production is defined and reachable from start.
func Verify(grammar ebnf.Grammar, start string) error {
	if err := ebnf.Verify(grammar, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// isLexical reports whether name is a lexical (token) production. As in
// golang.org/x/exp/ebnf, those are the names that do not start with an
// upper-case letter.
func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}
