package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestJSONCmd(t *testing.T) {
	out, err := run(t, newJSONCmd(), ` { "a" : [1, true] } `)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if out != "{\"a\":[1,true]}\n" {
		t.Errorf("output = %q", out)
	}

	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `[1]`)
	b := writeFile(t, dir, "b.json", `"x"`)
	out, err = run(t, newJSONCmd(), "", "--tree", a, b)
	if err != nil {
		t.Fatalf("json --tree: %v", err)
	}
	if want := "$[0]\tnumber\t1\n$\tstring\t\"x\"\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	bad := writeFile(t, dir, "bad.json", "[1,\n2,]")
	if _, err := run(t, newJSONCmd(), "", a, bad); err == nil || !strings.Contains(err.Error(), "bad.json:") {
		t.Errorf("error = %v, want position in bad.json", err)
	}
}

func TestPostalCmd(t *testing.T) {
	out, err := run(t, newPostalCmd(), "", "〒1234567", "123-4567")
	if err != nil {
		t.Fatalf("postal: %v", err)
	}
	if out != "123-4567\n123-4567\n" {
		t.Errorf("output = %q", out)
	}
	if _, err := run(t, newPostalCmd(), "", "12-34567"); err == nil {
		t.Error("expected error for malformed code")
	}
}

func TestEbnfCmd(t *testing.T) {
	dir := t.TempDir()
	grammar := writeFile(t, dir, "list.ebnf", `
		List = "[" [ item { "," item } ] "]" .
		item = "a" … "z" { "a" … "z" } .
	`)
	input := writeFile(t, dir, "input.txt", "[ ab, c ]")

	if _, err := run(t, newEbnfCmd(), "", "check", grammar, "--start", "List"); err != nil {
		t.Errorf("check: %v", err)
	}
	out, err := run(t, newEbnfCmd(), "", "check", grammar, "--start", "item")
	if err == nil {
		t.Error("check with unreachable productions should fail")
	}
	if !strings.Contains(out, "List is unreachable") {
		t.Errorf("check output = %q, want the unreachable production reported", out)
	}

	bad := writeFile(t, dir, "bad.ebnf", `A = "x"`)
	out, err = run(t, newEbnfCmd(), "", "check", bad)
	if err == nil || out == "" {
		t.Errorf("check of a syntax error = %v, output %q", err, out)
	}

	out, err = run(t, newEbnfCmd(), "", "match", grammar, input, "--start", "List")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	for _, want := range []string{`"kind": "List"`, `"text": "ab"`, `"text": "c"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}
