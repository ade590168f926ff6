package expr

import (
	"strings"
	"testing"
)

func TestEvalTermIsSubstringMatch(t *testing.T) {
	n := mustParse(t, "err")
	if !n.Eval("kernel error detected") {
		t.Fatalf("substring match expected")
	}
	if n.Eval("all good") {
		t.Fatalf("no match expected")
	}
}

func TestEvalAndOrNot(t *testing.T) {
	line := "Linux 2.6 panic"
	cases := []struct {
		in   string
		want bool
	}{
		{"Linux and 2.6", true},
		{"Linux and Windows", false},
		{"Linux || Windows", true},
		{"Windows or BSD", false},
		{"!Windows", true},
		{"Linux and not panic", false},
		{"(Linux or Windows) and panic", true},
		{"Linux panic", true},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in).Eval(line); got != c.want {
			t.Fatalf("%q on %q: got %v want %v", c.in, line, got, c.want)
		}
	}
}

func TestEvalCaseSensitivityViaFold(t *testing.T) {
	line := "ERROR: disk Full"
	n := mustParse(t, "error and full")

	// case-sensitive: no match
	if n.Eval(line) {
		t.Fatalf("case-sensitive eval should not match")
	}

	// case-insensitive: fold both sides the same way
	if !n.Fold().Eval(strings.ToLower(line)) {
		t.Fatalf("case-insensitive eval should match")
	}
}

func TestFoldDoesNotMutateOriginal(t *testing.T) {
	n := mustParse(t, "ERROR")
	_ = n.Fold()
	if n.Keyword != "ERROR" {
		t.Fatalf("original tree mutated: %q", n.Keyword)
	}
}

func TestEvalQuotedPhrase(t *testing.T) {
	n := mustParse(t, `"disk full" and not recovered`)
	if !n.Eval("warn: disk full on /dev/sda1") {
		t.Fatalf("phrase should match")
	}
	if n.Eval("warn: disk full recovered") {
		t.Fatalf("negated term present, should not match")
	}
}
