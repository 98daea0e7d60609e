package parser

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
)

func parse(t *testing.T, s string) cell.I {
	t.Helper()

	c, err := Parse(lexer.Tokenize(s))
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", s, err)
	}

	return c
}

func TestAtoms(t *testing.T) {
	for _, tc := range []struct {
		source string
		name   string
		text   string
	}{
		{"42", "number", "42"},
		{"-7", "number", "-7"},
		{"+7", "number", "7"},
		{"2.5", "number", "2.5"},
		{".5", "number", "0.5"},
		{"1e3", "number", "1000.0"},
		{"99999999999999999999", "number", "1e+20"},
		{"foo", "symbol", "foo"},
		{"-", "symbol", "-"},
		{"1+", "symbol", "1+"},
		{"#t", "symbol", "#t"},
	} {
		c := parse(t, tc.source)

		if c.Name() != tc.name || literal.String(c) != tc.text {
			t.Fatalf("Parse(%q): expected %s %s; got %s", tc.source, tc.name, tc.text, spew.Sdump(c))
		}
	}
}

func TestEmptyCompound(t *testing.T) {
	if c := parse(t, "()"); c != pair.Null {
		t.Fatalf("expected the empty list; got %s", spew.Sdump(c))
	}
}

func TestNested(t *testing.T) {
	expected := list.New(
		sym.New("+"),
		num.Int64(2),
		list.New(sym.New("-"), num.Int64(5), num.Int64(3)),
		num.Int64(7),
		num.Int64(8),
	)

	c := parse(t, "(+ 2 (- 5 3) 7 8)")
	if !c.Equal(expected) {
		t.Fatalf("expected %s; got %s", literal.String(expected), spew.Sdump(c))
	}

	if s := literal.String(c); s != "(+ 2 (- 5 3) 7 8)" {
		t.Fatalf("unexpected printed form %s", s)
	}
}

func TestParseAll(t *testing.T) {
	cs, err := ParseAll(lexer.Tokenize("(define x 7)\n(+ x x)\nx"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cs) != 3 {
		t.Fatalf("expected 3 expressions; got %s", spew.Sdump(cs))
	}

	if literal.String(cs[2]) != "x" {
		t.Fatalf("expected x; got %s", literal.String(cs[2]))
	}

	cs, err = ParseAll(nil)
	if err != nil || len(cs) != 0 {
		t.Fatalf("expected no expressions; got %v, %v", cs, err)
	}
}

func TestSyntaxErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"(",
		")",
		"(a))",
		"(a (b)",
		") (a",
		"a ) ( b",
		"define x 1",
		"lambda",
		"(a) (b)",
		"a b",
	} {
		_, err := Parse(lexer.Tokenize(s))
		if !errors.Is(err, failure.ErrSyntax) {
			t.Fatalf("Parse(%q): expected a syntax error; got %v", s, err)
		}

		if !errors.Is(err, failure.ErrLanguage) {
			t.Fatalf("Parse(%q): syntax error is not a language error", s)
		}
	}

	for _, s := range []string{
		"(a))(",
		"(a) )",
		"(",
	} {
		_, err := ParseAll(lexer.Tokenize(s))
		if !errors.Is(err, failure.ErrSyntax) {
			t.Fatalf("ParseAll(%q): expected a syntax error; got %v", s, err)
		}
	}
}

func TestBalancedNeverCrashes(t *testing.T) {
	for _, s := range []string{
		"((((((((((x))))))))))",
		"(define (f) (lambda () ()))",
		"(() () (()))",
	} {
		c := parse(t, s)

		again := parse(t, literal.String(c))
		if !c.Equal(again) {
			t.Fatalf("%q did not survive printing and reparsing: %s", s, spew.Sdump(again))
		}
	}
}
