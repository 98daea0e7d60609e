package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/engine"
)

func TestEvaluate(t *testing.T) {
	e := engine.New()

	var b bytes.Buffer

	err := evaluate(e, "(define x 7) (+ x x)", e.Scope(), &b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.String() != "14\n" {
		t.Fatalf("expected 14; got %q", b.String())
	}

	err = evaluate(e, "(car 1)", e.Scope(), &b)
	if !errors.Is(err, failure.ErrEvaluation) {
		t.Fatalf("expected an evaluation error; got %v", err)
	}
}

func TestStdin(t *testing.T) {
	e := engine.New()

	var b bytes.Buffer

	program := `
; Sum the integers from 1 to n.
(define (sum n) (if (<= n 0) 0 (+ n (sum (- n 1)))))
(sum 100)
`

	if err := stdin(e, strings.NewReader(program), e.Scope(), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.String() != "5050\n" {
		t.Fatalf("expected 5050; got %q", b.String())
	}

	b.Reset()

	if err := stdin(e, strings.NewReader("; only a comment\n"), e.Scope(), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Len() != 0 {
		t.Fatalf("expected no output; got %q", b.String())
	}
}
