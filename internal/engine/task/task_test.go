package task

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

func root() scope.I {
	s := env.New(nil)

	Builtins(s)

	return env.New(s)
}

func run(t *testing.T, s scope.I, limit int, text string) (cell.I, error) {
	t.Helper()

	cs, err := reader.Read(text)
	if err != nil {
		t.Fatalf("%q: unexpected error reading: %v", text, err)
	}

	var v cell.I

	for _, c := range cs {
		v, err = New(c, s, limit).Run()
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func TestArityCheckedBeforeArguments(t *testing.T) {
	s := root()

	_, err := run(t, s, DefaultLimit, `
(define hits 0)
(define (f a) a)
(f (set! hits (+ hits 1)) (set! hits (+ hits 1)))
`)
	if !errors.Is(err, failure.ErrEvaluation) {
		t.Fatalf("expected an evaluation error; got %v", err)
	}

	v, err := run(t, s, DefaultLimit, "hits")
	if err != nil || literal.String(v) != "0" {
		t.Fatalf("arguments were evaluated before the arity check: %v, %v", v, err)
	}
}

func TestExhaustion(t *testing.T) {
	s := root()

	_, err := run(t, s, 64, `
(define (sum n) (if (<= n 0) 0 (+ n (sum (- n 1)))))
(sum 1000)
`)
	if !errors.Is(err, failure.ErrExhausted) || !errors.Is(err, failure.ErrEvaluation) {
		t.Fatalf("expected the evaluation stack to be exhausted; got %v", err)
	}

	v, err := run(t, s, 64, "(sum 3)")
	if err != nil || literal.String(v) != "6" {
		t.Fatalf("the frame should remain usable after exhaustion: %v, %v", v, err)
	}
}

func TestForms(t *testing.T) {
	forms := Forms()
	if len(forms) != 10 || forms[0] != "and" || forms[len(forms)-1] != "set!" {
		t.Fatalf("unexpected special forms %v", forms)
	}
}

func TestPrintedProcedures(t *testing.T) {
	s := root()

	v, err := run(t, s, DefaultLimit, "(lambda (a b) (+ a b))")
	if err != nil || literal.String(v) != "(lambda (a b) (+ a b))" {
		t.Fatalf("unexpected closure %v, %v", v, err)
	}

	v, err = run(t, s, DefaultLimit, "car")
	if err != nil || literal.String(v) != "<builtin car>" {
		t.Fatalf("unexpected builtin %v, %v", v, err)
	}
}

func TestTailCallsRunInConstantSpace(t *testing.T) {
	s := root()

	v, err := run(t, s, 64, `
(define (loop n acc) (if (<= n 0) acc (loop (- n 1) (+ acc 1))))
(loop 10000 0)
`)
	if err != nil || literal.String(v) != "10000" {
		t.Fatalf("unexpected result %v, %v", v, err)
	}
}

func TestBuiltinLabel(t *testing.T) {
	r := root().Lookup("list-ref")
	if r == nil {
		t.Fatalf("list-ref is not defined")
	}

	b, ok := r.Get().(*Builtin)
	if !ok || b.Label() != "list-ref" {
		t.Fatalf("unexpected builtin %v", r.Get())
	}
}

func TestCompletedAndDepth(t *testing.T) {
	cs, err := reader.Read("(+ 1 (car (list 2 3)))")
	if err != nil {
		t.Fatalf("unexpected error reading: %v", err)
	}

	task := New(cs[0], root(), DefaultLimit)
	if task.Completed() || task.Depth() != 1 {
		t.Fatalf("a new task should have one pending operation; got %d", task.Depth())
	}

	task.Trace(true)

	v, err := task.Run()
	if err != nil || literal.String(v) != "3" {
		t.Fatalf("unexpected result %v, %v", v, err)
	}

	if !task.Completed() || task.Depth() != 0 {
		t.Fatalf("a finished task should have no pending operations; got %d", task.Depth())
	}
}
