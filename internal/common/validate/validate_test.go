package validate

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

func expectFailure(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, failure.ErrEvaluation) {
			t.Fatalf("expected an evaluation error; got %v", err)
		}
	}()

	f()
}

func TestCount(t *testing.T) {
	if s := Count(1, "argument", "s"); s != "1 argument" {
		t.Fatalf("unexpected count %q", s)
	}

	if s := Count(2, "argument", "s"); s != "2 arguments" {
		t.Fatalf("unexpected count %q", s)
	}
}

func TestFixed(t *testing.T) {
	v := Fixed(list.New(num.Int64(1), num.Int64(2)), 2, 2)
	if len(v) != 2 {
		t.Fatalf("expected 2 arguments; got %d", len(v))
	}

	expectFailure(t, func() { Fixed(list.New(num.Int64(1)), 2, 2) })
	expectFailure(t, func() { Fixed(list.New(num.Int64(1), num.Int64(2), num.Int64(3)), 2, 2) })
}

func TestVariadic(t *testing.T) {
	v, rest := Variadic(list.New(num.Int64(1), num.Int64(2), num.Int64(3)), 1, 1)
	if len(v) != 1 || list.Length(rest) != 2 {
		t.Fatalf("unexpected split %v %v", v, rest)
	}

	expectFailure(t, func() { Variadic(pair.Null, 1, 1) })
}
