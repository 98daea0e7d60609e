package commands

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

func call(name string, args ...cell.I) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err = failure.Recovered(r)
	}()

	return Functions()[name](list.New(args...)), nil
}

func i(n int64) cell.I {
	return num.Int64(n)
}

func TestErrors(t *testing.T) {
	improper := pair.Cons(i(1), i(2))

	for _, tc := range []struct {
		name string
		args []cell.I
	}{
		{"-", nil},
		{"/", nil},
		{"/", []cell.I{i(1), i(0)}},
		{"+", []cell.I{i(1), sym.New("x")}},
		{"<", []cell.I{i(1), sym.New("x")}},
		{"not", nil},
		{"not", []cell.I{i(1), i(2)}},
		{"car", []cell.I{i(1)}},
		{"car", []cell.I{pair.Null}},
		{"cdr", []cell.I{pair.Null}},
		{"length", []cell.I{improper}},
		{"list-ref", []cell.I{list.New(i(1), i(2), i(3)), i(5)}},
		{"list-ref", []cell.I{pair.Null, i(0)}},
		{"list-ref", []cell.I{list.New(i(1)), num.Float64(0)}},
		{"append", []cell.I{list.New(i(1)), i(2)}},
		{"begin", nil},
	} {
		_, err := call(tc.name, tc.args...)
		if !errors.Is(err, failure.ErrEvaluation) {
			t.Fatalf("(%s %s): expected an evaluation error; got %v",
				tc.name, spew.Sdump(tc.args), err)
		}
	}
}

func TestValues(t *testing.T) {
	for _, tc := range []struct {
		name     string
		args     []cell.I
		expected string
	}{
		{"+", nil, "0"},
		{"+", []cell.I{i(1), i(2), i(3)}, "6"},
		{"-", []cell.I{i(5)}, "-5"},
		{"-", []cell.I{i(10), i(1), i(2)}, "7"},
		{"*", nil, "1"},
		{"*", []cell.I{i(2), num.Float64(1.5)}, "3.0"},
		{"/", []cell.I{i(2)}, "0.5"},
		{"/", []cell.I{i(12), i(2), i(3)}, "2"},
		{"/", []cell.I{i(7), i(2)}, "3.5"},
		{"<", []cell.I{i(1), i(2), i(3)}, "#t"},
		{"<", []cell.I{i(1), i(3), i(2)}, "#f"},
		{"<=", []cell.I{i(1), i(1), i(2)}, "#t"},
		{">", []cell.I{i(3), i(2), i(1)}, "#t"},
		{">=", []cell.I{i(3), i(3), i(4)}, "#f"},
		{">", []cell.I{i(1)}, "#t"},
		{"equal?", []cell.I{i(2), num.Float64(2)}, "#t"},
		{"equal?", []cell.I{list.New(i(1), i(2)), list.New(i(1), i(2))}, "#t"},
		{"equal?", []cell.I{i(1), i(1), i(2)}, "#f"},
		{"equal?", []cell.I{sym.New("a"), i(1)}, "#f"},
		{"not", []cell.I{boolean.False}, "#t"},
		{"not", []cell.I{boolean.True}, "#f"},
		{"not", []cell.I{i(0)}, "#f"},
		{"car", []cell.I{list.New(i(1), i(2))}, "1"},
		{"cdr", []cell.I{list.New(i(1), i(2))}, "(2)"},
		{"cdr", []cell.I{pair.Cons(i(1), i(2))}, "2"},
		{"list?", []cell.I{pair.Null}, "#t"},
		{"list?", []cell.I{list.New(i(1))}, "#t"},
		{"list?", []cell.I{pair.Cons(i(1), i(2))}, "#f"},
		{"list?", []cell.I{i(1)}, "#f"},
		{"length", []cell.I{list.New(i(1), i(2), i(3))}, "3"},
		{"length", []cell.I{pair.Null}, "0"},
		{"list-ref", []cell.I{list.New(i(1), i(2), i(3)), i(1)}, "2"},
		{"append", nil, "()"},
		{"append", []cell.I{list.New(i(1), i(2)), pair.Null, list.New(i(3), i(4))}, "(1 2 3 4)"},
		{"begin", []cell.I{i(1), i(2), i(3)}, "3"},
	} {
		v, err := call(tc.name, tc.args...)
		if err != nil {
			t.Fatalf("(%s ...): unexpected error: %v", tc.name, err)
		}

		if s := literal.String(v); s != tc.expected {
			t.Fatalf("(%s %s): expected %s; got %s", tc.name, spew.Sdump(tc.args), tc.expected, s)
		}
	}
}
