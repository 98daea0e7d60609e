// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

func appendLists(args cell.I) cell.I {
	lists := list.Slice(args)

	for _, l := range lists {
		proper("append", l)
	}

	return list.Join(lists...)
}

func isList(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(list.Proper(v[0]))
}

func length(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int64(list.Length(proper("length", v[0])))
}

func listRef(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	l := proper("list-ref", v[0])
	if l == pair.Null {
		panic(failure.Evaluation("list-ref of empty list"))
	}

	if !num.IsInt(v[1]) {
		panic(failure.Evaluation("list-ref index must be an integer, not %s", literal.String(v[1])))
	}

	return list.Ref(l, v[1].(*num.Int).Int64())
}

func proper(label string, c cell.I) cell.I {
	if !list.Proper(c) {
		panic(failure.Evaluation("%s expects a proper list, not %s", label, literal.String(c)))
	}

	return c
}
