// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/number"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

func equal(args cell.I) cell.I {
	return chain(args, func(a, b cell.I) bool {
		return a.Equal(b)
	})
}

func ge(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c >= 0 })
}

func gt(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c > 0 })
}

func le(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c <= 0 })
}

func lt(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c < 0 })
}

// True if every adjacent pair of arguments satisfies the relation r.
func chain(args cell.I, r func(a, b cell.I) bool) cell.I {
	if args == pair.Null {
		return boolean.True
	}

	prev := pair.Car(args)

	for args = pair.Cdr(args); args != pair.Null; args = pair.Cdr(args) {
		curr := pair.Car(args)

		if !r(prev, curr) {
			return boolean.False
		}

		prev = curr
	}

	return boolean.True
}

func ordered(args cell.I, r func(int) bool) cell.I {
	for l := args; l != pair.Null; l = pair.Cdr(l) {
		number.Value(pair.Car(l))
	}

	return chain(args, func(a, b cell.I) bool {
		return r(num.Cmp(a, b))
	})
}
