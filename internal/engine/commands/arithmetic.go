// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/number"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

func add(args cell.I) cell.I {
	return fold(num.Int64(0), num.Add, args)
}

func div(args cell.I) cell.I {
	if args == pair.Null {
		panic(failure.Evaluation("/ expects at least 1 argument, passed 0"))
	}

	first := number.Value(pair.Car(args))

	rest := pair.Cdr(args)
	if rest == pair.Null {
		return num.Quo(num.Int64(1), first)
	}

	return fold(first, num.Quo, rest)
}

func mul(args cell.I) cell.I {
	return fold(num.Int64(1), num.Mul, args)
}

func sub(args cell.I) cell.I {
	if args == pair.Null {
		panic(failure.Evaluation("- expects at least 1 argument, passed 0"))
	}

	first := number.Value(pair.Car(args))

	rest := pair.Cdr(args)
	if rest == pair.Null {
		return num.Neg(first)
	}

	return num.Sub(first, add(rest))
}

func fold(acc cell.I, op func(a, b cell.I) cell.I, args cell.I) cell.I {
	for args != pair.Null {
		acc = op(acc, number.Value(pair.Car(args)))

		args = pair.Cdr(args)
	}

	return acc
}
