// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

func begin(args cell.I) cell.I {
	_, rest := validate.Variadic(args, 1, 1)

	last := pair.Car(args)
	for ; rest != pair.Null; rest = pair.Cdr(rest) {
		last = pair.Car(rest)
	}

	return last
}
