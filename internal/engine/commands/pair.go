// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

func car(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Car(nonEmpty("car", v[0]))
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Cdr(nonEmpty("cdr", v[0]))
}

func nonEmpty(label string, c cell.I) cell.I {
	if c == pair.Null {
		panic(failure.Evaluation("%s of empty list", label))
	}

	return pair.To(c)
}
