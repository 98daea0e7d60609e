// Released under an MIT license. See LICENSE.

// Package number defines the interface for numeric values.
package number

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// I (number) is anything that can be used in a numeric context.
type I interface {
	cell.I

	Float() float64
}

type number = I

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(number)

	return ok
}

// Value returns c as a number, if possible.
func Value(c cell.I) number {
	n, ok := c.(number)
	if !ok {
		panic(failure.Evaluation("%s cannot be used in a numeric context", c.Name()))
	}

	return n
}
