// Released under an MIT license. See LICENSE.

// Package truth defines the interface for values with a truth value.
package truth

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// I (truth) is anything that can be false.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only values that implement I
// can be false. Everything else is true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
