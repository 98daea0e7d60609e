// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values with a printed form.
package literal

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// I (literal) is any type that has a printed representation.
type I interface {
	Literal() string
}

// String returns the printed representation for a cell, if possible.
func String(c cell.I) string {
	if c == nil {
		return "<nil>"
	}

	l, ok := c.(I)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}
