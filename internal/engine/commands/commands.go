// Released under an MIT license. See LICENSE.

// Package commands provides the builtin procedures.
//
// Every builtin receives its evaluated arguments as a list and either
// returns a value or panics with an evaluation error.
package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// Functions returns a fresh map of builtin names to implementations.
func Functions() map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"*":        mul,
		"+":        add,
		"-":        sub,
		"/":        div,
		"<":        lt,
		"<=":       le,
		">":        gt,
		">=":       ge,
		"append":   appendLists,
		"begin":    begin,
		"car":      car,
		"cdr":      cdr,
		"equal?":   equal,
		"length":   length,
		"list-ref": listRef,
		"list?":    isList,
		"not":      not,
	}
}
