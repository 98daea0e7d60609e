// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
)

// Builtin is a procedure implemented in Go. Its arguments are evaluated
// before it is called.
type Builtin struct {
	label string
	fn    func(cell.I) cell.I
}

// Builtins associates builtin procedures and constants with names in the
// scope s.
func Builtins(s scope.I) {
	for k, v := range commands.Functions() {
		s.Define(k, &Builtin{label: k, fn: v})
	}

	s.Define("#f", boolean.False)
	s.Define("#t", boolean.True)
	s.Define("nil", pair.Null)
}

// The builtin type is a cell.

// Equal returns true if the cell c is the same builtin as b.
func (b *Builtin) Equal(c cell.I) bool {
	p, ok := c.(*Builtin)
	return ok && p == b
}

// Name returns the name of the builtin type.
func (*Builtin) Name() string {
	return "builtin"
}

// Methods specific to builtin.

// Apply calls the builtin b with the list of arguments args.
func (b *Builtin) Apply(args cell.I) cell.I {
	return b.fn(args)
}

// Label returns the name the builtin b was defined with.
func (b *Builtin) Label() string {
	return b.label
}

// Literal returns the printed representation of the builtin b.
func (b *Builtin) Literal() string {
	return "<builtin " + b.label + ">"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func _() {
	var b Builtin

	_ = literal.I(&b)
}
