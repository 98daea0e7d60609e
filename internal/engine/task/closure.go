// Released under an MIT license. See LICENSE.

package task

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
)

// Closure is a user-defined procedure. It shares, rather than copies, the
// frame it was created in.
type Closure struct {
	Body   cell.I   // Body of the procedure.
	Params []string // Parameter names.
	Scope  scope.I  // Defining frame.
}

// The closure type is a cell.

// Equal returns true if the cell c is the same closure as a.
func (a *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)
	return ok && p == a
}

// Name returns the name of the closure type.
func (*Closure) Name() string {
	return "closure"
}

// Methods specific to closure.

// Literal returns the printed representation of the closure a.
func (a *Closure) Literal() string {
	return "(lambda (" + strings.Join(a.Params, " ") + ") " + literal.String(a.Body) + ")"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func _() {
	var c Closure

	_ = literal.I(&c)
}
