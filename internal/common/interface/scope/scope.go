// Released under an MIT license. See LICENSE.

// Package scope defines the interface for lexical environment frames.
package scope

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/reference"
)

// I (scope) is one frame in a chain of lexical environments.
type I interface {
	// Define binds k to v in this frame.
	Define(k string, v cell.I)

	// Enclosing returns the parent frame or nil for the root frame.
	Enclosing() I

	// Local returns the reference for k in this frame only.
	Local(k string) reference.I

	// Lookup returns the reference for k in the nearest frame that defines it.
	Lookup(k string) reference.I

	// Names returns every name visible from this frame, sorted.
	Names() []string

	// Remove deletes k from this frame only and returns its prior value.
	Remove(k string) (cell.I, bool)
}
