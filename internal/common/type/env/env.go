// Released under an MIT license. See LICENSE.

// Package env provides the lexical environment frame type.
package env

import (
	"sort"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/reference"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and links to its enclosing frame.
type T struct {
	previous scope.I
	names    *hash.T
}

type env = T

// New creates a new env.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		names:    hash.New(),
	}
}

// Define associates the name k with the cell v in the env e.
func (e *env) Define(k string, v cell.I) {
	e.names.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && e == o
}

// Local retrieves the reference associated with the name k in the env e
// without consulting enclosing frames.
func (e *env) Local(k string) reference.I {
	if e == nil {
		return nil
	}

	return e.names.Get(k)
}

// Lookup retrieves the reference associated with the name k in the env e
// or the nearest enclosing frame that defines it.
func (e *env) Lookup(k string) reference.I {
	var s scope.I = e

	for s != nil {
		if v := s.Local(k); v != nil {
			return v
		}

		s = s.Enclosing()
	}

	return nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns every name visible from the env e.
func (e *env) Names() []string {
	seen := map[string]struct{}{}

	var s scope.I = e
	for s != nil {
		var keys []string

		if f, ok := s.(*env); ok {
			keys = f.names.Keys()
		} else {
			keys = s.Names()
		}

		for _, k := range keys {
			seen[k] = struct{}{}
		}

		s = s.Enclosing()
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Remove deletes the name k from the env e and returns its value.
// Enclosing frames are not affected.
func (e *env) Remove(k string) (cell.I, bool) {
	if e == nil {
		return nil, false
	}

	r := e.names.Get(k)
	if r == nil {
		return nil, false
	}

	e.names.Del(k)

	return r.Get(), true
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
