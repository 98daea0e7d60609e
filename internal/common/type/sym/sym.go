// Released under an MIT license. See LICENSE.

// Package sym provides the symbol cell type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const (
	name  = "symbol"
	short = 3
)

// T (sym) wraps Go's string type. Short strings are interned.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return repr(string(*s))
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

// Symbols that could not have come from the reader are printed quoted.
func repr(s string) string {
	if len(s) == 0 {
		return adapted.CanonicalString(s)
	}

	for _, r := range s {
		if r <= ' ' || r > '~' || r == '(' || r == ')' || r == ';' {
			return adapted.CanonicalString(s)
		}
	}

	return s
}

func symnew(v string) *sym {
	cacheable := len(v) <= short

	if cacheable {
		cachel.RLock()
		p, ok := cache[v]
		cachel.RUnlock()

		if ok {
			return p
		}

		cachel.Lock()
		defer cachel.Unlock()

		if p, ok = cache[v]; ok {
			return p
		}
	}

	s := sym(v)
	p := &s

	if cacheable {
		cache[v] = p
	}

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
