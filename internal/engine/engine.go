// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed code.
package engine

import (
	"os"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/engine/task"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating code.
// Each engine owns its own root frame.
type T struct {
	global scope.I
	limit  int
	trace  bool
}

type engine = T

// New creates a new T with a root frame holding the builtins.
func New() *engine {
	g := env.New(nil)

	task.Builtins(g)

	return &engine{
		global: g,
		limit:  task.DefaultLimit,
	}
}

// Evaluate evaluates the expression c in the scope s. If s is nil a fresh
// child of the root frame is used.
func (e *engine) Evaluate(c cell.I, s scope.I) (cell.I, error) {
	if s == nil {
		s = e.Scope()
	}

	t := task.New(c, s, e.limit)
	t.Trace(e.trace)

	return t.Run()
}

// EvaluateSource reads every expression in text and evaluates them, in
// order, in the scope s. It returns the value of the last expression or
// the empty list if there are none.
func (e *engine) EvaluateSource(text string, s scope.I) (cell.I, error) {
	cs, err := reader.Read(text)
	if err != nil {
		return nil, err
	}

	if s == nil {
		s = e.Scope()
	}

	v := pair.Null

	for _, c := range cs {
		v, err = e.Evaluate(c, s)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Global returns the root frame.
func (e *engine) Global() scope.I {
	return e.global
}

// Limit sets the maximum number of pending operations for each evaluation.
// A limit of zero or less removes the bound.
func (e *engine) Limit(n int) {
	e.limit = n
}

// Load evaluates the contents of the file at path in the scope s.
func (e *engine) Load(path string, s scope.I) (cell.I, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return e.EvaluateSource(string(b), s)
}

// Scope returns a fresh child of the root frame.
func (e *engine) Scope() scope.I {
	return env.New(e.global)
}

// Trace enables (or disables) tracing of each step of evaluation.
func (e *engine) Trace(on bool) {
	e.trace = on
}
