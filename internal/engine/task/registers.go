// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

// The registers type holds the state of the stack-based abstract machine.
type registers struct {
	*stack
	frame scope.I
	code  cell.I
	dump  cell.I
	limit int
}

// Perform copies non-nil fields from m to target.
func (m *registers) Perform(target *T) Op {
	m.restoreOver(target.registers)

	return target.PreviousOp()
}

// Completed returns true if no operations remain.
func (m *registers) Completed() bool {
	return m.stack == done
}

// Depth returns the number of pending operations.
func (m *registers) Depth() int {
	return m.stack.depth
}

// Op returns the abstract machine's current operation.
func (m *registers) Op() Op {
	return m.stack.op
}

// PopResult removes the top result from dump.
func (m *registers) PopResult() cell.I {
	r := pair.Car(m.dump)
	m.dump = pair.Cdr(m.dump)

	return r
}

// PushOp pushes a new operation onto the stack. Pushing past the limit
// on pending operations panics with an exhaustion failure.
func (m *registers) PushOp(s Op) Op {
	current := toRegisters(s)
	previous := toRegisters(m.stack.op)

	if current != nil && previous != nil {
		// Condense restore operations.
		previous.restoreOver(current)
		m.stack.op = current

		return s
	}

	depth := m.stack.depth + 1
	if m.limit > 0 && depth > m.limit {
		panic(failure.Exhausted(m.limit))
	}

	m.stack = &stack{stack: m.stack, op: s, depth: depth}

	return s
}

// PushResult adds the result r to dump.
func (m *registers) PushResult(r cell.I) {
	m.dump = pair.Cons(r, m.dump)
}

// PreviousOp pops the current operation and returns the previous operation.
func (m *registers) PreviousOp() Op {
	m.RemoveOp()
	return m.Op()
}

// RemoveOp pops the current operation off the stack.
func (m *registers) RemoveOp() {
	m.stack = m.stack.stack
}

// ReplaceOp replaces the operation at the top of the stack.
func (m *registers) ReplaceOp(s Op) Op {
	m.RemoveOp()
	return m.PushOp(s)
}

// ReplaceResult replaced the current result.
func (m *registers) ReplaceResult(r cell.I) {
	m.dump = pair.Cons(r, pair.Cdr(m.dump))
}

// Result returns the current result.
func (m *registers) Result() cell.I {
	return pair.Car(m.dump)
}

// The stack type is a machine's execution stack.
type stack struct {
	*stack
	op    Op
	depth int
}

//nolint:gochecknoglobals
var (
	done = &stack{}
)

// Pops results back to, and including, the nil marker and returns them
// as a list in the order they were pushed.
func (m *registers) arguments() cell.I {
	e := m.PopResult()
	l := pair.Null

	for e != nil && m.dump != pair.Null {
		l = pair.Cons(e, l)

		e = m.PopResult()
	}

	return l
}

func (m *registers) restoreOver(target *registers) {
	if m.frame != nil {
		target.frame = m.frame
	}

	if m.code != nil {
		target.code = m.code
	}

	if m.dump != nil {
		target.dump = m.dump
	}

	if m.stack != nil {
		target.stack = m.stack
	}
}

func init() { //nolint:gochecknoinits
	done.stack = done
}

func toRegisters(s Op) *registers {
	if r, ok := s.(*registers); ok {
		return r
	}

	return nil
}
