// Released under an MIT license. See LICENSE.

// Package task provides the abstract machine that evaluates expressions.
//
// Evaluation never recurses on the Go stack. Each step of the machine is an
// operation that manipulates explicit registers: a stack of pending
// operations, the current frame, the code being evaluated, and a dump of
// intermediate results.
package task

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

// DefaultLimit is the default maximum number of pending operations.
const DefaultLimit = 1 << 22

// T (task) evaluates a single expression.
type T struct {
	*registers
	trace bool
}

// New creates a new task to evaluate the expression c in the scope s.
// A limit of zero or less means the operation stack is unbounded.
func New(c cell.I, s scope.I, limit int) *T {
	t := &T{
		registers: &registers{
			code:  c,
			dump:  pair.Null,
			frame: s,
			limit: limit,
			stack: done,
		},
	}

	t.PushOp(Action(Eval))

	return t
}

// Return pushes the value c as the result of the current operation and
// returns the previous operation.
func (t *T) Return(c cell.I) Op {
	t.PushResult(c)

	return t.PreviousOp()
}

// Run steps through a task's operations until they are exhausted and
// returns the value of the expression.
func (t *T) Run() (cell.I, error) {
	s := t.Op()
	for !t.Completed() {
		var err error

		s, err = t.Step(s)
		if err != nil {
			return nil, err
		}
	}

	return t.Result(), nil
}

// Step performs a single action and determines the next action.
// A panic while performing the action aborts the task.
func (t *T) Step(s Op) (op Op, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		t.stack = done
		t.dump = pair.Null

		op, err = nil, failure.Recovered(r)
	}()

	if t.trace {
		print("Stack (", t.Depth(), "): ")

		for p := t.stack; p != done; p = p.stack {
			print(opString(p.op))
			print(" ")
		}

		println("")
		print("Dump: ")

		for p := t.dump; p != pair.Null; p = pair.Cdr(p) {
			switch c := pair.Car(p).(type) {
			case nil:
				print("<nil> ")
			case *Builtin:
				print(c.Label(), " ")
			default:
				print(c.Name(), " ")
			}
		}

		println("")
		print("Code: ")

		println(literal.String(t.code))

		println("")
	}

	op = s.Perform(t)

	return op, nil
}

// Trace enables (or disables) printing the machine's registers before
// each step.
func (t *T) Trace(on bool) {
	t.trace = on
}
