// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// Action performs a single step of the machine and returns the next operation.
type Action func(*T) Op

// Perform is required for an action to be an operation.
func (a Action) Perform(t *T) Op {
	return a(t)
}

// Actions.

// Eval evaluates the expression pointed to by code.
//
// Symbols are looked up. Compound expressions are either special forms,
// identified by their head symbol, or applications. Everything else
// evaluates to itself. As a special case the empty list evaluates to the
// empty list.
//
// Result:
//
//	code:  <undefined>
//	dump:  Value ...
//	stack: Previous ...
//
// Requires:
//
//	code:  Expression
//	dump:  ...
//	stack: Eval Previous ...
func Eval(t *T) Op {
	switch c := t.code.(type) {
	case *sym.T:
		k := c.String()

		r := t.frame.Lookup(k)
		if r == nil {
			panic(failure.Name("%s is not defined", k))
		}

		return t.Return(r.Get())

	case *pair.T:
		if t.code == pair.Null {
			return t.Return(pair.Null)
		}

		if head, ok := pair.Car(c).(*sym.T); ok {
			if a, ok := syntax[head.String()]; ok {
				t.code = pair.Cdr(c)

				return t.ReplaceOp(a)
			}
		}

		return evalCall(t)
	}

	return t.Return(t.code)
}

// evalArgs evaluates arguments in the list pointed to by code.
//
// Result:
//
//	code:  <undefined>
//	dump:  EvaluatedArg_N ... EvaluatedArg_0 nil ...
//	stack: Previous ...
//
// Requires:
//
//	code:  Arg_i ...
//	dump:  EvaluatedArg_i-1 ... EvaluatedArg_0 nil ...
//	stack: evalArgs Previous ...
//
// While there are arguments to be evaluated, evalArgs sets code to the
// current argument and pushes a restore operation with code pointing to the
// rest of the argument list. If the current argument is the last argument
// evalArgs removes itself and does not push a restore operation. This allows
// the final Eval to return directly to the previous op.
func evalArgs(t *T) Op {
	if t.code == pair.Null {
		return t.PreviousOp()
	}

	next := pair.Cdr(t.code)
	if next == pair.Null {
		t.RemoveOp()
	} else {
		t.PushOp(&registers{code: next})
	}

	t.code = pair.Car(t.code)

	return t.PushOp(Action(Eval))
}

// evalCall triggers the evaluation of the operator of an application so
// that evalOperands can check it.
//
// Result:
//
//	code:  Operator
//	stack: Eval Restore(code: Arg_0 ... Arg_N) evalOperands Previous ...
//
// Requires:
//
//	code:  Operator Arg_0 ... Arg_N
//	stack: Eval Previous ...
func evalCall(t *T) Op {
	args := pair.Cdr(t.code)
	if !list.Proper(args) {
		panic(failure.Evaluation("malformed application %s", literal.String(t.code)))
	}

	t.ReplaceOp(Action(evalOperands))
	t.PushOp(&registers{code: args})

	t.code = pair.Car(t.code)

	return t.PushOp(Action(Eval))
}

// evalOperand evaluates code unless it is the literal #t or #f.
func evalOperand(t *T) Op {
	if s, ok := t.code.(*sym.T); ok {
		if b, ok := boolean.Constant(s.String()); ok {
			return t.Return(b)
		}
	}

	return t.ReplaceOp(Action(Eval))
}

// evalOperands checks the evaluated operator and then evaluates the
// arguments. The number of arguments passed to a closure is checked
// before any argument is evaluated.
//
// Result:
//
//	code:  Arg_0 ... Arg_N
//	dump:  nil Procedure ...
//	stack: evalArgs execCall Previous ...
//
// Requires:
//
//	code:  Arg_0 ... Arg_N
//	dump:  Procedure ...
//	stack: evalOperands Previous ...
func evalOperands(t *T) Op {
	switch p := t.Result().(type) {
	case *Builtin:
	case *Closure:
		actual := int(list.Length(t.code))
		expected := len(p.Params)

		if actual != expected {
			panic(failure.Evaluation(
				"%s expects %s, passed %d",
				literal.String(p), count(expected, "argument"), actual,
			))
		}
	default:
		panic(failure.Evaluation("%s is not a procedure", literal.String(p)))
	}

	t.ReplaceOp(Action(execCall))
	t.PushResult(nil)

	return t.PushOp(Action(evalArgs))
}

// execCall applies the procedure to the evaluated arguments.
//
// For a builtin:
//
//	dump:  Value ...
//	stack: Previous ...
//
// For a closure:
//
//	code:  Body
//	frame: New frame enclosed by the closure's frame
//	stack: Eval Restore(frame: Current) Previous ...
//
// Requires:
//
//	dump:  EvaluatedArg_N ... EvaluatedArg_0 nil Procedure ...
//	frame: Current
//	stack: execCall Previous ...
func execCall(t *T) Op {
	args := t.arguments()

	switch p := t.PopResult().(type) {
	case *Builtin:
		return t.Return(p.Apply(args))

	case *Closure:
		e := env.New(p.Scope)

		for _, k := range p.Params {
			e.Define(k, pair.Car(args))
			args = pair.Cdr(args)
		}

		t.ReplaceOp(&registers{frame: t.frame})

		t.code = p.Body
		t.frame = e

		return t.PushOp(Action(Eval))
	}

	panic(failure.Evaluation("unexpected problem applying procedure"))
}
