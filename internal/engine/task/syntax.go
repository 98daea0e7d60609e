// Released under an MIT license. See LICENSE.

package task

import (
	"sort"
	"unicode"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/truth"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

// Special forms are recognized by their head symbol before any lookup.
//
//nolint:gochecknoglobals
var syntax map[string]Action

// Forms returns the sorted names of the special forms.
func Forms() []string {
	names := make([]string, 0, len(syntax))
	for k := range syntax {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// evalAnd evaluates operands, left to right, until one is false.
//
// Result:
//
//	code:  Operand_0 ... Operand_N
//	dump:  #t ...
//	stack: testAnd Previous ...
//
// Requires:
//
//	code:  Operand_0 ... Operand_N
//	stack: evalAnd Previous ...
func evalAnd(t *T) Op {
	operands("and", t.code, 0, -1)

	t.PushResult(boolean.True)

	return t.ReplaceOp(Action(testAnd))
}

// evalCons evaluates exactly two operands and pairs them.
func evalCons(t *T) Op {
	operands("cons", t.code, 2, 2)

	t.ReplaceOp(Action(execCons))
	t.PushResult(nil)

	return t.PushOp(Action(evalArgs))
}

// evalDefine binds a name to a value in the current frame.
//
// Result:
//
//	code:  Value
//	dump:  Name ...
//	stack: Eval execDefine Previous ...
//
// Requires:
//
//	code:  Name Value
//	stack: evalDefine Previous ...
//
// The form (define (name params...) body) is equivalent to
// (define name (lambda (params...) body)).
func evalDefine(t *T) Op {
	v := operands("define", t.code, 2, 2)

	if pair.Is(v[0]) && v[0] != pair.Null {
		k := definable(pair.Car(v[0]))
		c := closure(t, pair.Cdr(v[0]), v[1])

		t.frame.Define(k, c)

		return t.Return(c)
	}

	definable(v[0])

	t.ReplaceOp(Action(execDefine))
	t.PushResult(v[0])

	t.code = v[1]

	return t.PushOp(Action(Eval))
}

// evalDel removes a name from the current frame and returns its value.
func evalDel(t *T) Op {
	v := operands("del", t.code, 1, 1)
	k := name("del", v[0])

	c, ok := t.frame.Remove(k)
	if !ok {
		panic(failure.Name("%s is not defined in the current frame", k))
	}

	return t.Return(c)
}

// evalIf evaluates a condition and then one of two branches.
//
// Result:
//
//	code:  Condition
//	stack: evalOperand Restore(code: Condition Consequent Alternative) execIf Previous ...
//
// Requires:
//
//	code:  Condition Consequent Alternative
//	stack: evalIf Previous ...
func evalIf(t *T) Op {
	v := operands("if", t.code, 3, 3)

	t.ReplaceOp(Action(execIf))
	t.PushOp(&registers{code: t.code})

	t.code = v[0]

	return t.PushOp(Action(evalOperand))
}

// evalLambda creates a closure over the current frame.
func evalLambda(t *T) Op {
	v := operands("lambda", t.code, 2, 2)

	return t.Return(closure(t, v[0], v[1]))
}

// evalLet evaluates values in the current frame and then evaluates the
// body in a new frame where each name is bound to its value.
//
// Result:
//
//	code:  Value_0 ... Value_N
//	dump:  nil Names ...
//	stack: evalArgs Restore(code: Body) execLet Previous ...
//
// Requires:
//
//	code:  ((Name_0 Value_0) ... (Name_N Value_N)) Body
//	stack: evalLet Previous ...
func evalLet(t *T) Op {
	v := operands("let", t.code, 2, 2)

	bindings := operands("let bindings", v[0], 0, -1)

	names := make([]cell.I, len(bindings))
	values := make([]cell.I, len(bindings))

	for i, b := range bindings {
		nv := operands("let binding", b, 2, 2)

		name("let", nv[0])

		names[i], values[i] = nv[0], nv[1]
	}

	t.ReplaceOp(Action(execLet))
	t.PushOp(&registers{code: v[1]})

	t.PushResult(list.New(names...))
	t.PushResult(nil)

	t.code = list.New(values...)

	return t.PushOp(Action(evalArgs))
}

// evalList evaluates its operands and returns them as a list.
func evalList(t *T) Op {
	operands("list", t.code, 0, -1)

	t.ReplaceOp(Action(execList))
	t.PushResult(nil)

	return t.PushOp(Action(evalArgs))
}

// evalOr evaluates operands, left to right, until one is true.
//
// Result:
//
//	code:  Operand_0 ... Operand_N
//	dump:  #f ...
//	stack: testOr Previous ...
//
// Requires:
//
//	code:  Operand_0 ... Operand_N
//	stack: evalOr Previous ...
func evalOr(t *T) Op {
	operands("or", t.code, 0, -1)

	t.PushResult(boolean.False)

	return t.ReplaceOp(Action(testOr))
}

// evalSet rebinds a name in the nearest frame that defines it.
//
// Result:
//
//	code:  Value
//	dump:  Name ...
//	stack: Eval execSet Previous ...
//
// Requires:
//
//	code:  Name Value
//	stack: evalSet Previous ...
func evalSet(t *T) Op {
	v := operands("set!", t.code, 2, 2)

	name("set!", v[0])

	t.ReplaceOp(Action(execSet))
	t.PushResult(v[0])

	t.code = v[1]

	return t.PushOp(Action(Eval))
}

func execCons(t *T) Op {
	args := t.arguments()

	return t.Return(pair.Cons(pair.Car(args), pair.Cadr(args)))
}

func execDefine(t *T) Op {
	v := t.PopResult()
	k := common.String(t.PopResult())

	t.frame.Define(k, v)

	return t.Return(v)
}

// execIf selects the branch indicated by the evaluated condition.
//
// Result:
//
//	code:  Consequent | Alternative
//	stack: evalOperand Previous ...
//
// Requires:
//
//	code:  Condition Consequent Alternative
//	dump:  EvaluatedCondition ...
//	stack: execIf Previous ...
func execIf(t *T) Op {
	if truth.Value(t.PopResult()) {
		t.code = pair.Cadr(t.code)
	} else {
		t.code = pair.Caddr(t.code)
	}

	return t.ReplaceOp(Action(evalOperand))
}

// execLet binds the evaluated values in a new frame and evaluates the body.
//
// Result:
//
//	code:  Body
//	frame: New frame enclosed by Current
//	stack: Eval Restore(frame: Current) Previous ...
//
// Requires:
//
//	code:  Body
//	dump:  Value_N ... Value_0 nil Names ...
//	frame: Current
//	stack: execLet Previous ...
func execLet(t *T) Op {
	values := t.arguments()
	names := t.PopResult()

	e := env.New(t.frame)

	for ; names != pair.Null; names = pair.Cdr(names) {
		e.Define(common.String(pair.Car(names)), pair.Car(values))
		values = pair.Cdr(values)
	}

	t.ReplaceOp(&registers{frame: t.frame})

	t.frame = e

	return t.PushOp(Action(Eval))
}

func execList(t *T) Op {
	return t.Return(t.arguments())
}

func execSet(t *T) Op {
	v := t.PopResult()
	k := common.String(t.PopResult())

	r := t.frame.Lookup(k)
	if r == nil {
		panic(failure.Name("%s is not defined", k))
	}

	r.Set(v)

	return t.Return(v)
}

// testAnd stops at the first false result or evaluates the next operand.
//
// Result:
//
//	code:  Operand_i
//	stack: evalOperand Restore(code: Operand_i+1 ...) testAnd Previous ...
//
// Requires:
//
//	code:  Operand_i ...
//	dump:  EvaluatedOperand_i-1 ...
//	stack: testAnd Previous ...
func testAnd(t *T) Op {
	if !truth.Value(t.PopResult()) {
		return t.Return(boolean.False)
	}

	return test(t, boolean.True)
}

// testOr stops at the first true result or evaluates the next operand.
func testOr(t *T) Op {
	if truth.Value(t.PopResult()) {
		return t.Return(boolean.True)
	}

	return test(t, boolean.False)
}

// Helpers.

func closure(t *T, params, body cell.I) *Closure {
	labels := operands("lambda parameters", params, 0, -1)

	c := &Closure{
		Body:   body,
		Params: make([]string, len(labels)),
		Scope:  t.frame,
	}

	for i, l := range labels {
		c.Params[i] = name("lambda", l)
	}

	return c
}

func count(n int, label string) string {
	return validate.Count(n, label, "s")
}

// Names given to define must be plain ASCII without parentheses or spaces.
func definable(c cell.I) string {
	k := name("define", c)

	for _, r := range k {
		if r > unicode.MaxASCII || r == '(' || r == ')' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			panic(failure.Evaluation("invalid name %s", literal.String(c)))
		}
	}

	return k
}

func name(label string, c cell.I) string {
	s, ok := c.(*sym.T)
	if !ok {
		panic(failure.Evaluation("%s expects a name, not %s", label, literal.String(c)))
	}

	return s.String()
}

// Checks that c is a proper list of at least min and, unless max is
// negative, at most max elements and returns those elements.
func operands(label string, c cell.I, min, max int) []cell.I {
	if !list.Proper(c) {
		panic(failure.Evaluation("malformed %s: %s", label, literal.String(c)))
	}

	v := list.Slice(c)

	n := len(v)
	if n < min || (max >= 0 && n > max) {
		expected := count(min, "operand")

		switch {
		case min == max:
		case n < min:
			expected = "at least " + expected
		default:
			expected = "at most " + count(max, "operand")
		}

		panic(failure.Evaluation("%s expects %s, passed %d", label, expected, n))
	}

	return v
}

func test(t *T, last cell.I) Op {
	if t.code == pair.Null {
		return t.Return(last)
	}

	t.PushOp(&registers{code: pair.Cdr(t.code)})

	t.code = pair.Car(t.code)

	return t.PushOp(Action(evalOperand))
}

func init() { //nolint:gochecknoinits
	syntax = map[string]Action{
		"and":    evalAnd,
		"cons":   evalCons,
		"define": evalDefine,
		"del":    evalDel,
		"if":     evalIf,
		"lambda": evalLambda,
		"let":    evalLet,
		"list":   evalList,
		"or":     evalOr,
		"set!":   evalSet,
	}
}
