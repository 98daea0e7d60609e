// Released under an MIT license. See LICENSE.

// Package failure provides the classified errors reported by the interpreter.
//
// Every error produced while reading or evaluating code is a *T. Its kind
// can be selected with errors.Is and one of the sentinel errors below. All
// kinds also match ErrLanguage.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

// Failure kinds.
const (
	SyntaxError Kind = iota + 1
	NameError
	EvaluationError
)

//nolint:gochecknoglobals
var (
	// ErrLanguage is matched by every failure.
	ErrLanguage = errors.New("language error")

	ErrEvaluation = errors.New("evaluation error")
	ErrName       = errors.New("name error")
	ErrSyntax     = errors.New("syntax error")

	// ErrExhausted is matched by evaluation errors caused by running out
	// of evaluation stack.
	ErrExhausted = errors.New("evaluation stack exhausted")
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case NameError:
		return "NameError"
	case EvaluationError:
		return "EvaluationError"
	}

	return "Error"
}

func (k Kind) sentinel() error {
	switch k {
	case SyntaxError:
		return ErrSyntax
	case NameError:
		return ErrName
	case EvaluationError:
		return ErrEvaluation
	}

	return nil
}

// T (failure) is a classified error.
type T struct {
	cause error
	kind  Kind
	msg   string
}

type failure = T

// Evaluation creates an evaluation error.
func Evaluation(format string, a ...interface{}) *failure {
	return New(EvaluationError, fmt.Sprintf(format, a...))
}

// Exhausted creates the evaluation error reported when more than limit
// operations are pending.
func Exhausted(limit int) *failure {
	f := Evaluation("evaluation stack exhausted (limit %d)", limit)
	f.cause = ErrExhausted

	return f
}

// Name creates a name error.
func Name(format string, a ...interface{}) *failure {
	return New(NameError, fmt.Sprintf(format, a...))
}

// New creates a failure of kind k with the message msg.
func New(k Kind, msg string) *failure {
	return &failure{kind: k, msg: msg}
}

// Recovered converts a value recovered from a panic into an error.
// Anything that is not already a failure becomes an evaluation error.
func Recovered(r interface{}) error {
	switch r := r.(type) {
	case *failure:
		return r
	case error:
		f := Evaluation("%s", r.Error())
		f.cause = r

		return f
	case string:
		return Evaluation("%s", r)
	case fmt.Stringer:
		return Evaluation("%s", r.String())
	}

	return Evaluation("%v", r)
}

// Syntax creates a syntax error.
func Syntax(format string, a ...interface{}) *failure {
	return New(SyntaxError, fmt.Sprintf(format, a...))
}

// Error returns the kind and message of the failure f.
func (f *failure) Error() string {
	return f.kind.String() + ": " + f.msg
}

// Is returns true if target is ErrLanguage or the sentinel for f's kind.
func (f *failure) Is(target error) bool {
	return target == ErrLanguage || target == f.kind.sentinel()
}

// Kind returns the kind of the failure f.
func (f *failure) Kind() Kind {
	return f.kind
}

// Message returns the failure f's message without its kind.
func (f *failure) Message() string {
	return f.msg
}

// Unwrap returns the underlying cause, if any.
func (f *failure) Unwrap() error {
	return f.cause
}
