/*
Lisp is a small interpreter for a Lisp-family language. It reads source
text, evaluates each expression, and prints the value:

	(define (fib n) (if (<= n 1) n (+ (fib (- n 1)) (fib (- n 2)))))
	(fib 10)

With no arguments and a terminal on stdin, lisp starts an interactive
read-eval-print loop. Files named on the command line are evaluated first,
in order, in the same scope as any later input.

Lisp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/ui"
)

const version = "0.1.0"

func main() {
	if err := options.Parse(); err != nil {
		println(err.Error())
		os.Exit(2)
	}

	if options.Version() {
		fmt.Println("lisp " + version)
		os.Exit(0)
	}

	e := engine.New()
	e.Limit(options.Depth())
	e.Trace(options.Debug())

	s := e.Scope()

	for _, path := range options.Files() {
		if _, err := e.Load(path, s); err != nil {
			println(path + ": " + err.Error())
			os.Exit(1)
		}
	}

	var err error

	switch {
	case options.Command() != "":
		err = evaluate(e, options.Command(), s, os.Stdout)
	case options.Interactive():
		err = ui.Run(e, s)
	case len(options.Files()) == 0:
		err = stdin(e, os.Stdin, s, os.Stdout)
	}

	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func evaluate(e *engine.T, text string, s scope.I, w io.Writer) error {
	v, err := e.EvaluateSource(text, s)
	if err != nil {
		return err
	}

	return show(w, v)
}

func show(w io.Writer, v cell.I) error {
	_, err := fmt.Fprintln(w, literal.String(v))

	return err
}

// Reads all of r as program text. Nothing is printed if r holds no
// expressions.
func stdin(e *engine.T, r io.Reader, s scope.I, w io.Writer) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	text := string(b)
	if len(lexer.Tokenize(text)) == 0 {
		return nil
	}

	return evaluate(e, text, s, w)
}
