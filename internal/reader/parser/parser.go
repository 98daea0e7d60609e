// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for token streams.
package parser

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	index  int      // Position of the lookahead token.
	tokens []string // Tokens being parsed.
}

// New creates a new parser for tokens.
func New(tokens []string) *T {
	return &T{tokens: tokens}
}

// Parse parses exactly one expression. Tokens after the first expression
// are a syntax error.
func Parse(tokens []string) (cell.I, error) {
	return New(tokens).One()
}

// ParseAll parses every top-level expression in tokens, in order.
func ParseAll(tokens []string) ([]cell.I, error) {
	return New(tokens).All()
}

// All parses every remaining top-level expression.
func (p *T) All() (cs []cell.I, err error) {
	defer p.recover(&err)

	p.validate()

	cs = []cell.I{}
	for p.peek() != "" {
		cs = append(cs, p.expression())
	}

	return cs, nil
}

// One parses a single expression that must use every remaining token.
func (p *T) One() (c cell.I, err error) {
	defer p.recover(&err)

	p.validate()

	if p.peek() == "" {
		panic(failure.Syntax("unexpected end of input"))
	}

	c = p.expression()

	if t := p.peek(); t != "" {
		panic(failure.Syntax("unexpected '%s' after expression", t))
	}

	return c, nil
}

func (p *T) consume() string {
	if p.index >= len(p.tokens) {
		panic(failure.Syntax("unexpected end of input"))
	}

	t := p.tokens[p.index]
	p.index++

	return t
}

// The empty string is never a token so it marks the end of input.
func (p *T) peek() string {
	if p.index >= len(p.tokens) {
		return ""
	}

	return p.tokens[p.index]
}

func (p *T) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	*err = failure.Recovered(r)
}

// Checks that apply to the stream as a whole.
func (p *T) validate() {
	opened, closed := 0, 0
	bare := ""

	for _, t := range p.tokens[p.index:] {
		switch t {
		case "(":
			opened++
		case ")":
			if opened == 0 {
				panic(failure.Syntax("')' before '('"))
			}

			closed++
		case "define", "lambda":
			if bare == "" {
				bare = t
			}
		}
	}

	if opened != closed {
		panic(failure.Syntax("unbalanced parentheses: %d '(' and %d ')'", opened, closed))
	}

	if opened == 0 && bare != "" {
		panic(failure.Syntax("'%s' outside of parentheses", bare))
	}
}

// T state functions.

// <atom> ::= Integer | Float | Symbol .
func (p *T) atom() cell.I {
	t := p.consume()

	if n, ok := num.Parse(t); ok {
		return n
	}

	return sym.New(t)
}

// <compound> ::= '(' <expression>* ')' .
func (p *T) compound() cell.I {
	p.consume()

	elements := []cell.I{}

	for {
		switch p.peek() {
		case "":
			panic(failure.Syntax("unexpected end of input, expected ')'"))
		case ")":
			p.consume()

			if len(elements) == 0 {
				return pair.Null
			}

			return list.New(elements...)
		}

		elements = append(elements, p.expression())
	}
}

// <expression> ::= <atom> | <compound> .
func (p *T) expression() cell.I {
	switch p.peek() {
	case "(":
		return p.compound()
	case ")":
		panic(failure.Syntax("unexpected ')'"))
	}

	return p.atom()
}
