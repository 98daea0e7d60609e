// Released under an MIT license. See LICENSE.

// Package reader converts source text into expressions.
package reader

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
)

// Pending returns true if text has more '(' than ')' tokens and so
// needs more input to complete.
func Pending(text string) bool {
	depth := 0

	for _, t := range lexer.Tokenize(text) {
		switch t {
		case "(":
			depth++
		case ")":
			depth--
		}
	}

	return depth > 0
}

// Read returns every expression in text.
func Read(text string) ([]cell.I, error) {
	return parser.ParseAll(lexer.Tokenize(text))
}
