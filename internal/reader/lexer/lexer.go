// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for source text.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// A semicolon starts a comment that runs to the end of the line. Outside
// of comments, tokens are separated by whitespace and parentheses are
// always tokens on their own.
package lexer

import (
	"unicode"
	"unicode/utf8"
)

// T holds the state of the scanner.
type T struct {
	bytes  string   // Buffer being scanned.
	first  int      // Index of the current token's first byte.
	index  int      // Index of the current byte.
	state  action   // Current action.
	tokens []string // Tokens scanned but not yet returned.
}

// New creates a new T that scans text.
func New(text string) *T {
	return &T{
		bytes: text,
		state: skipWhitespace,
	}
}

// Tokenize returns every token in source, in order.
func Tokenize(source string) []string {
	l := New(source)

	tokens := []string{}

	for {
		t, ok := l.Token()
		if !ok {
			return tokens
		}

		tokens = append(tokens, t)
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token. The boolean is false when there
// are no more tokens.
func (l *T) Token() (string, bool) {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return "", false
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t, true
}

type action func(*T) action

const eof = -1

func (l *T) accept(w int) {
	l.index += w
}

func (l *T) emit() {
	l.tokens = append(l.tokens, l.Text())
	l.skip()
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
}

// T states.

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.emit()
			return nil
		case r == '(' || r == ')' || r == ';' || unicode.IsSpace(r):
			l.emit()
			return skipWhitespace
		}

		l.accept(w)
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n', '\r':
			return skipWhitespace
		}

		l.accept(w)
		l.skip()
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r == '(' || r == ')':
			l.accept(w)
			l.emit()

			return skipWhitespace
		case r == ';':
			return skipComment
		case !unicode.IsSpace(r):
			return scanSymbol
		}

		l.accept(w)
		l.skip()
	}
}
