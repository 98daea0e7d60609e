// Released under an MIT license. See LICENSE.

// Package ui provides an interactive read-eval-print loop.
package ui

import (
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/engine/task"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/system/history"
	"github.com/peterh/liner"
)

const (
	continued = "... "
	prompt    = "in> "
)

// Evaluator is the interface for things that want to process source text.
type Evaluator interface {
	EvaluateSource(text string, s scope.I) (cell.I, error)
}

// Run reads, evaluates, and prints until the user exits. Every input is
// evaluated in the scope s.
func Run(e Evaluator, s scope.I) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(s))

	if err := history.Load(cli.ReadHistory); err != nil && !os.IsNotExist(err) {
		println(err.Error())
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			println(err.Error())
		}
	}()

	text := ""

	for {
		p := prompt
		if text != "" {
			p = continued
		}

		if err := uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(p)

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			text = ""

			continue
		case errors.Is(err, io.EOF):
			os.Stdout.WriteString("  bye bye!\n")

			return nil
		default:
			return err
		}

		text += line + "\n"

		if reader.Pending(text) {
			continue
		}

		input := strings.TrimSpace(text)
		text = ""

		if input == "" {
			continue
		}

		cli.AppendHistory(input)

		if input == "exit" {
			os.Stdout.WriteString("  bye bye!\n")

			return nil
		}

		os.Stdout.WriteString(evaluate(e, input, s) + "\n")
	}
}

func completer(s scope.I) liner.WordCompleter {
	return func(line string, pos int) (h string, cs []string, t string) {
		h = line[:pos]
		t = line[pos:]

		start := strings.LastIndexAny(h, " \t()") + 1

		word := h[start:]
		if word == "" {
			return h, nil, t
		}

		h = h[:start]

		for _, n := range words(s) {
			if strings.HasPrefix(n, word) {
				cs = append(cs, n)
			}
		}

		return h, cs, t
	}
}

func evaluate(e Evaluator, input string, s scope.I) string {
	v, err := e.EvaluateSource(input, s)
	if err != nil {
		return err.Error()
	}

	return "  out> " + literal.String(v)
}

func words(s scope.I) []string {
	ws := append(s.Names(), task.Forms()...)

	sort.Strings(ws)

	return ws
}
