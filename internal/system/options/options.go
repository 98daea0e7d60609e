// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	depth       int
	files       []string
	interactive bool
	version     bool
	usage       = `lisp

Usage:
  lisp [-di] [--depth=N] [FILE...]
  lisp [-d] [--depth=N] -c EXPRESSION [FILE...]
  lisp -h
  lisp -v

Arguments:
  FILE  Source file to evaluate before anything else.

Options:
  -c, --command=EXPRESSION  Evaluate EXPRESSION and print its value.
  -d, --debug               Trace each step of evaluation.
  -i, --interactive         Invert interactive mode.
  --depth=N                 Maximum pending operations, 0 for no limit [default: 4194304].
  -h, --help                Display this help.
  -v, --version             Print lisp version.

If stdin is a TTY, and no expression is given, interactive mode is enabled.
Otherwise, stdin is read as program text and the last value is printed.
`
)

func Command() string {
	return command
}

func Debug() bool {
	return debug
}

func Depth() int {
	return depth
}

func Files() []string {
	return files
}

func Interactive() bool {
	return interactive
}

// Parse parses the process's command line.
func Parse() error {
	return parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

func Version() bool {
	return version
}

func parse(argv []string, terminal bool) error {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	version, _ = opts.Bool("--version")

	files, _ = opts["FILE"].([]string)

	s, _ := opts.String("--depth")

	depth, err = strconv.Atoi(s)
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth %q", s)
	}

	interactive = command == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}
