package options

import (
	"testing"
)

func TestCommand(t *testing.T) {
	err := parse([]string{"-c", "(+ 1 2)", "prelude.lisp"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Command() != "(+ 1 2)" {
		t.Fatalf("expected command; got %q", Command())
	}

	if Interactive() {
		t.Fatalf("a command should disable interactive mode")
	}

	if len(Files()) != 1 || Files()[0] != "prelude.lisp" {
		t.Fatalf("unexpected files %v", Files())
	}
}

func TestDefaults(t *testing.T) {
	err := parse([]string{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Depth() != 4194304 {
		t.Fatalf("expected default depth; got %d", Depth())
	}

	if !Interactive() || Debug() || Version() {
		t.Fatalf("unexpected flags: interactive %v, debug %v, version %v",
			Interactive(), Debug(), Version())
	}
}

func TestDepth(t *testing.T) {
	err := parse([]string{"--depth=100", "-d"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Depth() != 100 || !Debug() {
		t.Fatalf("expected depth 100 with debug; got %d, %v", Depth(), Debug())
	}

	err = parse([]string{"--depth=lots"}, false)
	if err == nil {
		t.Fatalf("expected an error for an invalid depth")
	}
}

func TestInvertInteractive(t *testing.T) {
	err := parse([]string{"-i"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !Interactive() {
		t.Fatalf("-i should force interactive mode without a terminal")
	}

	err = parse([]string{"-i"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Interactive() {
		t.Fatalf("-i should disable interactive mode with a terminal")
	}
}
