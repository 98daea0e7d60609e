package history

import (
	"bytes"
	"io"
	"os"
	"runtime"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("history location depends on the user profile")
	}

	t.Setenv("HOME", t.TempDir())

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	})
	if err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	var b bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}

	if b.String() != "(+ 1 2)\n" {
		t.Fatalf("unexpected history %q", b.String())
	}

	info, err := os.Stat(os.Getenv("HOME") + "/" + name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.Mode().Perm()&0o077 != 0 {
		t.Fatalf("history file is accessible to others: %v", info.Mode())
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Load(func(r io.Reader) (int, error) {
		return 0, nil
	})
	if !os.IsNotExist(err) {
		t.Fatalf("expected a not exist error; got %v", err)
	}
}
