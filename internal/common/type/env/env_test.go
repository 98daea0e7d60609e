package env

import (
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/type/num"
)

func TestLookup(t *testing.T) {
	root := New(nil)
	root.Define("x", num.Int64(1))

	child := New(root)
	child.Define("y", num.Int64(2))

	if r := child.Lookup("x"); r == nil || !r.Get().Equal(num.Int64(1)) {
		t.Fatalf("expected x to be visible from the child frame")
	}

	if child.Local("x") != nil {
		t.Fatalf("x should not be local to the child frame")
	}

	if root.Lookup("y") != nil {
		t.Fatalf("y should not be visible from the root frame")
	}

	child.Lookup("x").Set(num.Int64(3))

	if !root.Local("x").Get().Equal(num.Int64(3)) {
		t.Fatalf("setting through the child should update the root binding")
	}
}

func TestNames(t *testing.T) {
	root := New(nil)
	root.Define("b", num.Int64(1))
	root.Define("a", num.Int64(1))

	child := New(root)
	child.Define("c", num.Int64(2))
	child.Define("a", num.Int64(2))

	names := child.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestRemove(t *testing.T) {
	root := New(nil)
	root.Define("x", num.Int64(1))

	child := New(root)

	if _, ok := child.Remove("x"); ok {
		t.Fatalf("remove should not affect enclosing frames")
	}

	v, ok := root.Remove("x")
	if !ok || !v.Equal(num.Int64(1)) {
		t.Fatalf("expected the removed value; got %v, %v", v, ok)
	}

	if root.Lookup("x") != nil {
		t.Fatalf("x should no longer be defined")
	}
}
