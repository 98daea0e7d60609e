// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

// Join creates a new list with every element from every list in lists.
// A non-pair where a pair is expected will cause a panic.
// All lists must be non-circular.
func Join(lists ...cell.I) cell.I {
	joined := pair.Null

	for i := len(lists) - 1; i >= 0; i-- {
		joined = prepend(lists[i], joined)
	}

	return joined
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	list := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		list = pair.Cons(elements[i], list)
	}

	return list
}

// Proper returns true if c is Null or a chain of pairs ending in Null.
func Proper(c cell.I) bool {
	for c != pair.Null {
		if !pair.Is(c) {
			return false
		}

		c = pair.Cdr(c)
	}

	return true
}

// Ref returns the element at the zero-based index in list.
// An index outside the list will cause a panic.
// The list must be non-circular.
func Ref(list cell.I, index int64) cell.I {
	if index < 0 {
		panic(failure.Evaluation("index %d before first element", index))
	}

	for i := index; i > 0; i-- {
		if list == pair.Null {
			break
		}

		list = pair.Cdr(list)
	}

	if list == pair.Null {
		panic(failure.Evaluation("index %d after last element", index))
	}

	return pair.Car(list)
}

// Slice returns the elements of list as a slice.
// A non-pair value where a pair is expected will cause a panic.
func Slice(list cell.I) []cell.I {
	s := []cell.I{}

	for list != pair.Null {
		s = append(s, pair.Car(list))

		list = pair.Cdr(list)
	}

	return s
}

func prepend(front, back cell.I) cell.I {
	if front == pair.Null {
		return back
	}

	elements := Slice(front)
	for i := len(elements) - 1; i >= 0; i-- {
		back = pair.Cons(elements[i], back)
	}

	return back
}
