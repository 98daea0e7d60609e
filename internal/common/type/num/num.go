// Released under an MIT license. See LICENSE.

// Package num provides the integer and floating point number types.
//
// Integers are 64-bit. Arithmetic that would overflow an integer, or that
// mixes integers and floats, produces a float.
package num

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/failure"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/number"
)

const name = "number"

// Int wraps Go's int64 type.
type Int int64

// Float wraps Go's float64 type.
type Float float64

//nolint:gochecknoglobals
var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Int64 creates a new integer cell.
func Int64(i int64) cell.I {
	v := Int(i)

	return &v
}

// Float64 creates a new float cell.
func Float64(f float64) cell.I {
	v := Float(f)

	return &v
}

// Parse converts the text s to a number, if s is a numeric literal.
// Base-10 integers become an Int unless they overflow. Other decimal
// literals become a Float.
func Parse(s string) (cell.I, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return Int64(i), true
	}

	if !decimal.MatchString(s) {
		return nil, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}

	return Float64(f), true
}

// IsInt returns true if c is an integer.
func IsInt(c cell.I) bool {
	_, ok := c.(*Int)

	return ok
}

// Add returns the sum of a and b.
func Add(a, b cell.I) cell.I {
	x, y, ok := ints(a, b)
	if ok && !(y > 0 && x > math.MaxInt64-y) && !(y < 0 && x < math.MinInt64-y) {
		return Int64(x + y)
	}

	return Float64(number.Value(a).Float() + number.Value(b).Float())
}

// Cmp compares a and b and returns -1, 0 or +1.
func Cmp(a, b cell.I) int {
	x, y, ok := ints(a, b)
	if ok {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}

		return 0
	}

	f, g := number.Value(a).Float(), number.Value(b).Float()

	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	}

	return 0
}

// Mul returns the product of a and b.
func Mul(a, b cell.I) cell.I {
	x, y, ok := ints(a, b)
	if ok {
		if x == 0 || y == 0 {
			return Int64(0)
		}

		p := x * y
		if p/y == x && !(x == -1 && y == math.MinInt64) && !(y == -1 && x == math.MinInt64) {
			return Int64(p)
		}
	}

	return Float64(number.Value(a).Float() * number.Value(b).Float())
}

// Neg returns the negation of a.
func Neg(a cell.I) cell.I {
	if i, ok := a.(*Int); ok && int64(*i) != math.MinInt64 {
		return Int64(-int64(*i))
	}

	return Float64(-number.Value(a).Float())
}

// Quo returns the quotient of a and b. The result is an integer when both
// operands are integers and the division is exact.
func Quo(a, b cell.I) cell.I {
	if number.Value(b).Float() == 0 {
		panic(failure.Evaluation("division by zero"))
	}

	x, y, ok := ints(a, b)
	if ok && x%y == 0 && !(x == math.MinInt64 && y == -1) {
		return Int64(x / y)
	}

	return Float64(number.Value(a).Float() / number.Value(b).Float())
}

// Sub returns the difference of a and b.
func Sub(a, b cell.I) cell.I {
	x, y, ok := ints(a, b)
	if ok && !(y < 0 && x > math.MaxInt64+y) && !(y > 0 && x < math.MinInt64+y) {
		return Int64(x - y)
	}

	return Float64(number.Value(a).Float() - number.Value(b).Float())
}

// Equal returns true if c is numerically equal to the integer i.
func (i *Int) Equal(c cell.I) bool {
	return number.Is(c) && Cmp(i, c) == 0
}

// Float returns the value of the integer i as a float64.
func (i *Int) Float() float64 {
	return float64(*i)
}

// Int64 returns the value of the integer i.
func (i *Int) Int64() int64 {
	return int64(*i)
}

// Literal returns the literal representation of the integer i.
func (i *Int) Literal() string {
	return i.String()
}

// Name returns the type name for the integer i.
func (i *Int) Name() string {
	return name
}

// String returns the text of the integer i.
func (i *Int) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Equal returns true if c is numerically equal to the float f.
func (f *Float) Equal(c cell.I) bool {
	return number.Is(c) && Cmp(f, c) == 0
}

// Float returns the value of the float f.
func (f *Float) Float() float64 {
	return float64(*f)
}

// Literal returns the literal representation of the float f.
func (f *Float) Literal() string {
	return f.String()
}

// Name returns the type name for the float f.
func (f *Float) Name() string {
	return name
}

// String returns the text of the float f. It always contains a decimal
// point or an exponent so that it reads back as a float.
func (f *Float) String() string {
	v := float64(*f)

	format := byte('g')
	if a := math.Abs(v); a == 0 || (a >= 1e-4 && a < 1e16) {
		format = 'f'
	}

	s := strconv.FormatFloat(v, format, -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}

	return s
}

func ints(a, b cell.I) (int64, int64, bool) {
	x, ok := a.(*Int)
	if !ok {
		return 0, 0, false
	}

	y, ok := b.(*Int)
	if !ok {
		return 0, 0, false
	}

	return int64(*x), int64(*y), true
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var i Int

	// The integer type is a number.
	_ = number.I(&i)

	// The integer type has a literal representation.
	_ = literal.I(&i)

	// The integer type is a stringer.
	_ = common.Stringer(&i)

	var f Float

	// The float type is a number.
	_ = number.I(&f)

	// The float type has a literal representation.
	_ = literal.I(&f)

	// The float type is a stringer.
	_ = common.Stringer(&f)
}
