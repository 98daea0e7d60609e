// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all runtime values.
package cell

// I (cell) is the basic unit of storage. Numbers, symbols, booleans, pairs
// and procedures are all cells, as are parsed expressions.
type I interface {
	Equal(c I) bool
	Name() string
}
