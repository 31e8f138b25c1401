// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all runtime values.
package cell

// T (cell) is the basic unit of storage in the evaluator.
type T interface {
	Equal(c T) bool
	Name() string
}
