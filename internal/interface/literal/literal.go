// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values that can be printed as
// literals.
package literal

import (
	"github.com/michaelmacinnis/tl/internal/interface/cell"
)

// T (literal) is any type that can be expressed as a literal.
type T interface {
	Literal() string
}

// String returns the literal string representation for a cell.
// Cells without one are printed as their type name in angle brackets.
func String(c cell.T) string {
	if c == nil {
		return "<nil>"
	}

	l, ok := c.(T)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}
