// Released under an MIT license. See LICENSE.

// Package option provides the optional value type.
package option

import (
	"github.com/michaelmacinnis/tl/internal/interface/cell"
	"github.com/michaelmacinnis/tl/internal/interface/literal"
)

const name = "Option"

// T (option) holds either one value (Some) or nothing (None).
type T struct {
	value cell.T
}

// None is the empty option.
var None = &T{} //nolint:gochecknoglobals

// Some wraps v in an option.
func Some(v cell.T) *T {
	return &T{value: v}
}

// The option type is a cell.

// Equal returns true if c is an option holding a value equal to o's.
func (o *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	other := To(c)
	if o.value == nil || other.value == nil {
		return o.value == nil && other.value == nil
	}

	return o.value.Equal(other.value)
}

// Name returns the name of the option type.
func (o *T) Name() string {
	return name
}

// The option type has a literal representation.

// Literal returns "None" or "(Some v)".
func (o *T) Literal() string {
	if o.value == nil {
		return "None"
	}

	return "(Some " + literal.String(o.value) + ")"
}

// Methods specific to option.

// Value returns the wrapped value and true, or nil and false for None.
func (o *T) Value() (cell.T, bool) {
	return o.value, o.value != nil
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if o, ok := c.(*T); ok {
		return o
	}

	panic("not an " + name)
}
