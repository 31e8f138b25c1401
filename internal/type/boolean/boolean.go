// Released under an MIT license. See LICENSE.

// Package boolean provides the boolean type.
package boolean

import (
	"github.com/michaelmacinnis/tl/internal/interface/cell"
)

const name = "Bool"

// T (boolean) wraps Go's bool type.
type T bool

//nolint:gochecknoglobals
var (
	// True is the only true value.
	True = New(true)

	// False is the only false value.
	False = New(false)
)

// New creates a new boolean. Use True or False instead.
func New(v bool) *T {
	b := T(v)
	return &b
}

// Bool returns True or False for v.
func Bool(v bool) cell.T {
	if v {
		return True
	}

	return False
}

// The boolean type is a cell.

// Equal returns true if c is a boolean with the same value as b.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && *b == *To(c)
}

// Name returns the name of the boolean type.
func (b *T) Name() string {
	return name
}

// The boolean type has a truth value.

// Bool returns the value of b.
func (b *T) Bool() bool {
	return bool(*b)
}

// The boolean type has a literal representation.

// Literal returns the literal representation of the boolean b.
func (b *T) Literal() string {
	if *b {
		return "true"
	}

	return "false"
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}
