// Released under an MIT license. See LICENSE.

// Package num provides the arbitrary-precision integer type.
package num

import (
	"math/big"

	"github.com/michaelmacinnis/tl/internal/interface/cell"
)

const name = "Int"

// T (num) wraps Go's big.Int type. A num is never modified after it
// is created.
type T big.Int

// New creates a new num from a string. The base is taken from the
// prefix: 0x, 0o or 0b, decimal otherwise.
func New(s string) (*T, bool) {
	v := &big.Int{}

	if _, ok := v.SetString(s, 0); !ok {
		return nil, false
	}

	return Int(v), true
}

// Int wraps the *big.Int i as a num.
func Int(i *big.Int) *T {
	return (*T)(i)
}

// Int64 creates a num from v.
func Int64(v int64) *T {
	return Int(big.NewInt(v))
}

// The num type is a cell.

// Equal returns true if c is the same number as the num n.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n.Int().Cmp(To(c).Int()) == 0
}

// Name returns the type name for the num n.
func (n *T) Name() string {
	return name
}

// The num type has a literal representation.

// Literal returns the literal representation of the num n.
func (n *T) Literal() string {
	return n.Int().String()
}

// Methods specific to num.

// Int returns the value of n as a *big.Int. It must not be modified.
func (n *T) Int() *big.Int {
	return (*big.Int)(n)
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not an " + name)
}
