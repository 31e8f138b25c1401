// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type used for lists.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/tl/internal/interface/cell"
	"github.com/michaelmacinnis/tl/internal/interface/literal"
)

const name = "List"

var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.T //nolint:gochecknoglobals
)

// T (pair) is a cons cell. Pairs are never modified after they are created.
type T struct {
	car cell.T
	cdr cell.T
}

// The pair type is a cell.

// Equal returns true if c is a list with elements that are equal to p's.
func (p *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	for l, r := cell.T(p), c; ; l, r = Cdr(l), Cdr(r) {
		if l == Null || r == Null {
			return l == r
		}

		if !Car(l).Equal(Car(r)) {
			return false
		}
	}
}

// Name returns the name for a pair type.
func (p *T) Name() string {
	return name
}

// The pair type has a literal representation.

// Literal returns the quoted literal representation of the list p.
func (p *T) Literal() string {
	return "'" + p.body()
}

func (p *T) body() string {
	var b strings.Builder

	b.WriteByte('(')

	for l := cell.T(p); l != Null; l = Cdr(l) {
		if l != cell.T(p) {
			b.WriteByte(' ')
		}

		head := Car(l)
		if Is(head) {
			b.WriteString(To(head).body())
		} else {
			b.WriteString(literal.String(head))
		}
	}

	b.WriteByte(')')

	return b.String()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.T) cell.T {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.T) cell.T {
	return To(c).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.T) cell.T {
	return &T{car: h, cdr: t}
}

// Is returns true if c is a pair, including Null.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// IsNull returns true if c is the Null cell.
func IsNull(c cell.T) bool {
	return c == Null
}

// Length returns the number of elements in the list c.
func Length(c cell.T) int {
	n := 0
	for ; c != Null; c = Cdr(c) {
		n++
	}

	return n
}

// List creates a list from cs.
func List(cs ...cell.T) cell.T {
	l := Null
	for i := len(cs) - 1; i >= 0; i-- {
		l = Cons(cs[i], l)
	}

	return l
}

// Slice returns the elements of the list c.
func Slice(c cell.T) []cell.T {
	cs := []cell.T{}
	for ; c != Null; c = Cdr(c) {
		cs = append(cs, Car(c))
	}

	return cs
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name + " cell")
}

//nolint:gochecknoinits
func init() {
	pair := &T{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.T(pair)
}
