// Released under an MIT license. See LICENSE.

// Package expr provides the parsed form of tl source text.
package expr

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/tl/internal/type/loc"
)

// T (expr) is one parsed form. Every form knows where it came from.
type T interface {
	Source() loc.T
	String() string
}

// Bool is a boolean literal.
type Bool struct {
	At    loc.T
	Value bool
}

// Int is an integer literal.
type Int struct {
	At    loc.T
	Value *big.Int
}

// List is a parenthesized sequence of forms.
type List struct {
	At    loc.T
	Items []T
}

// Quote is a quoted form.
type Quote struct {
	At   loc.T
	Item T
}

// Str is a string literal.
type Str struct {
	At    loc.T
	Value string
}

// Sym is a symbol.
type Sym struct {
	At   loc.T
	Name string
}

// Source returns the location of the literal.
func (e *Bool) Source() loc.T { return e.At }

// Source returns the location of the literal.
func (e *Int) Source() loc.T { return e.At }

// Source returns the location of the opening parenthesis.
func (e *List) Source() loc.T { return e.At }

// Source returns the location of the quote.
func (e *Quote) Source() loc.T { return e.At }

// Source returns the location of the literal.
func (e *Str) Source() loc.T { return e.At }

// Source returns the location of the symbol.
func (e *Sym) Source() loc.T { return e.At }

func (e *Bool) String() string {
	return strconv.FormatBool(e.Value)
}

func (e *Int) String() string {
	return e.Value.String()
}

func (e *List) String() string {
	s := make([]string, len(e.Items))
	for i, item := range e.Items {
		s[i] = item.String()
	}

	return "(" + strings.Join(s, " ") + ")"
}

func (e *Quote) String() string {
	return "'" + e.Item.String()
}

func (e *Str) String() string {
	return strconv.Quote(e.Value)
}

func (e *Sym) String() string {
	return e.Name
}

// Head returns the name of the symbol at the head of the list e, if any.
func Head(e T) (string, bool) {
	l, ok := e.(*List)
	if !ok || len(l.Items) == 0 {
		return "", false
	}

	s, ok := l.Items[0].(*Sym)
	if !ok {
		return "", false
	}

	return s.Name, true
}
