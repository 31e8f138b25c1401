// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/tl/internal/interface/cell"
	"github.com/michaelmacinnis/tl/internal/reader/expr"
	"github.com/michaelmacinnis/tl/internal/type/env"
)

const name = "function"

// Closure is a user-defined function and the env it was created in.
type Closure struct {
	Body   expr.T
	Env    *env.T
	Params []string
}

type closure = Closure

// The closure type is a cell.

// Equal returns true if c is the same closure as f.
func (f *closure) Equal(c cell.T) bool {
	other, ok := c.(*closure)
	return ok && other == f
}

// Name returns the name of the closure type.
func (f *closure) Name() string {
	return name
}

// The closure type has a literal representation.

// Literal returns the printed form of a function.
func (f *closure) Literal() string {
	return "<" + name + ">"
}
