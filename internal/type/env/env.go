// Released under an MIT license. See LICENSE.

// Package env provides the lexical environment type.
package env

import (
	"github.com/michaelmacinnis/tl/internal/interface/cell"
)

// T (env) maps names to values and falls back to an enclosing env.
type T struct {
	previous *T
	names    map[string]cell.T
}

// New creates a new env enclosed by previous, which may be nil.
func New(previous *T) *T {
	return &T{
		previous: previous,
		names:    map[string]cell.T{},
	}
}

// Define associates the name k with the cell v in the env e.
func (e *T) Define(k string, v cell.T) {
	e.names[k] = v
}

// Enclosing returns the env that encloses e.
func (e *T) Enclosing() *T {
	return e.previous
}

// Lookup retrieves the cell associated with the name k in the env e or
// any env that encloses it.
func (e *T) Lookup(k string) (cell.T, bool) {
	for ; e != nil; e = e.previous {
		if v, ok := e.names[k]; ok {
			return v, true
		}
	}

	return nil, false
}
