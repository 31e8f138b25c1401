// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of tokens and
// expressions.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location. Both fields are zero-based.
type T struct {
	Char int // Character position (column).
	Line int // Line number (row).
}

type loc = T

// String returns the one-based "line:column" form of the location l.
func (l *loc) String() string {
	return strconv.Itoa(l.Line+1) + ":" + strconv.Itoa(l.Char+1)
}
