// Released under an MIT license. See LICENSE.

// Package errpos provides the error type used for faults in user-authored
// text. The location is stored as found and only made one-based when the
// error is printed.
package errpos

import (
	"fmt"

	"github.com/michaelmacinnis/tl/internal/type/loc"
)

// T (errpos) pairs a message with the location that caused it.
type T struct {
	message string
	source  loc.T
}

type errpos = T

// New creates a new errpos at source.
func New(source loc.T, format string, args ...interface{}) *errpos {
	return &errpos{
		message: fmt.Sprintf(format, args...),
		source:  source,
	}
}

// Error returns the printed form "line:column: message".
func (e *errpos) Error() string {
	return e.source.String() + ": " + e.message
}

// Source returns the zero-based location of the errpos e.
func (e *errpos) Source() loc.T {
	return e.source
}
