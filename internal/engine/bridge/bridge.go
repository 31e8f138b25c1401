// Released under an MIT license. See LICENSE.

// Package bridge lets a native Go function be called from tl code.
//
// The function is registered when a context is created and is reachable
// from tl under the name call-host. Calls are synchronous. A function that
// returns no value fails the calling expression; it never unwinds the
// evaluator.
package bridge

import (
	"errors"
	"fmt"
	"math/big"
)

// Name is the name of the primitive that invokes the callback.
const Name = "call-host"

// F is a native callback. It returns false when it has no result for
// the given arguments.
type F func(x, y, z *big.Int) (*big.Int, bool)

// Errors returned by Call.
var (
	ErrNoCallback = errors.New(Name + ": no callback registered")
	ErrNoValue    = errors.New(Name + ": callback returned no value")
)

// Call invokes f with copies of x, y and z. The result is copied so that
// f cannot keep a reference to a value owned by the evaluator.
func Call(f F, x, y, z *big.Int) (n *big.Int, err error) {
	if f == nil {
		return nil, ErrNoCallback
	}

	defer func() {
		if r := recover(); r != nil {
			n, err = nil, fmt.Errorf("%s: callback failed: %v", Name, r)
		}
	}()

	r, ok := f(clone(x), clone(y), clone(z))
	if !ok || r == nil {
		return nil, ErrNoValue
	}

	return clone(r), nil
}

func clone(i *big.Int) *big.Int {
	return new(big.Int).Set(i)
}
