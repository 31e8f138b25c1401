// Released under an MIT license. See LICENSE.

package builtin

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/tl/internal/engine/types"
	"github.com/michaelmacinnis/tl/internal/interface/cell"
	"github.com/michaelmacinnis/tl/internal/type/boolean"
	"github.com/michaelmacinnis/tl/internal/type/num"
	"github.com/michaelmacinnis/tl/internal/type/pair"
)

var errEmptyList = errors.New("empty list")

//nolint:funlen,gochecknoinits
func init() {
	define("cons", types.Pure, func(s *types.Supply) types.T {
		a := s.Fresh()
		return types.Func(types.List(a), a, types.List(a))
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		return pair.Cons(args[0], args[1]), nil
	})

	define("car", types.Pure, func(s *types.Supply) types.T {
		a := s.Fresh()
		return types.Func(a, types.List(a))
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		if pair.IsNull(args[0]) {
			return nil, fmt.Errorf("car: %w", errEmptyList)
		}

		return pair.Car(args[0]), nil
	})

	define("cdr", types.Pure, func(s *types.Supply) types.T {
		a := s.Fresh()
		return types.Func(types.List(a), types.List(a))
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		if pair.IsNull(args[0]) {
			return nil, fmt.Errorf("cdr: %w", errEmptyList)
		}

		return pair.Cdr(args[0]), nil
	})

	define("null?", types.Pure, func(s *types.Supply) types.T {
		return types.Func(types.Bool, types.List(s.Fresh()))
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		return boolean.Bool(pair.IsNull(args[0])), nil
	})

	define("length", types.Pure, func(s *types.Supply) types.T {
		return types.Func(types.Int, types.List(s.Fresh()))
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		return num.Int64(int64(pair.Length(args[0]))), nil
	})

	define("reverse", types.Pure, func(s *types.Supply) types.T {
		a := s.Fresh()
		return types.Func(types.List(a), types.List(a))
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		r := pair.Null
		for l := args[0]; !pair.IsNull(l); l = pair.Cdr(l) {
			r = pair.Cons(pair.Car(l), r)
		}

		return r, nil
	})

	define("map", types.Pure, func(s *types.Supply) types.T {
		a, b := s.Fresh(), s.Fresh()
		return types.Func(types.List(b), types.Func(b, a), types.List(a))
	}, func(m Machine, args []cell.T) (cell.T, error) {
		elems := pair.Slice(args[1])
		for i, x := range elems {
			y, err := m.Apply(args[0], []cell.T{x})
			if err != nil {
				return nil, err
			}

			elems[i] = y
		}

		return pair.List(elems...), nil
	})

	define("filter", types.Pure, func(s *types.Supply) types.T {
		a := s.Fresh()
		return types.Func(types.List(a), types.Func(types.Bool, a), types.List(a))
	}, func(m Machine, args []cell.T) (cell.T, error) {
		kept := []cell.T{}
		for _, x := range pair.Slice(args[1]) {
			ok, err := m.Apply(args[0], []cell.T{x})
			if err != nil {
				return nil, err
			}

			if truth(ok) {
				kept = append(kept, x)
			}
		}

		return pair.List(kept...), nil
	})

	define("fold", types.Pure, func(s *types.Supply) types.T {
		a, b := s.Fresh(), s.Fresh()
		return types.Func(b, types.Func(b, a, b), b, types.List(a))
	}, func(m Machine, args []cell.T) (cell.T, error) {
		acc := args[1]
		for _, x := range pair.Slice(args[2]) {
			var err error

			acc, err = m.Apply(args[0], []cell.T{x, acc})
			if err != nil {
				return nil, err
			}
		}

		return acc, nil
	})
}
