// Released under an MIT license. See LICENSE.

// Package builtin provides the primitive functions of tl. Each primitive
// carries its type, its effect and its implementation so that the checker
// and the evaluator agree on what a name means.
package builtin

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/michaelmacinnis/tl/internal/common/validate"
	"github.com/michaelmacinnis/tl/internal/engine/bridge"
	"github.com/michaelmacinnis/tl/internal/engine/types"
	"github.com/michaelmacinnis/tl/internal/interface/cell"
	"github.com/michaelmacinnis/tl/internal/type/boolean"
	"github.com/michaelmacinnis/tl/internal/type/num"
	"github.com/michaelmacinnis/tl/internal/type/option"
)

const name = "function"

// Machine is what a primitive needs from the evaluator.
type Machine interface {
	Apply(f cell.T, args []cell.T) (cell.T, error)
	Callback() bridge.F
}

// T (builtin) is a primitive function.
type T struct {
	arity  int
	effect types.Effect
	fn     func(m Machine, args []cell.T) (cell.T, error)
	name   string
	scheme func(s *types.Supply) types.T
}

type builtin = T

//nolint:gochecknoglobals
var table = map[string]*builtin{}

// Lookup returns the primitive called name.
func Lookup(name string) (*builtin, bool) {
	b, ok := table[name]
	return b, ok
}

// Names returns the names of all primitives in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// The builtin type is a cell.

// Equal returns true if c is the same primitive as b.
func (b *builtin) Equal(c cell.T) bool {
	other, ok := c.(*builtin)
	return ok && other == b
}

// Name returns the name of the builtin type.
func (b *builtin) Name() string {
	return name
}

// The builtin type has a literal representation.

// Literal returns the printed form of a function.
func (b *builtin) Literal() string {
	return "<" + name + ">"
}

// Methods specific to builtin.

// Call applies the primitive b to args.
func (b *builtin) Call(m Machine, args []cell.T) (cell.T, error) {
	if err := validate.Fixed(b.name, b.arity, len(args)); err != nil {
		return nil, err
	}

	return b.fn(m, args)
}

// Effect returns the effect of calling b.
func (b *builtin) Effect() types.Effect {
	return b.effect
}

// Type returns a fresh instance of b's type.
func (b *builtin) Type(s *types.Supply) types.T {
	return b.scheme(s)
}

func define(
	name string, effect types.Effect, scheme func(*types.Supply) types.T,
	fn func(Machine, []cell.T) (cell.T, error),
) {
	t := scheme(&types.Supply{})

	f, ok := t.(*types.Fun)
	if !ok {
		panic(name + " is not a function")
	}

	table[name] = &builtin{
		arity:  len(f.Params),
		effect: effect,
		fn:     fn,
		name:   name,
		scheme: scheme,
	}
}

func integer(c cell.T) *big.Int {
	return num.To(c).Int()
}

func truth(c cell.T) bool {
	return boolean.To(c).Bool()
}

var errDivisionByZero = errors.New("division by zero")

//nolint:funlen,gochecknoinits
func init() {
	arithmetic := func(name string, op func(z, x, y *big.Int) (*big.Int, error)) {
		define(name, types.Pure, func(*types.Supply) types.T {
			return types.Func(types.Int, types.Int, types.Int)
		}, func(_ Machine, args []cell.T) (cell.T, error) {
			r, err := op(&big.Int{}, integer(args[0]), integer(args[1]))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			return num.Int(r), nil
		})
	}

	arithmetic("+", func(z, x, y *big.Int) (*big.Int, error) {
		return z.Add(x, y), nil
	})
	arithmetic("-", func(z, x, y *big.Int) (*big.Int, error) {
		return z.Sub(x, y), nil
	})
	arithmetic("*", func(z, x, y *big.Int) (*big.Int, error) {
		return z.Mul(x, y), nil
	})
	arithmetic("/", func(z, x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, errDivisionByZero
		}

		return z.Quo(x, y), nil
	})
	arithmetic("%", func(z, x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, errDivisionByZero
		}

		return z.Rem(x, y), nil
	})

	relational := func(name string, op func(c int) bool) {
		define(name, types.Pure, func(*types.Supply) types.T {
			return types.Func(types.Bool, types.Int, types.Int)
		}, func(_ Machine, args []cell.T) (cell.T, error) {
			return boolean.Bool(op(integer(args[0]).Cmp(integer(args[1])))), nil
		})
	}

	relational("<", func(c int) bool { return c < 0 })
	relational(">", func(c int) bool { return c > 0 })
	relational("<=", func(c int) bool { return c <= 0 })
	relational(">=", func(c int) bool { return c >= 0 })

	equality := func(name string, want bool) {
		define(name, types.Pure, func(s *types.Supply) types.T {
			a := s.Fresh()
			return types.Func(types.Bool, a, a)
		}, func(_ Machine, args []cell.T) (cell.T, error) {
			return boolean.Bool(args[0].Equal(args[1]) == want), nil
		})
	}

	equality("=", true)
	equality("!=", false)

	logical := func(name string, op func(x, y bool) bool) {
		define(name, types.Pure, func(*types.Supply) types.T {
			return types.Func(types.Bool, types.Bool, types.Bool)
		}, func(_ Machine, args []cell.T) (cell.T, error) {
			return boolean.Bool(op(truth(args[0]), truth(args[1]))), nil
		})
	}

	logical("and", func(x, y bool) bool { return x && y })
	logical("or", func(x, y bool) bool { return x || y })

	define("not", types.Pure, func(*types.Supply) types.T {
		return types.Func(types.Bool, types.Bool)
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		return boolean.Bool(!truth(args[0])), nil
	})

	define("Some", types.Pure, func(s *types.Supply) types.T {
		a := s.Fresh()
		return types.Func(types.Option(a), a)
	}, func(_ Machine, args []cell.T) (cell.T, error) {
		return option.Some(args[0]), nil
	})

	define(bridge.Name, types.IO, func(*types.Supply) types.T {
		return types.Func(types.Int, types.Int, types.Int, types.Int)
	}, func(m Machine, args []cell.T) (cell.T, error) {
		n, err := bridge.Call(m.Callback(), integer(args[0]), integer(args[1]), integer(args[2]))
		if err != nil {
			return nil, err
		}

		return num.Int(n), nil
	})
}
