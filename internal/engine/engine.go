// Released under an MIT license. See LICENSE.

// Package engine loads tl programs and evaluates interactive lines
// against them.
package engine

import (
	"sort"

	"github.com/michaelmacinnis/tl/internal/engine/bridge"
	"github.com/michaelmacinnis/tl/internal/engine/builtin"
	"github.com/michaelmacinnis/tl/internal/engine/check"
	"github.com/michaelmacinnis/tl/internal/engine/eval"
	"github.com/michaelmacinnis/tl/internal/interface/literal"
	"github.com/michaelmacinnis/tl/internal/reader"
	"github.com/michaelmacinnis/tl/internal/type/outcome"
)

// Context is a loaded and checked program. It does not change after Load
// returns.
type Context struct {
	env     *check.Env
	machine *eval.Machine
}

// Option configures a Context when it is loaded.
type Option func(*config)

type config struct {
	callback bridge.F
}

// WithCallback registers f as the function invoked by call-host.
func WithCallback(f bridge.F) Option {
	return func(c *config) {
		c.callback = f
	}
}

// Load parses and type checks source. If either step fails the error
// is an *errpos.T and no Context is returned.
func Load(source string, opts ...Option) (*Context, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	es, err := reader.Read(source)
	if err != nil {
		return nil, err
	}

	env, err := check.Program(es)
	if err != nil {
		return nil, err
	}

	return &Context{
		env:     env,
		machine: eval.New(env.Defs(), c.callback),
	}, nil
}

// Eval evaluates each expression on line. A parse or type error for the
// line is returned as an *errpos.T and nothing is evaluated. Otherwise
// there is one outcome per expression, in order.
func (c *Context) Eval(line string) ([]outcome.T, error) {
	es, err := reader.Read(line)
	if err != nil {
		return nil, err
	}

	err = check.Line(c.env, es)
	if err != nil {
		return nil, err
	}

	results := make([]outcome.T, 0, len(es))

	for _, e := range es {
		v, err := c.machine.Run(e)
		if err != nil {
			results = append(results, outcome.Failure(err.Error()))

			continue
		}

		results = append(results, outcome.Success(literal.String(v)))
	}

	return results, nil
}

// Names returns the names a line can refer to, in sorted order.
func (c *Context) Names() []string {
	names := append(builtin.Names(), c.env.Exported()...)
	names = append(names, "if", "lambda", "let", "match", "None")

	sort.Strings(names)

	return names
}
