// Released under an MIT license. See LICENSE.

// Package eval provides the tree-walking evaluator for checked tl code.
package eval

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/tl/internal/common/validate"
	"github.com/michaelmacinnis/tl/internal/engine/bridge"
	"github.com/michaelmacinnis/tl/internal/engine/builtin"
	"github.com/michaelmacinnis/tl/internal/engine/check"
	"github.com/michaelmacinnis/tl/internal/interface/cell"
	"github.com/michaelmacinnis/tl/internal/reader/expr"
	"github.com/michaelmacinnis/tl/internal/type/boolean"
	"github.com/michaelmacinnis/tl/internal/type/env"
	"github.com/michaelmacinnis/tl/internal/type/num"
	"github.com/michaelmacinnis/tl/internal/type/option"
	"github.com/michaelmacinnis/tl/internal/type/pair"
	"github.com/michaelmacinnis/tl/internal/type/str"
)

// MaxDepth is the deepest chain of nested calls allowed.
const MaxDepth = 10000

// Errors returned while evaluating.
var (
	ErrDepth        = errors.New("maximum call depth exceeded")
	ErrPatternMatch = errors.New("pattern match failed")
)

// Machine evaluates expressions against the definitions of a program.
// A Machine is not safe for concurrent use.
type Machine struct {
	callback bridge.F
	depth    int
	global   *env.T
}

// New creates a machine with defs bound in its global env.
func New(defs []*check.Def, callback bridge.F) *Machine {
	global := env.New(nil)

	for _, d := range defs {
		global.Define(d.Name, &closure{
			Body:   d.Body,
			Env:    global,
			Params: d.Params,
		})
	}

	return &Machine{
		callback: callback,
		global:   global,
	}
}

// Run evaluates e. A panic raised while evaluating e is returned as an
// error.
func (m *Machine) Run(e expr.T) (c cell.T, err error) {
	m.depth = 0

	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("%v", r)
		}
	}()

	return m.eval(e, m.global)
}

// Apply calls f with args.
func (m *Machine) Apply(f cell.T, args []cell.T) (cell.T, error) {
	switch f := f.(type) {
	case *builtin.T:
		return f.Call(m, args)
	case *closure:
		if err := validate.Fixed(name, len(f.Params), len(args)); err != nil {
			return nil, err
		}

		if m.depth >= MaxDepth {
			return nil, ErrDepth
		}

		m.depth++
		defer func() { m.depth-- }()

		e := env.New(f.Env)
		for i, p := range f.Params {
			e.Define(p, args[i])
		}

		return m.eval(f.Body, e)
	}

	return nil, fmt.Errorf("cannot call %s", f.Name())
}

// Callback returns the host callback, if any.
func (m *Machine) Callback() bridge.F {
	return m.callback
}

func (m *Machine) eval(e expr.T, s *env.T) (cell.T, error) {
	switch e := e.(type) {
	case *expr.Bool:
		return boolean.Bool(e.Value), nil
	case *expr.Int:
		return num.Int(e.Value), nil
	case *expr.List:
		return m.list(e, s)
	case *expr.Quote:
		return quoted(e.Item), nil
	case *expr.Str:
		return str.New(e.Value), nil
	case *expr.Sym:
		return lookup(e.Name, s)
	}

	return nil, fmt.Errorf("unexpected form %s", e)
}

func (m *Machine) list(e *expr.List, s *env.T) (cell.T, error) {
	name, _ := expr.Head(e)

	switch name {
	case "if":
		c, err := m.eval(e.Items[1], s)
		if err != nil {
			return nil, err
		}

		if boolean.To(c).Bool() {
			return m.eval(e.Items[2], s)
		}

		return m.eval(e.Items[3], s)
	case "lambda":
		params := []string{}
		for _, p := range e.Items[1].(*expr.List).Items {
			params = append(params, p.(*expr.Sym).Name)
		}

		return &closure{Body: e.Items[2], Env: s, Params: params}, nil
	case "let":
		for _, b := range e.Items[1].(*expr.List).Items {
			items := b.(*expr.List).Items

			v, err := m.eval(items[1], s)
			if err != nil {
				return nil, err
			}

			s = env.New(s)
			s.Define(items[0].(*expr.Sym).Name, v)
		}

		return m.eval(e.Items[2], s)
	case "match":
		return m.match(e, s)
	}

	f, err := m.eval(e.Items[0], s)
	if err != nil {
		return nil, err
	}

	args := make([]cell.T, len(e.Items)-1)
	for i, item := range e.Items[1:] {
		args[i], err = m.eval(item, s)
		if err != nil {
			return nil, err
		}
	}

	return m.Apply(f, args)
}

func (m *Machine) match(e *expr.List, s *env.T) (cell.T, error) {
	v, err := m.eval(e.Items[1], s)
	if err != nil {
		return nil, err
	}

	for _, item := range e.Items[2:] {
		k := item.(*expr.List)

		inner := env.New(s)
		if matches(k.Items[0], v, inner) {
			return m.eval(k.Items[1], inner)
		}
	}

	return nil, ErrPatternMatch
}

func lookup(k string, s *env.T) (cell.T, error) {
	if k == "None" {
		return option.None, nil
	}

	if v, ok := s.Lookup(k); ok {
		return v, nil
	}

	if b, ok := builtin.Lookup(k); ok {
		return b, nil
	}

	return nil, fmt.Errorf("undefined symbol %s", k)
}

// matches binds the variables in p, in s, if v has the shape of p.
func matches(p expr.T, v cell.T, s *env.T) bool {
	switch p := p.(type) {
	case *expr.Bool:
		return v.Equal(boolean.Bool(p.Value))
	case *expr.Int:
		return v.Equal(num.Int(p.Value))
	case *expr.Str:
		return v.Equal(str.New(p.Value))
	case *expr.Quote:
		return pair.IsNull(v)
	case *expr.Sym:
		switch p.Name {
		case "_":
			return true
		case "None":
			return v.Equal(option.None)
		}

		s.Define(p.Name, v)

		return true
	case *expr.List:
		name, _ := expr.Head(p)

		switch name {
		case "Some":
			o := option.To(v)

			inner, ok := o.Value()
			if !ok {
				return false
			}

			return matches(p.Items[1], inner, s)
		case "Cons":
			if pair.IsNull(v) {
				return false
			}

			return matches(p.Items[1], pair.Car(v), s) && matches(p.Items[2], pair.Cdr(v), s)
		}
	}

	return false
}

func quoted(e expr.T) cell.T {
	switch e := e.(type) {
	case *expr.Bool:
		return boolean.Bool(e.Value)
	case *expr.Int:
		return num.Int(e.Value)
	case *expr.Str:
		return str.New(e.Value)
	case *expr.Quote:
		return quoted(e.Item)
	case *expr.List:
		elems := make([]cell.T, len(e.Items))
		for i, item := range e.Items {
			elems[i] = quoted(item)
		}

		return pair.List(elems...)
	}

	panic(fmt.Sprintf("cannot quote %s", e))
}
