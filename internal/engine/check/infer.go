// Released under an MIT license. See LICENSE.

package check

import (
	"unicode"

	"github.com/michaelmacinnis/tl/internal/common/validate"
	"github.com/michaelmacinnis/tl/internal/engine/builtin"
	"github.com/michaelmacinnis/tl/internal/engine/types"
	"github.com/michaelmacinnis/tl/internal/reader/expr"
	"github.com/michaelmacinnis/tl/internal/type/errpos"
)

func (c *checker) infer(e expr.T, s *scope, pure bool) (types.T, error) {
	switch e := e.(type) {
	case *expr.Bool:
		return types.Bool, nil
	case *expr.Int:
		return types.Int, nil
	case *expr.List:
		return c.list(e, s, pure)
	case *expr.Quote:
		return c.quoted(e.Item)
	case *expr.Str:
		return types.String, nil
	case *expr.Sym:
		return c.symbol(e, s, false)
	}

	return nil, errpos.New(e.Source(), "unexpected form %s", e)
}

func (c *checker) list(e *expr.List, s *scope, pure bool) (types.T, error) {
	if len(e.Items) == 0 {
		return nil, errpos.New(e.Source(), "empty application")
	}

	if name, ok := expr.Head(e); ok {
		if _, local := s.lookup(name); !local {
			switch name {
			case "defun", "export":
				return nil, errpos.New(e.Source(), "%s is only allowed at the top level of a program", name)
			case "if":
				return c.conditional(e, s, pure)
			case "lambda":
				return c.lambda(e, s)
			case "let":
				return c.let(e, s, pure)
			case "match":
				return c.match(e, s, pure)
			}
		}
	}

	return c.apply(e, s, pure)
}

func (c *checker) apply(e *expr.List, s *scope, pure bool) (types.T, error) {
	head := e.Items[0]
	args := e.Items[1:]

	var (
		err  error
		name = "function"
		t    types.T
	)

	if sym, ok := head.(*expr.Sym); ok {
		name = sym.Name

		if pure && c.effect(sym.Name, s) == types.IO {
			return nil, errpos.New(sym.Source(), "cannot call IO function %s from a pure context", sym.Name)
		}

		t, err = c.symbol(sym, s, true)
	} else {
		t, err = c.infer(head, s, pure)
	}

	if err != nil {
		return nil, err
	}

	actual := make([]types.T, len(args))
	for i, arg := range args {
		actual[i], err = c.infer(arg, s, pure)
		if err != nil {
			return nil, err
		}
	}

	switch f := c.subst.Apply(t).(type) {
	case *types.Fun:
		if err := validate.Fixed(name, len(f.Params), len(args)); err != nil {
			return nil, errpos.New(e.Source(), "%v", err)
		}

		for i, arg := range args {
			if err := c.unify(arg.Source(), f.Params[i], actual[i]); err != nil {
				return nil, err
			}
		}

		return c.subst.Apply(f.Result), nil
	case *types.Con:
		return nil, errpos.New(head.Source(), "cannot call a value of type %s", f)
	}

	result := c.supply.Fresh()
	if err := c.unify(head.Source(), types.Func(result, actual...), t); err != nil {
		return nil, err
	}

	return c.subst.Apply(result), nil
}

// (if condition consequent alternative)
func (c *checker) conditional(e *expr.List, s *scope, pure bool) (types.T, error) {
	if len(e.Items) != 4 {
		return nil, errpos.New(e.Source(), "%v", validate.Fixed("if", 3, len(e.Items)-1))
	}

	cond, err := c.infer(e.Items[1], s, pure)
	if err != nil {
		return nil, err
	}

	if err := c.unify(e.Items[1].Source(), types.Bool, cond); err != nil {
		return nil, err
	}

	consequent, err := c.infer(e.Items[2], s, pure)
	if err != nil {
		return nil, err
	}

	alternative, err := c.infer(e.Items[3], s, pure)
	if err != nil {
		return nil, err
	}

	if err := c.unify(e.Items[3].Source(), consequent, alternative); err != nil {
		return nil, err
	}

	return c.subst.Apply(consequent), nil
}

// (lambda (params...) body)
func (c *checker) lambda(e *expr.List, s *scope) (types.T, error) {
	if len(e.Items) != 3 {
		return nil, errpos.New(e.Source(), "lambda: expected parameters and a body")
	}

	params, err := parameters("lambda", e.Items[1])
	if err != nil {
		return nil, err
	}

	f := &types.Fun{}
	for _, p := range params {
		v := c.supply.Fresh()
		f.Params = append(f.Params, v)
		s = s.bind(p, v)
	}

	// Lambdas are always pure.
	f.Result, err = c.infer(e.Items[2], s, true)
	if err != nil {
		return nil, err
	}

	return c.subst.Apply(f), nil
}

// (let ((name value)...) body)
func (c *checker) let(e *expr.List, s *scope, pure bool) (types.T, error) {
	if len(e.Items) != 3 {
		return nil, errpos.New(e.Source(), "let: expected bindings and a body")
	}

	bindings, ok := e.Items[1].(*expr.List)
	if !ok {
		return nil, errpos.New(e.Items[1].Source(), "let: expected a list of bindings")
	}

	for _, b := range bindings.Items {
		name, value, err := binding(b)
		if err != nil {
			return nil, err
		}

		t, err := c.infer(value, s, pure)
		if err != nil {
			return nil, err
		}

		s = s.bind(name, t)
	}

	return c.infer(e.Items[2], s, pure)
}

// (match value (pattern body)...)
func (c *checker) match(e *expr.List, s *scope, pure bool) (types.T, error) {
	if len(e.Items) < 3 {
		return nil, errpos.New(e.Source(), "match: expected a value and at least one case")
	}

	value, err := c.infer(e.Items[1], s, pure)
	if err != nil {
		return nil, err
	}

	result := types.T(c.supply.Fresh())

	for _, item := range e.Items[2:] {
		k, ok := item.(*expr.List)
		if !ok || len(k.Items) != 2 {
			return nil, errpos.New(item.Source(), "match: expected (pattern body)")
		}

		t, inner, err := c.pattern(k.Items[0], s)
		if err != nil {
			return nil, err
		}

		if err := c.unify(k.Items[0].Source(), value, t); err != nil {
			return nil, err
		}

		body, err := c.infer(k.Items[1], inner, pure)
		if err != nil {
			return nil, err
		}

		if err := c.unify(k.Items[1].Source(), result, body); err != nil {
			return nil, err
		}
	}

	return c.subst.Apply(result), nil
}

func (c *checker) pattern(p expr.T, s *scope) (types.T, *scope, error) {
	switch p := p.(type) {
	case *expr.Bool:
		return types.Bool, s, nil
	case *expr.Int:
		return types.Int, s, nil
	case *expr.Str:
		return types.String, s, nil
	case *expr.Sym:
		switch p.Name {
		case "_":
			return c.supply.Fresh(), s, nil
		case "None":
			return types.Option(c.supply.Fresh()), s, nil
		}

		if reserved[p.Name] {
			break
		}

		v := c.supply.Fresh()

		return v, s.bind(p.Name, v), nil
	case *expr.Quote:
		if l, ok := p.Item.(*expr.List); ok && len(l.Items) == 0 {
			return types.List(c.supply.Fresh()), s, nil
		}
	case *expr.List:
		name, _ := expr.Head(p)

		switch {
		case name == "Some" && len(p.Items) == 2:
			t, s, err := c.pattern(p.Items[1], s)
			if err != nil {
				return nil, nil, err
			}

			return types.Option(t), s, nil
		case name == "Cons" && len(p.Items) == 3:
			h, s, err := c.pattern(p.Items[1], s)
			if err != nil {
				return nil, nil, err
			}

			t, s, err := c.pattern(p.Items[2], s)
			if err != nil {
				return nil, nil, err
			}

			if err := c.unify(p.Items[2].Source(), types.List(h), t); err != nil {
				return nil, nil, err
			}

			return c.subst.Apply(t), s, nil
		}
	}

	return nil, nil, errpos.New(p.Source(), "unsupported pattern %s", p)
}

func (c *checker) quoted(e expr.T) (types.T, error) {
	switch e := e.(type) {
	case *expr.Bool:
		return types.Bool, nil
	case *expr.Int:
		return types.Int, nil
	case *expr.Str:
		return types.String, nil
	case *expr.Quote:
		return c.quoted(e.Item)
	case *expr.List:
		elem := types.T(c.supply.Fresh())

		for _, item := range e.Items {
			t, err := c.quoted(item)
			if err != nil {
				return nil, err
			}

			if err := c.unify(item.Source(), elem, t); err != nil {
				return nil, err
			}
		}

		return types.List(c.subst.Apply(elem)), nil
	}

	return nil, errpos.New(e.Source(), "cannot quote %s", e)
}

func (c *checker) symbol(e *expr.Sym, s *scope, call bool) (types.T, error) {
	if e.Name == "None" {
		return types.Option(c.supply.Fresh()), nil
	}

	if t, ok := s.lookup(e.Name); ok {
		return t, nil
	}

	if !call && c.effect(e.Name, s) == types.IO {
		return nil, errpos.New(e.Source(), "IO function %s cannot be used as a value", e.Name)
	}

	if d, ok := c.defs[e.Name]; ok {
		if c.program && d.annotation == nil {
			return d.mono, nil
		}

		return c.supply.Instantiate(d.Scheme), nil
	}

	if b, ok := builtin.Lookup(e.Name); ok {
		return b.Type(c.supply), nil
	}

	return nil, errpos.New(e.Source(), "undefined symbol %s", e.Name)
}

// effect returns the effect of calling the function called name.
func (c *checker) effect(name string, s *scope) types.Effect {
	if _, ok := s.lookup(name); ok {
		return types.Pure
	}

	if d, ok := c.defs[name]; ok {
		return d.Effect
	}

	if b, ok := builtin.Lookup(name); ok {
		return b.Effect()
	}

	return types.Pure
}

// annotation parses (Pure|IO (-> (params...) result)) for d. When rigid
// is true, type variables become opaque constants.
func (c *checker) annotation(d *Def, rigid bool) (types.Effect, *types.Fun, error) {
	a := d.annotation

	l, ok := a.(*expr.List)
	if !ok || len(l.Items) != 2 {
		return 0, nil, errpos.New(a.Source(), "%s: expected (Pure type) or (IO type)", d.Name)
	}

	var effect types.Effect

	switch name, _ := expr.Head(l); name {
	case "Pure":
		effect = types.Pure
	case "IO":
		effect = types.IO
	default:
		return 0, nil, errpos.New(l.Items[0].Source(), "%s: unknown effect %s", d.Name, l.Items[0])
	}

	t, err := c.typ(l.Items[1], map[string]types.T{}, rigid)
	if err != nil {
		return 0, nil, err
	}

	f, ok := t.(*types.Fun)
	if !ok {
		return 0, nil, errpos.New(l.Items[1].Source(), "%s: expected a function type", d.Name)
	}

	if len(f.Params) != len(d.Params) {
		return 0, nil, errpos.New(
			l.Items[1].Source(), "%s: type has %s, definition has %d",
			d.Name, validate.Count(len(f.Params), "argument", "s"), len(d.Params),
		)
	}

	return effect, f, nil
}

func (c *checker) typ(e expr.T, vars map[string]types.T, rigid bool) (types.T, error) {
	switch e := e.(type) {
	case *expr.Sym:
		switch e.Name {
		case "Bool":
			return types.Bool, nil
		case "Int":
			return types.Int, nil
		case "String":
			return types.String, nil
		}

		if !unicode.IsLower(rune(e.Name[0])) {
			return nil, errpos.New(e.Source(), "unknown type %s", e.Name)
		}

		if v, ok := vars[e.Name]; ok {
			return v, nil
		}

		var v types.T = c.supply.Fresh()
		if rigid {
			v = &types.Con{Name: e.Name}
		}

		vars[e.Name] = v

		return v, nil
	case *expr.List:
		name, _ := expr.Head(e)

		switch {
		case (name == "List" || name == "Option") && len(e.Items) == 2:
			elem, err := c.typ(e.Items[1], vars, rigid)
			if err != nil {
				return nil, err
			}

			return &types.Con{Name: name, Args: []types.T{elem}}, nil
		case name == "->" && len(e.Items) == 3:
			params, ok := e.Items[1].(*expr.List)
			if !ok {
				break
			}

			f := &types.Fun{}
			for _, p := range params.Items {
				t, err := c.typ(p, vars, rigid)
				if err != nil {
					return nil, err
				}

				f.Params = append(f.Params, t)
			}

			result, err := c.typ(e.Items[2], vars, rigid)
			if err != nil {
				return nil, err
			}

			f.Result = result

			return f, nil
		}
	}

	return nil, errpos.New(e.Source(), "malformed type %s", e)
}

func binding(e expr.T) (string, expr.T, error) {
	l, ok := e.(*expr.List)
	if !ok || len(l.Items) != 2 {
		return "", nil, errpos.New(e.Source(), "let: expected (name value)")
	}

	s, ok := l.Items[0].(*expr.Sym)
	if !ok || reserved[s.Name] {
		return "", nil, errpos.New(l.Items[0].Source(), "let: invalid name %s", l.Items[0])
	}

	return s.Name, l.Items[1], nil
}
