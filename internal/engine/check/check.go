// Released under an MIT license. See LICENSE.

// Package check provides the type checker for tl.
//
// A program is a sequence of defun and export forms. The whole program is
// checked as one unit. Interactive lines are then checked against the
// exported definitions of that program without changing it.
package check

import (
	"github.com/michaelmacinnis/tl/internal/engine/builtin"
	"github.com/michaelmacinnis/tl/internal/engine/types"
	"github.com/michaelmacinnis/tl/internal/reader/expr"
	"github.com/michaelmacinnis/tl/internal/type/errpos"
	"github.com/michaelmacinnis/tl/internal/type/loc"
)

// Def is a checked top-level definition.
type Def struct {
	Body     expr.T
	Effect   types.Effect
	Exported bool
	Name     string
	Params   []string
	Scheme   *types.Scheme
	Source   loc.T

	annotation expr.T     // The (Pure|IO type) form, or nil.
	mono       *types.Fun // Type while an unannotated program is checked.
}

// Env holds the definitions of a checked program.
type Env struct {
	defs  map[string]*Def
	order []*Def
}

// Defs returns the definitions in the order they were written.
func (e *Env) Defs() []*Def {
	return e.order
}

// Exported returns the names of the definitions visible to lines.
func (e *Env) Exported() []string {
	names := []string{}
	for _, d := range e.order {
		if d.Exported {
			names = append(names, d.Name)
		}
	}

	return names
}

//nolint:gochecknoglobals
var reserved = map[string]bool{
	"Cons":   true,
	"None":   true,
	"_":      true,
	"defun":  true,
	"export": true,
	"if":     true,
	"lambda": true,
	"let":    true,
	"match":  true,
}

type checker struct {
	defs    map[string]*Def
	program bool
	subst   types.Subst
	supply  *types.Supply
}

func newChecker(defs map[string]*Def, program bool) *checker {
	return &checker{
		defs:    defs,
		program: program,
		subst:   types.Subst{},
		supply:  &types.Supply{},
	}
}

// Program checks es as a complete program. The first error found is
// returned as an *errpos.T.
func Program(es []expr.T) (*Env, error) {
	env := &Env{defs: map[string]*Def{}}

	for _, e := range es {
		d, err := definition(e)
		if err != nil {
			return nil, err
		}

		if _, found := env.defs[d.Name]; found {
			return nil, errpos.New(d.Source, "duplicate definition of %s", d.Name)
		}

		if _, found := builtin.Lookup(d.Name); found || reserved[d.Name] {
			return nil, errpos.New(d.Source, "%s is reserved", d.Name)
		}

		env.defs[d.Name] = d
		env.order = append(env.order, d)
	}

	c := newChecker(env.defs, true)

	for _, d := range env.order {
		if err := c.declare(d); err != nil {
			return nil, err
		}
	}

	effects(env)

	for _, d := range env.order {
		if err := c.define(d); err != nil {
			return nil, err
		}
	}

	for _, d := range env.order {
		if d.annotation == nil {
			d.Scheme = c.subst.Generalize(d.mono, nil)
		}
	}

	return env, nil
}

// Line checks the forms on one interactive line against env.
// Lines are effectful and can only see exported definitions.
func Line(env *Env, es []expr.T) error {
	visible := map[string]*Def{}
	for _, d := range env.order {
		if d.Exported {
			visible[d.Name] = d
		}
	}

	c := newChecker(visible, false)

	for _, e := range es {
		if _, err := c.infer(e, nil, false); err != nil {
			return err
		}
	}

	return nil
}

// declare assigns the type callers see while the program is checked.
func (c *checker) declare(d *Def) error {
	if d.annotation == nil {
		f := &types.Fun{Result: c.supply.Fresh()}
		for range d.Params {
			f.Params = append(f.Params, c.supply.Fresh())
		}

		d.mono = f

		return nil
	}

	effect, f, err := c.annotation(d, false)
	if err != nil {
		return err
	}

	d.Effect = effect
	d.Scheme = c.subst.Generalize(f, nil)

	return nil
}

// define checks the body of d.
func (c *checker) define(d *Def) error {
	f := d.mono
	if d.annotation != nil {
		var err error

		// Type variables in an annotation are rigid inside the body.
		_, f, err = c.annotation(d, true)
		if err != nil {
			return err
		}
	}

	var s *scope
	for i, p := range d.Params {
		s = s.bind(p, f.Params[i])
	}

	t, err := c.infer(d.Body, s, d.Effect == types.Pure)
	if err != nil {
		return err
	}

	return c.unify(d.Body.Source(), f.Result, t)
}

func (c *checker) unify(source loc.T, expected, actual types.T) error {
	if err := c.subst.Unify(expected, actual); err != nil {
		return errpos.New(source, "%v", err)
	}

	return nil
}

// definition validates the shape of a top-level form.
func definition(e expr.T) (*Def, error) {
	kind, ok := expr.Head(e)
	if !ok || (kind != "defun" && kind != "export") {
		return nil, errpos.New(e.Source(), "expected defun or export at the top level")
	}

	items := e.(*expr.List).Items
	if len(items) != 4 && len(items) != 5 {
		return nil, errpos.New(e.Source(), "%s: expected a name, parameters, an optional type and a body", kind)
	}

	name, ok := items[1].(*expr.Sym)
	if !ok {
		return nil, errpos.New(items[1].Source(), "%s: expected a name", kind)
	}

	params, err := parameters(kind, items[2])
	if err != nil {
		return nil, err
	}

	d := &Def{
		Body:     items[len(items)-1],
		Exported: kind == "export",
		Name:     name.Name,
		Params:   params,
		Source:   name.Source(),
	}

	if len(items) == 5 {
		d.annotation = items[3]
	}

	return d, nil
}

func parameters(kind string, e expr.T) ([]string, error) {
	l, ok := e.(*expr.List)
	if !ok {
		return nil, errpos.New(e.Source(), "%s: expected a parameter list", kind)
	}

	seen := map[string]bool{}
	names := make([]string, 0, len(l.Items))

	for _, item := range l.Items {
		s, ok := item.(*expr.Sym)
		if !ok || reserved[s.Name] {
			return nil, errpos.New(item.Source(), "%s: invalid parameter %s", kind, item)
		}

		if seen[s.Name] {
			return nil, errpos.New(item.Source(), "%s: duplicate parameter %s", kind, s.Name)
		}

		seen[s.Name] = true
		names = append(names, s.Name)
	}

	return names, nil
}

type scope struct {
	name string
	next *scope
	t    types.T
}

func (s *scope) bind(name string, t types.T) *scope {
	return &scope{name: name, next: s, t: t}
}

func (s *scope) lookup(name string) (types.T, bool) {
	for ; s != nil; s = s.next {
		if s.name == name {
			return s.t, true
		}
	}

	return nil, false
}
