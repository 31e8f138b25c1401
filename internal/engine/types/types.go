// Released under an MIT license. See LICENSE.

// Package types provides the type representation used by the checker:
// type variables, constructors, function types, schemes and unification.
package types

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// T (type) is a tl type.
type T interface {
	String() string
}

// Con is a type constructor applied to its arguments.
// Constructors with no arguments are the base types.
type Con struct {
	Name string
	Args []T
}

// Fun is the type of a function.
type Fun struct {
	Params []T
	Result T
}

// Var is a type variable.
type Var struct {
	ID int
}

// Base types.
//
//nolint:gochecknoglobals
var (
	Bool   = &Con{Name: "Bool"}
	Int    = &Con{Name: "Int"}
	String = &Con{Name: "String"}
)

// List returns the type of lists of elem.
func List(elem T) T {
	return &Con{Name: "List", Args: []T{elem}}
}

// Option returns the type of optional elem.
func Option(elem T) T {
	return &Con{Name: "Option", Args: []T{elem}}
}

// Func returns the type of functions from params to result.
func Func(result T, params ...T) T {
	return &Fun{Params: params, Result: result}
}

func (c *Con) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return "(" + c.Name + " " + join(c.Args) + ")"
}

func (f *Fun) String() string {
	return "(-> (" + join(f.Params) + ") " + f.Result.String() + ")"
}

func (v *Var) String() string {
	return "t" + strconv.Itoa(v.ID)
}

// Scheme is a type with universally quantified variables.
type Scheme struct {
	Vars []int
	Type T
}

// Mono wraps t in a scheme with no quantified variables.
func Mono(t T) *Scheme {
	return &Scheme{Type: t}
}

// Supply hands out fresh type variables.
type Supply struct {
	next int
}

// Fresh returns a type variable that has not been used before.
func (s *Supply) Fresh() *Var {
	v := &Var{ID: s.next}
	s.next++

	return v
}

// Instantiate replaces the quantified variables of sc with fresh ones.
func (s *Supply) Instantiate(sc *Scheme) T {
	if len(sc.Vars) == 0 {
		return sc.Type
	}

	m := Subst{}
	for _, id := range sc.Vars {
		m[id] = s.Fresh()
	}

	return m.Apply(sc.Type)
}

// Subst maps type variable IDs to types.
type Subst map[int]T

// Apply replaces, recursively, every bound variable in t.
func (s Subst) Apply(t T) T {
	switch t := t.(type) {
	case *Var:
		if u, ok := s[t.ID]; ok {
			return s.Apply(u)
		}

		return t
	case *Con:
		if len(t.Args) == 0 {
			return t
		}

		return &Con{Name: t.Name, Args: s.all(t.Args)}
	case *Fun:
		return &Fun{Params: s.all(t.Params), Result: s.Apply(t.Result)}
	}

	return t
}

// Generalize quantifies every variable free in t but not in fixed.
func (s Subst) Generalize(t T, fixed map[int]bool) *Scheme {
	t = s.Apply(t)

	vars := []int{}
	for id := range Free(t) {
		if !fixed[id] {
			vars = append(vars, id)
		}
	}

	sort.Ints(vars)

	return &Scheme{Vars: vars, Type: t}
}

// Unify extends s so that expected and actual are the same type.
func (s Subst) Unify(expected, actual T) error {
	a := s.Apply(expected)
	b := s.Apply(actual)

	if v, ok := a.(*Var); ok {
		return s.bind(v, b)
	}

	if v, ok := b.(*Var); ok {
		return s.bind(v, a)
	}

	switch a := a.(type) {
	case *Con:
		c, ok := b.(*Con)
		if !ok || c.Name != a.Name || len(c.Args) != len(a.Args) {
			return mismatch(a, b)
		}

		for i := range a.Args {
			if err := s.Unify(a.Args[i], c.Args[i]); err != nil {
				return mismatch(s.Apply(a), s.Apply(c))
			}
		}

		return nil
	case *Fun:
		f, ok := b.(*Fun)
		if !ok || len(f.Params) != len(a.Params) {
			return mismatch(a, b)
		}

		for i := range a.Params {
			if err := s.Unify(a.Params[i], f.Params[i]); err != nil {
				return mismatch(s.Apply(a), s.Apply(f))
			}
		}

		if err := s.Unify(a.Result, f.Result); err != nil {
			return mismatch(s.Apply(a), s.Apply(f))
		}

		return nil
	}

	return mismatch(a, b)
}

func (s Subst) all(ts []T) []T {
	r := make([]T, len(ts))
	for i, t := range ts {
		r[i] = s.Apply(t)
	}

	return r
}

func (s Subst) bind(v *Var, t T) error {
	if u, ok := t.(*Var); ok && u.ID == v.ID {
		return nil
	}

	if Free(t)[v.ID] {
		return fmt.Errorf("infinite type: %s occurs in %s", v, t)
	}

	s[v.ID] = t

	return nil
}

// Free returns the IDs of the type variables in t.
func Free(t T) map[int]bool {
	m := map[int]bool{}
	free(t, m)

	return m
}

func free(t T, m map[int]bool) {
	switch t := t.(type) {
	case *Var:
		m[t.ID] = true
	case *Con:
		for _, a := range t.Args {
			free(a, m)
		}
	case *Fun:
		for _, p := range t.Params {
			free(p, m)
		}

		free(t.Result, m)
	}
}

func join(ts []T) string {
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.String()
	}

	return strings.Join(s, " ")
}

func mismatch(expected, actual T) error {
	return fmt.Errorf("expected %s, found %s", expected, actual)
}

// Effect separates pure functions from functions with side effects.
type Effect int

// Effects.
const (
	Pure Effect = iota
	IO
)

// String returns the name of the effect e as it is written in annotations.
func (e Effect) String() string {
	if e == IO {
		return "IO"
	}

	return "Pure"
}
