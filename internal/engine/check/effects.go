// Released under an MIT license. See LICENSE.

package check

import (
	"github.com/michaelmacinnis/tl/internal/engine/builtin"
	"github.com/michaelmacinnis/tl/internal/engine/types"
	"github.com/michaelmacinnis/tl/internal/reader/expr"
)

// effects marks every unannotated definition that calls something
// effectful as IO. It repeats until nothing changes.
func effects(env *Env) {
	for changed := true; changed; {
		changed = false

		for _, d := range env.order {
			if d.annotation != nil || d.Effect == types.IO {
				continue
			}

			locals := map[string]int{}
			for _, p := range d.Params {
				locals[p]++
			}

			if calls(env.defs, d.Body, locals) {
				d.Effect = types.IO
				changed = true
			}
		}
	}
}

// calls reports whether e calls an IO function outside of a lambda.
func calls(defs map[string]*Def, e expr.T, locals map[string]int) bool {
	l, ok := e.(*expr.List)
	if !ok || len(l.Items) == 0 {
		return false
	}

	name, _ := expr.Head(l)
	if locals[name] == 0 {
		switch name {
		case "lambda":
			return false
		case "let":
			return letCalls(defs, l, locals)
		case "match":
			return matchCalls(defs, l, locals)
		}

		if io(defs, name) {
			return true
		}
	}

	for _, item := range l.Items {
		if calls(defs, item, locals) {
			return true
		}
	}

	return false
}

func io(defs map[string]*Def, name string) bool {
	if d, ok := defs[name]; ok {
		return d.Effect == types.IO
	}

	if b, ok := builtin.Lookup(name); ok {
		return b.Effect() == types.IO
	}

	return false
}

func letCalls(defs map[string]*Def, l *expr.List, locals map[string]int) bool {
	if len(l.Items) != 3 {
		return false
	}

	var bound []string

	defer func() {
		for _, name := range bound {
			locals[name]--
		}
	}()

	if bindings, ok := l.Items[1].(*expr.List); ok {
		for _, b := range bindings.Items {
			name, value, err := binding(b)
			if err != nil {
				return false
			}

			if calls(defs, value, locals) {
				return true
			}

			locals[name]++
			bound = append(bound, name)
		}
	}

	return calls(defs, l.Items[2], locals)
}

func matchCalls(defs map[string]*Def, l *expr.List, locals map[string]int) bool {
	if len(l.Items) < 2 {
		return false
	}

	if calls(defs, l.Items[1], locals) {
		return true
	}

	for _, item := range l.Items[2:] {
		k, ok := item.(*expr.List)
		if !ok || len(k.Items) != 2 {
			continue
		}

		bound := variables(k.Items[0], nil)
		for _, name := range bound {
			locals[name]++
		}

		found := calls(defs, k.Items[1], locals)

		for _, name := range bound {
			locals[name]--
		}

		if found {
			return true
		}
	}

	return false
}

// variables appends the names bound by pattern p to names.
func variables(p expr.T, names []string) []string {
	switch p := p.(type) {
	case *expr.Sym:
		if p.Name != "_" && p.Name != "None" {
			names = append(names, p.Name)
		}
	case *expr.List:
		if name, ok := expr.Head(p); ok && (name == "Some" || name == "Cons") {
			for _, item := range p.Items[1:] {
				names = variables(item, names)
			}
		}
	}

	return names
}
