package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stybind/binding"
	"github.com/npillmayer/stybind/dom/style"
)

// contextOf unwraps the expr context from a binding scope. Handing an
// expr expression a scope from a different engine is a wiring bug.
func contextOf(scope binding.Scope) *Context {
	if scope == nil {
		panic("expr: expression evaluated without a scope")
	}
	c, ok := scope.BindingContext().(*Context)
	if !ok {
		panic(fmt.Sprintf("expr: scope context has type %T, expected *expr.Context",
			scope.BindingContext()))
	}
	return c
}

// --- Access paths ----------------------------------------------------------

// AccessPath reads (and writes) a context key, descending through nested
// child contexts for every path segment but the last.
type AccessPath struct {
	path []string
}

// Path returns the dotted form of the access path.
func (ap *AccessPath) Path() string {
	return strings.Join(ap.path, ".")
}

// resolve descends to the context holding the final key. A missing child
// context resolves to nil.
func (ap *AccessPath) resolve(c *Context) (*Context, string) {
	last := len(ap.path) - 1
	for _, seg := range ap.path[:last] {
		if c = c.Child(seg); c == nil {
			return nil, ap.path[last]
		}
	}
	return c, ap.path[last]
}

// Evaluate is part of interface binding.Expression. A path into a missing
// child context evaluates to NullStyle.
func (ap *AccessPath) Evaluate(scope binding.Scope, lf binding.LookupFunctions) style.Property {
	c, key := ap.resolve(contextOf(scope))
	if c == nil {
		return style.NullStyle
	}
	return c.Get(key)
}

// Assign is part of interface binding.Expression. Assigning into a
// missing child context is dropped (and traced); the source shape is
// caller data, not an invariant.
func (ap *AccessPath) Assign(scope binding.Scope, value style.Property, lf binding.LookupFunctions) {
	c, key := ap.resolve(contextOf(scope))
	if c == nil {
		tracer().P("path", ap.Path()).Errorf("cannot assign through missing context")
		return
	}
	c.Set(key, value)
}

// Connect is part of interface binding.Expression.
func (ap *AccessPath) Connect(b binding.Connecter, scope binding.Scope) {
	c, key := ap.resolve(contextOf(scope))
	if c == nil {
		return
	}
	b.ObserveProperty(c, key)
}

// --- Literals --------------------------------------------------------------

// Literal is a constant string value, written 'red' in the expression
// language.
type Literal struct {
	value style.Property
}

// Evaluate is part of interface binding.Expression.
func (l *Literal) Evaluate(binding.Scope, binding.LookupFunctions) style.Property {
	return l.value
}

// Assign is part of interface binding.Expression. Literals are not
// assignable; a from-view or two-way binding on a literal is a wiring bug.
func (l *Literal) Assign(binding.Scope, style.Property, binding.LookupFunctions) {
	panic(fmt.Sprintf("expr: literal %q is not assignable", l.value))
}

// Connect is part of interface binding.Expression. Literals have no
// dependencies.
func (l *Literal) Connect(binding.Connecter, binding.Scope) {}

// --- Conditionals ----------------------------------------------------------

// conditional is a ternary choice between two expressions. Its dependency
// set changes with the condition: only the branch currently taken is
// connected.
type conditional struct {
	cond, yes, no binding.Expression
}

func (ce *conditional) Evaluate(scope binding.Scope, lf binding.LookupFunctions) style.Property {
	if truthy(ce.cond.Evaluate(scope, lf)) {
		return ce.yes.Evaluate(scope, lf)
	}
	return ce.no.Evaluate(scope, lf)
}

func (ce *conditional) Assign(scope binding.Scope, value style.Property, lf binding.LookupFunctions) {
	if truthy(ce.cond.Evaluate(scope, lf)) {
		ce.yes.Assign(scope, value, lf)
		return
	}
	ce.no.Assign(scope, value, lf)
}

func (ce *conditional) Connect(b binding.Connecter, scope binding.Scope) {
	ce.cond.Connect(b, scope)
	if truthy(ce.cond.Evaluate(scope, nil)) {
		ce.yes.Connect(b, scope)
	} else {
		ce.no.Connect(b, scope)
	}
}

// truthy interprets a property value as a condition. Empty, "false" and
// "0" are false, everything else is true.
func truthy(p style.Property) bool {
	return !p.IsEmpty() && p != "false" && p != "0"
}

// --- Converter pipes -------------------------------------------------------

// pipe applies a named value converter to the wrapped expression, written
// "price | currency". ToView transforms evaluation results, FromView
// transforms assigned values.
type pipe struct {
	inner     binding.Expression
	converter string
}

func (pe *pipe) Evaluate(scope binding.Scope, lf binding.LookupFunctions) style.Property {
	return pe.lookup(lf).ToView(pe.inner.Evaluate(scope, lf))
}

func (pe *pipe) Assign(scope binding.Scope, value style.Property, lf binding.LookupFunctions) {
	pe.inner.Assign(scope, pe.lookup(lf).FromView(value), lf)
}

func (pe *pipe) Connect(b binding.Connecter, scope binding.Scope) {
	pe.inner.Connect(b, scope)
}

func (pe *pipe) lookup(lf binding.LookupFunctions) binding.ValueConverter {
	if lf != nil {
		if conv := lf.ValueConverter(pe.converter); conv != nil {
			return conv
		}
	}
	panic(fmt.Sprintf("expr: no value converter named %q", pe.converter))
}

// Converters is a ready-made binding.LookupFunctions: a plain name table.
type Converters map[string]binding.ValueConverter

// ValueConverter is part of interface binding.LookupFunctions.
func (cs Converters) ValueConverter(name string) binding.ValueConverter {
	return cs[name]
}
