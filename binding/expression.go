package binding

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/stybind/dom/style"
)

// Scope is the evaluation context a binding is bound to. The binding core
// treats it as opaque: it only stores it, hands it to the expression, and
// compares it by identity to make Bind idempotent.
type Scope interface {
	// BindingContext returns the object expressions evaluate against.
	BindingContext() interface{}
}

// Expression is the parsed binding expression, provided by an expression
// engine such as package expr. Connect reports every property the
// expression would read to the binding's dependency tracker; which
// properties these are may change from evaluation to evaluation.
type Expression interface {
	Evaluate(scope Scope, lf LookupFunctions) style.Property
	Assign(scope Scope, value style.Property, lf LookupFunctions)
	Connect(b Connecter, scope Scope)
}

// Binder is an optional expression capability, invoked when a binding
// using the expression is bound.
type Binder interface {
	Bind(b *StyleBinding, scope Scope, lf LookupFunctions)
}

// Unbinder is an optional expression capability, invoked when a binding
// using the expression is unbound.
type Unbinder interface {
	Unbind(b *StyleBinding, scope Scope)
}

// LookupFunctions resolves value converters referenced by expressions.
// A nil LookupFunctions is legal and resolves nothing.
type LookupFunctions interface {
	ValueConverter(name string) ValueConverter
}

// ValueConverter transforms values crossing the binding: ToView on the way
// to the style property, FromView on the way back into the source.
type ValueConverter interface {
	ToView(value style.Property) style.Property
	FromView(value style.Property) style.Property
}

// Observable is a source object whose properties can be observed
// individually. The expression engine's contexts implement it.
type Observable interface {
	PropertyObserver(key string) PropertyObserver
}

// PropertyObserver notifies subscribers of changes to one property of one
// Observable. Implementations must be comparable (pointer receivers), as
// the dependency tracker keys its bookkeeping by observer identity.
type PropertyObserver interface {
	Subscribe(context string, s Subscriber)
	Unsubscribe(context string, s Subscriber)
}

// Connecter is the dependency-tracking target handed to
// Expression.Connect. ObserveProperty is called once per property the
// expression reads.
type Connecter interface {
	ObserveProperty(obj Observable, key string)
}
