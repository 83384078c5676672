package binding

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/stybind/dom"
	"github.com/npillmayer/stybind/dom/style"
)

// Change contexts a binding registers itself under. HandleChange
// dispatches on them: contextSource means the dependency tracker fired,
// contextTarget means the style observer fired.
const (
	contextSource = "binding:source"
	contextTarget = "binding:target"
)

// StyleBinding synchronizes one source expression with one CSS property
// on one element. It is a two-state machine: unbound (initial and after
// Unbind) and bound. While bound it holds its scope, its shared
// StyleObserver, and — depending on mode — registrations with the
// dependency tracker and/or the observer, all of which Unbind releases.
type StyleBinding struct {
	connectable
	expr           Expression
	target         *dom.Element
	targetProperty string // hyphenated
	mode           Mode
	locator        *ObserverLocator
	lookups        LookupFunctions

	isBound  bool
	source   Scope
	observer *StyleObserver
}

// NewStyleBinding creates an unbound binding of a parsed expression to a
// CSS property on a target element. The property name may be camel-cased;
// it is hyphenated once here. lookups may be nil.
func NewStyleBinding(expr Expression, target *dom.Element, propertyName string,
	mode Mode, locator *ObserverLocator, lookups LookupFunctions) *StyleBinding {
	//
	b := &StyleBinding{
		expr:           expr,
		target:         target,
		targetProperty: style.Hyphenate(propertyName),
		mode:           mode,
		locator:        locator,
		lookups:        lookups,
	}
	b.connectable.init(b)
	return b
}

// IsBound returns whether the binding is currently bound to a scope.
func (b *StyleBinding) IsBound() bool {
	return b.isBound
}

// Mode returns the binding's synchronization direction.
func (b *StyleBinding) Mode() Mode {
	return b.mode
}

// TargetProperty returns the bound CSS property in hyphenated form.
func (b *StyleBinding) TargetProperty() string {
	return b.targetProperty
}

// Bind attaches the binding to a scope, applies the mode's initial
// reconciliation and registers for ongoing updates.
//
// Binding an already-bound binding to the same scope is a no-op; binding
// it to a different scope unbinds it first.
func (b *StyleBinding) Bind(source Scope) {
	if b.isBound {
		if b.source == source {
			return
		}
		b.Unbind()
	}
	b.isBound = true
	b.source = source
	if binder, ok := b.expr.(Binder); ok {
		binder.Bind(b, source, b.lookups)
	}
	b.observer = b.locator.StyleObserver(b.target, b.targetProperty)
	tracer().P("prop", b.targetProperty).Debugf("bind %s binding", b.mode)
	switch b.mode {
	case OneTime:
		b.observer.SetValue(b.expr.Evaluate(source, b.lookups))
	case ToView:
		b.observer.SetValue(b.expr.Evaluate(source, b.lookups))
		EnqueueBindingConnect(b)
	case TwoWay:
		b.observer.SetValue(b.expr.Evaluate(source, b.lookups))
		b.expr.Connect(b, source)
		b.observer.Subscribe(contextTarget, b)
	case FromView:
		if b.target.HasStyleAttr() {
			if v, ok := b.target.StyleProperty(b.targetProperty); ok {
				b.expr.Assign(source, v, b.lookups)
			}
		}
		b.observer.Subscribe(contextTarget, b)
	}
}

// Unbind detaches the binding from its scope, releasing the observer
// subscription and every dependency-tracker registration. Unbinding an
// unbound binding is a no-op.
func (b *StyleBinding) Unbind() {
	if !b.isBound {
		return
	}
	b.isBound = false
	tracer().P("prop", b.targetProperty).Debugf("unbind %s binding", b.mode)
	if unbinder, ok := b.expr.(Unbinder); ok {
		unbinder.Unbind(b, b.source)
	}
	b.source = nil
	if b.observer.HasSubscriber(contextTarget, b) {
		b.observer.Unsubscribe(contextTarget, b)
	}
	b.observer = nil
	b.unobserve(true)
}

// HandleChange is the binding's change dispatch; it is invoked by the
// dependency tracker (source change) or by the style observer (target
// change). Notifications arriving on an unbound binding are dropped.
// Any other context is a bug in the binding infrastructure and panics.
func (b *StyleBinding) HandleChange(context string, newValue, prevValue style.Property) {
	if !b.isBound {
		return
	}
	switch context {
	case contextSource:
		prev := b.observer.Value()
		val := b.expr.Evaluate(b.source, b.lookups)
		if val != prev {
			b.observer.SetValue(val)
		}
		if b.mode != OneTime {
			b.version++
			b.expr.Connect(b, b.source)
			b.unobserve(false)
		}
	case contextTarget:
		if newValue != prevValue {
			b.expr.Assign(b.source, newValue, b.lookups)
		}
	default:
		panic(fmt.Sprintf("binding: unexpected change context %q", context))
	}
}

// Connect (re-)registers the source expression with the dependency
// tracker; with evaluate set, the expression is evaluated first and the
// result pushed to the observer. Called by FlushConnectQueue for deferred
// to-view connection. A no-op on unbound bindings.
func (b *StyleBinding) Connect(evaluate bool) {
	if !b.isBound {
		return
	}
	if evaluate {
		b.observer.SetValue(b.expr.Evaluate(b.source, b.lookups))
	}
	b.expr.Connect(b, b.source)
}
