package binding

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/stybind/dom"
	"github.com/npillmayer/stybind/dom/style"
)

// StyleObserver tracks the value of a single CSS property in an element's
// inline style. There is at most one StyleObserver per (element,
// hyphenated property) pair; bindings resolve theirs through an
// ObserverLocator and share it.
//
// The observer is the single writer for its style rule. Bindings never
// touch the style attribute directly; all writes go through SetValue, so
// the strict-inequality check there is sufficient to break update cycles.
type StyleObserver struct {
	element     *dom.Element
	property    string // hyphenated CSS property name
	value       style.Property
	prevValue   style.Property
	subscribers SubscriberList
	watch       *dom.MutationObserver // non-nil iff at least one subscriber
}

func newStyleObserver(e *dom.Element, property string) *StyleObserver {
	return &StyleObserver{element: e, property: property}
}

// Element returns the observed element.
func (o *StyleObserver) Element() *dom.Element {
	return o.element
}

// Property returns the observed CSS property in hyphenated form.
func (o *StyleObserver) Property() string {
	return o.property
}

// Value reads the current value of the property from the element's style
// attribute. The read is authoritative, not taken from the cached field,
// so mutations made outside this observer are visible immediately.
func (o *StyleObserver) Value() style.Property {
	v, _ := o.element.StyleProperty(o.property)
	return v
}

// SetValue writes a new value for the property into the element's inline
// style and notifies all subscribers. A value equal to the cached current
// value is a no-op; this is the dedup point that keeps two-way update
// cycles from oscillating.
func (o *StyleObserver) SetValue(newValue style.Property) {
	if newValue == o.value {
		return
	}
	o.shift(newValue)
	o.element.SetStyleProperty(o.property, newValue)
	tracer().P("prop", o.property).Debugf("style %s set to %q", o.property, newValue)
	o.subscribers.Call(o.value, o.prevValue)
}

// SyncValue re-reads the property from the style attribute and, if the
// value differs from the cached one, notifies subscribers exactly like
// SetValue does. This is the path for mutations made outside the
// observer, e.g. a direct attribute edit.
func (o *StyleObserver) SyncValue() {
	live := o.Value()
	if live == o.value {
		return
	}
	o.shift(live)
	tracer().P("prop", o.property).Debugf("style %s externally changed to %q", o.property, live)
	o.subscribers.Call(o.value, o.prevValue)
}

func (o *StyleObserver) shift(newValue style.Property) {
	o.prevValue = o.value
	o.value = newValue
}

// Subscribe registers a (context, subscriber) pair. The first subscriber
// starts the attribute-mutation watch on the element, filtered to the
// style attribute; each delivered mutation batch triggers one SyncValue.
func (o *StyleObserver) Subscribe(context string, s Subscriber) {
	if !o.subscribers.Add(context, s) {
		return
	}
	if o.watch == nil {
		o.watch = dom.NewMutationObserver(func([]dom.MutationRecord) {
			o.SyncValue()
		})
		o.watch.Observe(o.element, dom.ObserveOptions{
			AttributeFilter: []string{dom.StyleAttr},
		})
		tracer().P("prop", o.property).Debugf("started style mutation watch")
	}
}

// Unsubscribe removes a (context, subscriber) pair. When the last
// subscriber leaves, the mutation watch is torn down; pending undelivered
// mutation records are dropped with it.
func (o *StyleObserver) Unsubscribe(context string, s Subscriber) {
	if !o.subscribers.Remove(context, s) {
		return
	}
	if !o.subscribers.Any() && o.watch != nil {
		o.watch.Disconnect()
		o.watch = nil
		tracer().P("prop", o.property).Debugf("stopped style mutation watch")
	}
}

// HasSubscriber checks whether a pair is currently registered.
func (o *StyleObserver) HasSubscriber(context string, s Subscriber) bool {
	return o.subscribers.Has(context, s)
}
