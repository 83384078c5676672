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

// ObserverLocator hands out the shared StyleObserver for an (element,
// property) pair. Observers are created lazily on first request and are
// never explicitly destroyed; they live as long as their element entry.
//
// The side table is an explicit map keyed by element identity. Hosts that
// remove elements from a living document release the entry (and every
// observer under it) with Forget.
type ObserverLocator struct {
	observers map[*dom.Element]map[string]*StyleObserver
}

// NewObserverLocator creates an empty locator.
func NewObserverLocator() *ObserverLocator {
	return &ObserverLocator{
		observers: make(map[*dom.Element]map[string]*StyleObserver),
	}
}

// StyleObserver resolves the observer for a CSS property on an element.
// The property name may be given in camel-case or hyphenated form; both
// map to the same observer. At most one observer ever exists per
// (element, hyphenated property) pair.
func (loc *ObserverLocator) StyleObserver(e *dom.Element, propertyName string) *StyleObserver {
	prop := style.Hyphenate(propertyName)
	props, ok := loc.observers[e]
	if !ok {
		props = make(map[string]*StyleObserver)
		loc.observers[e] = props
	}
	o, ok := props[prop]
	if !ok {
		o = newStyleObserver(e, prop)
		props[prop] = o
		tracer().P("prop", prop).Debugf("created style observer for %v", e)
	}
	return o
}

// Forget releases all observers of an element. The explicit teardown
// counterpart to dom.Discard.
func (loc *ObserverLocator) Forget(e *dom.Element) {
	delete(loc.observers, e)
}
