/*
Package binding synchronizes CSS style properties with mutable state.

Overview

A StyleBinding connects one binding expression to one CSS property on one
element, in one of four directions: one-time, to-view, from-view or
two-way. The element side is represented by a StyleObserver, which owns
the authoritative notion of "current value of property P on element E",
writes changes to the element's inline style, and watches the style
attribute for mutations made behind its back.

Observation is deduplicated: all bindings touching the same property on
the same element share a single StyleObserver, resolved through an
ObserverLocator. The attribute-mutation watch is expensive, so an observer
starts it only when it gains its first subscriber and stops it when the
last subscriber leaves.

The expression side is deliberately abstract. The binding consumes the
Expression interface (evaluate, assign, connect) and feeds an embedded
dependency tracker: each time the expression is connected it reports the
properties it read, the tracker subscribes to them, and stale
registrations from earlier evaluations are dropped. Package expr provides
a concrete engine; hosts may bring their own.

All types follow the cooperative single-goroutine model: change handling
runs to completion, nothing locks, and deferred work (to-view connection)
sits in an explicit queue until the host flushes it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binding

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stybind.binding'
func tracer() tracing.Trace {
	return tracing.Select("stybind.binding")
}
