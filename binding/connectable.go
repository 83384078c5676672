package binding

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// connectable is the dependency-tracking capability of a binding. Each
// round of Expression.Connect stamps the dependencies the expression
// reported with the current version; unobserve(false) then drops every
// registration left over from earlier rounds. Conditional expressions may
// read different properties each time, so re-connecting must not leak the
// old set.
//
// Embedded by composition, not mixed in at runtime.
type connectable struct {
	sub     Subscriber // the binding itself, registered under contextSource
	version uint64
	deps    map[PropertyObserver]uint64 // dependency -> version stamp
}

func (c *connectable) init(sub Subscriber) {
	c.sub = sub
	c.deps = make(map[PropertyObserver]uint64)
}

// ObserveProperty is part of interface Connecter. A dependency already
// subscribed is only re-stamped, not subscribed twice.
func (c *connectable) ObserveProperty(obj Observable, key string) {
	po := obj.PropertyObserver(key)
	if _, ok := c.deps[po]; !ok {
		po.Subscribe(contextSource, c.sub)
		tracer().P("key", key).Debugf("binding now observes source property %s", key)
	}
	c.deps[po] = c.version
}

// unobserve drops dependency registrations: all of them, or only those
// not re-stamped in the current version round.
func (c *connectable) unobserve(all bool) {
	for po, stamp := range c.deps {
		if all || stamp != c.version {
			po.Unsubscribe(contextSource, c.sub)
			delete(c.deps, po)
		}
	}
}
