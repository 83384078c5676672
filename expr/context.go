package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/stybind/binding"
	"github.com/npillmayer/stybind/dom/style"
)

// Context is an observable property store serving as the source side of
// style bindings. It implements binding.Scope (it is its own binding
// context) and binding.Observable (each key can be observed).
//
// Contexts nest: a child context installed under a name is reachable from
// access-path expressions, e.g. "theme.accentColor" reads key
// "accentColor" of the child "theme".
type Context struct {
	values    map[string]style.Property
	children  map[string]*Context
	observers map[string]*propertyObserver
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{
		values: make(map[string]style.Property),
	}
}

// BindingContext is part of interface binding.Scope.
func (c *Context) BindingContext() interface{} {
	return c
}

// Get returns the value stored under key, NullStyle if absent.
func (c *Context) Get(key string) style.Property {
	return c.values[key]
}

// Lookup returns the value stored under key and whether it is present.
func (c *Context) Lookup(key string) (style.Property, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set stores a value under key. Observers of the key are notified, but
// only if the value actually changed.
func (c *Context) Set(key string, value style.Property) {
	old, present := c.values[key]
	if present && old == value {
		return
	}
	c.values[key] = value
	tracer().P("key", key).Debugf("context value set to %q", value)
	if po, ok := c.observers[key]; ok {
		po.subscribers.Call(value, old)
	}
}

// SetChild installs (or replaces) a nested context under a name.
func (c *Context) SetChild(name string, child *Context) {
	if c.children == nil {
		c.children = make(map[string]*Context)
	}
	c.children[name] = child
}

// Child returns the nested context installed under name, or nil.
func (c *Context) Child(name string) *Context {
	return c.children[name]
}

// PropertyObserver is part of interface binding.Observable. The observer
// for a key is created lazily and kept for the life of the context, so
// repeated calls return the identical observer.
func (c *Context) PropertyObserver(key string) binding.PropertyObserver {
	if c.observers == nil {
		c.observers = make(map[string]*propertyObserver)
	}
	po, ok := c.observers[key]
	if !ok {
		po = &propertyObserver{}
		c.observers[key] = po
	}
	return po
}

// propertyObserver fans out changes of a single context key.
type propertyObserver struct {
	subscribers binding.SubscriberList
}

func (po *propertyObserver) Subscribe(context string, s binding.Subscriber) {
	po.subscribers.Add(context, s)
}

func (po *propertyObserver) Unsubscribe(context string, s binding.Subscriber) {
	po.subscribers.Remove(context, s)
}

// Subscribed reports the number of registered subscribers; used by hosts
// and tests to verify teardown.
func (po *propertyObserver) Subscribed() int {
	return po.subscribers.Count()
}
