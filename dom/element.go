package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"golang.org/x/net/html"
)

// Element wraps an HTML parse-tree node of type ElementNode and mediates
// all attribute access to it. Clients must not modify the underlying
// node's attributes directly, otherwise mutation observers will not see
// the change.
type Element struct {
	node     *html.Node
	watchers []watchRegistration
}

type watchRegistration struct {
	observer *MutationObserver
	options  ObserveOptions
}

// elements memoizes the Element wrapper per html.Node. Go has no weak
// references, therefore entries live until Discard is called for the node
// (or forever, which for document-lifetime nodes is the same thing).
var elements = make(map[*html.Node]*Element)

// ElementOf returns the Element for an HTML node, creating it on first
// use. Repeated calls with the same node return the identical Element.
// ElementOf panics if called for a non-element node, which is an error
// in the calling code.
func ElementOf(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		panic(fmt.Sprintf("dom: not an element node: %v", n))
	}
	if e, ok := elements[n]; ok {
		return e
	}
	e := &Element{node: n}
	elements[n] = e
	return e
}

// Discard drops the memoized Element for a node. It is the explicit
// teardown hook for hosts that remove nodes from a living document.
func Discard(n *html.Node) {
	delete(elements, n)
}

// HTMLNode returns the underlying HTML parse-tree node.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// NodeName returns the tag name of the element, e.g. "div".
func (e *Element) NodeName() string {
	return e.node.Data
}

func (e *Element) String() string {
	return "<" + e.node.Data + ">"
}

// Attr returns the value of an attribute and whether the attribute is
// present at all.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute value, creating the attribute if necessary.
// Watching mutation observers receive a record for the change.
func (e *Element) SetAttr(name string, value string) {
	old, present := e.Attr(name)
	if present && old == value {
		return
	}
	if present {
		for i := range e.node.Attr {
			if e.node.Attr[i].Key == name {
				e.node.Attr[i].Val = value
				break
			}
		}
	} else {
		e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
	}
	tracer().P("elem", e.NodeName()).Debugf("set attribute %s=%q", name, value)
	e.record(name, old, present)
}

// RemoveAttr removes an attribute. Removing an absent attribute is a no-op
// and produces no mutation record.
func (e *Element) RemoveAttr(name string) {
	old, present := e.Attr(name)
	if !present {
		return
	}
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
	tracer().P("elem", e.NodeName()).Debugf("removed attribute %s", name)
	e.record(name, old, true)
}

// record hands an attribute change to every watching observer whose
// filter matches.
func (e *Element) record(name string, old string, hadOld bool) {
	for _, w := range e.watchers {
		if !w.options.matches(name) {
			continue
		}
		rec := MutationRecord{Target: e, AttrName: name}
		if hadOld && w.options.AttributeOldValue {
			rec.OldValue = old
			rec.HasOldValue = true
		}
		w.observer.enqueue(rec)
	}
}
