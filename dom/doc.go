/*
Package dom provides a small DOM-like surface over HTML parse trees.

Overview

Binding CSS style properties requires three platform services which
golang.org/x/net/html does not provide by itself: stable element identity
for parse-tree nodes, attribute access that reports mutations, and a
batched attribute-mutation watch in the manner of the web platform's
MutationObserver. This package supplies all three.

Element wraps an html.Node of type ElementNode. Elements are memoized per
node, so two lookups for the same node yield the identical Element — other
packages key side tables by element identity. All attribute changes must go
through the Element API; a change made this way is recorded and delivered,
batched, to every mutation observer watching the element.

The inline style attribute is exposed as a surface of individual CSS
declarations. Reads parse the current attribute value, writes serialize the
updated declaration list back, so the attribute text stays the single
source of truth.

The package follows a cooperative single-goroutine model: mutation records
accumulate until the host calls FlushMutations, which stands in for the
platform's microtask-batched delivery.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stybind.dom'
func tracer() tracing.Trace {
	return tracing.Select("stybind.dom")
}
