package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query finds the first element below root matching a CSS selector and
// returns its Element wrapper, or nil if nothing matches.
func Query(root *html.Node, selector string) (*Element, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %v", selector, err)
	}
	n := cascadia.Query(root, sel)
	if n == nil {
		return nil, nil
	}
	return ElementOf(n), nil
}

// QueryAll finds all elements below root matching a CSS selector.
func QueryAll(root *html.Node, selector string) ([]*Element, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %v", selector, err)
	}
	nodes := cascadia.QueryAll(root, sel)
	elems := make([]*Element, len(nodes))
	for i, n := range nodes {
		elems[i] = ElementOf(n)
	}
	return elems, nil
}
