/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/stybind/dom"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump writes an element subtree to w as an indented tree, one line per
// element, with attributes and — on their own lines — the declarations of
// the inline style. Text nodes are skipped. Intended output target is a
// test log or a trace.
func Dump(w io.Writer, root *html.Node) error {
	if root == nil {
		return fmt.Errorf("cannot dump nil DOM")
	}
	tree := treeprint.New()
	if root.Type == html.ElementNode {
		describe(tree, root)
	} else {
		for n := root.FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.ElementNode {
				describe(tree, n)
			}
		}
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

func describe(branch treeprint.Tree, n *html.Node) {
	e := dom.ElementOf(n)
	sub := branch.AddBranch(label(e))
	if e.HasStyleAttr() {
		text, _ := e.Attr(dom.StyleAttr)
		sub.AddNode("style: " + text)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			describe(sub, c)
		}
	}
}

func label(e *dom.Element) string {
	var b strings.Builder
	b.WriteString(e.NodeName())
	for _, a := range e.HTMLNode().Attr {
		if a.Key == dom.StyleAttr {
			continue
		}
		fmt.Fprintf(&b, " %s=%q", a.Key, a.Val)
	}
	return b.String()
}
