package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/stybind/dom/style"
)

// StyleAttr is the attribute holding an element's inline CSS declarations.
const StyleAttr = "style"

// HasStyleAttr returns whether the element carries a style attribute,
// even an empty one.
func (e *Element) HasStyleAttr() bool {
	_, ok := e.Attr(StyleAttr)
	return ok
}

// StyleProperty reads a single CSS declaration from the element's inline
// style. The name must be in hyphenated form ("background-color"). The
// attribute text is authoritative: every call re-parses it, so changes
// made through any code path are visible.
func (e *Element) StyleProperty(name string) (style.Property, bool) {
	for _, kv := range e.inlineStyles() {
		if kv.Key == name {
			return kv.Value, true
		}
	}
	return style.NullStyle, false
}

// SetStyleProperty writes a single CSS declaration into the element's
// inline style, preserving all other declarations. Setting NullStyle
// removes the declaration; removing the last declaration removes the
// style attribute altogether.
func (e *Element) SetStyleProperty(name string, value style.Property) {
	decls := e.inlineStyles()
	out := decls[:0]
	replaced := false
	for _, kv := range decls {
		if kv.Key == name {
			replaced = true
			if value.IsEmpty() {
				continue
			}
			kv.Value = value
		}
		out = append(out, kv)
	}
	if !replaced && !value.IsEmpty() {
		out = append(out, style.KeyValue{Key: name, Value: value})
	}
	if len(out) == 0 {
		e.RemoveAttr(StyleAttr)
		return
	}
	e.SetAttr(StyleAttr, serializeInline(out))
}

// inlineStyles parses the style attribute into its declaration list.
// A malformed attribute yields the declarations up to the malformed one;
// the parse error is traced, not raised, matching browser leniency.
func (e *Element) inlineStyles() []style.KeyValue {
	text, ok := e.Attr(StyleAttr)
	if !ok || strings.TrimSpace(text) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().P("elem", e.NodeName()).Errorf("malformed style attribute %q: %v", text, err)
	}
	kvs := make([]style.KeyValue, 0, len(decls))
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if key == "" {
			continue
		}
		kvs = append(kvs, style.KeyValue{Key: key, Value: style.Property(strings.TrimSpace(d.Value))})
	}
	return kvs
}

func serializeInline(decls []style.KeyValue) string {
	var b strings.Builder
	for i, kv := range decls {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
		b.WriteString(";")
	}
	return b.String()
}
