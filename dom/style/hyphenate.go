package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"
	"unicode"
)

// CSS property names come in two spellings: the hyphenated form used in
// stylesheets and style attributes ("background-color"), and the camel-case
// form used by scripting APIs and binding declarations ("backgroundColor").
// Observers are keyed by the hyphenated form, so every property name funnels
// through Hyphenate before it is used as a key.

var hyphenated = struct {
	sync.RWMutex
	m map[string]string
}{m: make(map[string]string)}

// Hyphenate converts a camel-case CSS property name to its hyphenated
// form, e.g. "backgroundColor" => "background-color". Names already in
// hyphenated (or all lower-case) form are returned unchanged.
//
// Results are memoized process-wide: repeated calls with the same name
// return the identical string. The key space is finite and stable, so the
// cache is never invalidated.
func Hyphenate(name string) string {
	hyphenated.RLock()
	h, ok := hyphenated.m[name]
	hyphenated.RUnlock()
	if ok {
		return h
	}
	h = hyphenate(name)
	tracer().P("key", name).Debugf("hyphenated CSS property name to %s", h)
	hyphenated.Lock()
	// a racing writer may have beaten us; keep the first entry so the
	// identity guarantee holds
	if first, ok := hyphenated.m[name]; ok {
		h = first
	} else {
		hyphenated.m[name] = h
	}
	hyphenated.Unlock()
	return h
}

func hyphenate(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
