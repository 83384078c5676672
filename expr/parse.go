package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stybind/binding"
	"github.com/npillmayer/stybind/dom/style"
)

// Parse parses a binding expression. The language, smallest first:
//
//     'red'                     string literal
//     accentColor               context key
//     theme.accentColor         key of a nested context
//     dark ? 'black' : 'white'  conditional
//     price | currency          value-converter pipe
//
// A parse happens once per declared binding attribute; evaluation never
// re-parses.
func Parse(src string) (binding.Expression, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return nil, fmt.Errorf("empty binding expression")
	}
	if i := topLevelIndexLast(s, '|'); i >= 0 {
		name := strings.TrimSpace(s[i+1:])
		if !isIdentifier(name) {
			return nil, fmt.Errorf("invalid converter name %q in %q", name, src)
		}
		inner, err := Parse(s[:i])
		if err != nil {
			return nil, err
		}
		return &pipe{inner: inner, converter: name}, nil
	}
	if i := topLevelIndex(s, '?'); i >= 0 {
		j := matchingColon(s, i+1)
		if j < 0 {
			return nil, fmt.Errorf("conditional without ':' in %q", src)
		}
		cond, err := Parse(s[:i])
		if err != nil {
			return nil, err
		}
		yes, err := Parse(s[i+1 : j])
		if err != nil {
			return nil, err
		}
		no, err := Parse(s[j+1:])
		if err != nil {
			return nil, err
		}
		return &conditional{cond: cond, yes: yes, no: no}, nil
	}
	return parsePrimary(s, src)
}

func parsePrimary(s string, src string) (binding.Expression, error) {
	if strings.HasPrefix(s, "'") {
		if len(s) < 2 || !strings.HasSuffix(s, "'") || strings.ContainsRune(s[1:len(s)-1], '\'') {
			return nil, fmt.Errorf("malformed string literal %s in %q", s, src)
		}
		return &Literal{value: style.Property(s[1 : len(s)-1])}, nil
	}
	segs := strings.Split(s, ".")
	for i, seg := range segs {
		segs[i] = strings.TrimSpace(seg)
		if !isIdentifier(segs[i]) {
			return nil, fmt.Errorf("invalid path segment %q in %q", seg, src)
		}
	}
	return &AccessPath{path: segs}, nil
}

// topLevelIndex finds the first occurrence of c outside string literals.
func topLevelIndex(s string, c byte) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\'':
			quoted = !quoted
		case s[i] == c && !quoted:
			return i
		}
	}
	return -1
}

// topLevelIndexLast finds the last occurrence of c outside string literals.
func topLevelIndexLast(s string, c byte) int {
	quoted := false
	last := -1
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\'':
			quoted = !quoted
		case s[i] == c && !quoted:
			last = i
		}
	}
	return last
}

// matchingColon finds the ':' belonging to the '?' just before from,
// skipping over nested conditionals. Conditionals nest right-associative.
func matchingColon(s string, from int) int {
	quoted := false
	depth := 0
	for i := from; i < len(s); i++ {
		switch {
		case s[i] == '\'':
			quoted = !quoted
		case quoted:
		case s[i] == '?':
			depth++
		case s[i] == ':':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
