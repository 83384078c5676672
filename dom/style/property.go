package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stybind.dom'
func tracer() tracing.Trace {
	return tracing.Select("stybind.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// PropertyOf converts an arbitrary value, e.g. one produced by a binding
// expression, into a Property. nil maps to NullStyle.
func PropertyOf(value interface{}) Property {
	switch v := value.(type) {
	case nil:
		return NullStyle
	case Property:
		return v
	case string:
		return Property(v)
	case fmt.Stringer:
		return Property(v.String())
	}
	return Property(fmt.Sprintf("%v", value))
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// ParseDeclaration splits a single CSS declaration of the form
// "color: red" into a KeyValue. The property key is trimmed and
// lower-cased, the value is trimmed.
func ParseDeclaration(decl string) (KeyValue, error) {
	k, v, found := strings.Cut(decl, ":")
	if !found {
		return KeyValue{}, fmt.Errorf("not a CSS declaration: %q", decl)
	}
	key := strings.ToLower(strings.TrimSpace(k))
	if key == "" {
		return KeyValue{}, fmt.Errorf("CSS declaration without property key: %q", decl)
	}
	return KeyValue{key, Property(strings.TrimSpace(v))}, nil
}
