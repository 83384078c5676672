/*
Package stybind binds CSS style properties of HTML elements to observable
state, in the manner of template binding frameworks: an attribute like

    background-color-two-way="theme.accentColor"

declares that the background-color of the carrying element and the
accentColor key of a bound context are to be kept in sync, in both
directions. The heavy lifting lives in the sub-packages — package binding
for observers and bindings, package dom for the element surface, package
expr for expressions. This package is the registration layer tying them
together: a Registry maps binding-attribute suffixes to binding modes and
produces a StyleExpression per declared attribute, which in turn produces
one StyleBinding per target element.

Registration is an explicit call on a Registry value instead of ambient
global state; hosts create one registry during wiring and keep it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stybind

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/stybind/binding"
	"github.com/npillmayer/stybind/dom"
	"github.com/npillmayer/stybind/dom/style"
)

// Parser turns a binding-attribute value into an expression. Package expr
// provides one; hosts with their own expression engine plug it in here.
type Parser interface {
	Parse(src string) (binding.Expression, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(src string) (binding.Expression, error)

// Parse is part of interface Parser.
func (f ParserFunc) Parse(src string) (binding.Expression, error) {
	return f(src)
}

// Registry resolves declared binding attributes. The attribute name
// carries the CSS property plus an optional mode suffix:
//
//     color            to-view (default)
//     color-one-time   one-time
//     color-two-way    two-way
//     color-from-view  from-view
//
// All bindings produced through one registry share one ObserverLocator,
// which is what deduplicates style observers across bindings.
type Registry struct {
	mu      sync.RWMutex
	modes   map[string]binding.Mode
	parser  Parser
	locator *binding.ObserverLocator
	lookups binding.LookupFunctions
}

// NewRegistry creates a registry with the four default mode suffixes
// registered ("", "-to-view" and "-one-way" for to-view, "-one-time",
// "-two-way", "-from-view").
func NewRegistry(parser Parser) *Registry {
	r := &Registry{
		modes:   make(map[string]binding.Mode),
		parser:  parser,
		locator: binding.NewObserverLocator(),
	}
	r.RegisterMode("", binding.ToView)
	r.RegisterMode("-to-view", binding.ToView)
	r.RegisterMode("-one-way", binding.ToView)
	r.RegisterMode("-one-time", binding.OneTime)
	r.RegisterMode("-two-way", binding.TwoWay)
	r.RegisterMode("-from-view", binding.FromView)
	return r
}

// RegisterMode adds (or replaces) a mode for an attribute-name suffix.
func (r *Registry) RegisterMode(suffix string, mode binding.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes[suffix] = mode
}

// SetLookupFunctions installs the converter lookup handed to every
// binding the registry produces.
func (r *Registry) SetLookupFunctions(lf binding.LookupFunctions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = lf
}

// splitSuffix strips the longest registered mode suffix off an attribute
// name. The empty suffix always matches.
func (r *Registry) splitSuffix(attrName string) (property string, mode binding.Mode) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	best := ""
	mode = r.modes[""]
	for suffix, m := range r.modes {
		if suffix == "" || len(suffix) <= len(best) {
			continue
		}
		if p := strings.TrimSuffix(attrName, suffix); p != attrName && p != "" {
			best, property, mode = suffix, p, m
		}
	}
	if best == "" {
		property = attrName
	}
	return property, mode
}

// StyleExpression resolves one declared binding attribute: the attribute
// name determines CSS property and mode, the attribute value is parsed
// into an expression — once; every binding created from the result reuses
// the parsed expression.
func (r *Registry) StyleExpression(attrName, attrValue string) (*StyleExpression, error) {
	name := strings.TrimSpace(attrName)
	if name == "" {
		return nil, fmt.Errorf("empty binding attribute name")
	}
	property, mode := r.splitSuffix(name)
	parsed, err := r.parser.Parse(attrValue)
	if err != nil {
		return nil, fmt.Errorf("binding attribute %q: %v", attrName, err)
	}
	return &StyleExpression{
		property: style.Hyphenate(property),
		mode:     mode,
		expr:     parsed,
		registry: r,
	}, nil
}

// StyleExpression is the per-declared-attribute artifact: CSS property,
// mode and the (once-)parsed expression. It is a factory for bindings.
type StyleExpression struct {
	property string // hyphenated
	mode     binding.Mode
	expr     binding.Expression
	registry *Registry
}

// Property returns the target CSS property in hyphenated form.
func (sx *StyleExpression) Property() string {
	return sx.property
}

// Mode returns the binding mode encoded in the attribute-name suffix.
func (sx *StyleExpression) Mode() binding.Mode {
	return sx.mode
}

// CreateBinding instantiates a binding of this expression to a target
// element. Called once per template instantiation of the declaring
// attribute.
func (sx *StyleExpression) CreateBinding(target *dom.Element) *binding.StyleBinding {
	sx.registry.mu.RLock()
	lookups := sx.registry.lookups
	sx.registry.mu.RUnlock()
	return binding.NewStyleBinding(sx.expr, target, sx.property, sx.mode,
		sx.registry.locator, lookups)
}
