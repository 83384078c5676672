/*
Package expr is a small expression engine for style bindings.

Overview

The binding core (package binding) consumes expressions through an
interface and does not care where they come from. This package provides a
concrete engine good enough for real use and for exercising the binding
machinery: observable contexts as binding scopes, and a parser for a
deliberately small expression language.

The language knows dotted access paths into nested contexts
("theme.accentColor"), single-quoted string literals ("'red'"), a
conditional ("dark ? 'black' : 'white'"), and a value-converter pipe
("price | currency"). Conditionals matter to the binding core: they read
different properties depending on the condition, so re-connecting after a
change must drop the dependencies of the branch no longer taken.

Contexts are the dependency-tracking side: every key of a Context can be
observed individually, and Set notifies observers only on actual change.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stybind.expr'
func tracer() tracing.Trace {
	return tracing.Select("stybind.expr")
}
