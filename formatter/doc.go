/*
Package formatter outputs segment trees to a console.

Trees are printed one node per line, indented by depth with box-drawing
characters, and with aggregates aligned to a common column. Leaves, inner
nodes and pending deltas of lazy trees are set in different colors.

Box-drawing characters are of ambiguous width in East Asian contexts.
Alignment is therefore computed from display widths as defined by UAX #11,
in a context which may be derived from the user's environment.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
