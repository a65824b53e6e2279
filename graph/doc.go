/*
Package graph implements a minimal directed-graph container, addressable by
dense non-negative integer node keys assigned at insertion.

Every node and every edge carries an attribute record (Attrs, a loosely typed
map, in the style of the dynamic attribute bags the teacher packages keep on
CFSM states and NFA nodes). Edges are not deduplicated by construction;
callers that require uniqueness (the parser-graph builder, the meter-graph
merger) enforce it themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package graph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bahr.graph'.
func tracer() tracing.Trace {
	return tracing.Select("bahr.graph")
}
