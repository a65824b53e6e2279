/*
Package meter builds the merged automaton that package scan walks.

A meter's metrical pattern is given as a regular expression over the
three-letter alphabet {=, -, _} (long, short, uncounted), with the usual
grouping, alternation and repetition operators (|, *, +, ?). Building a
meter proceeds in three stages, each grounded on a classical construction:

  - ToPostfix returns postfix tokens from an infix pattern (shunting-yard).
  - BuildNFA turns postfix tokens into a Thompson-construction NFA.
  - Minimize collapses the NFA's epsilon (Split) structure into a graph
    whose nodes are exactly the symbol-consuming and accepting states.

A Translation combines every meter's minimized graph into one shared
graph: meters agreeing on a non-cyclic prefix share nodes, so the scanner
in package scan explores all of them at once and only branches where the
meters actually differ.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package meter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bahr.meter'.
func tracer() tracing.Trace {
	return tracing.Select("bahr.meter")
}
