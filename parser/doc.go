/*
Package parser implements GraphParser, a longest-pattern/lowest-cost token
rewriter. A GraphParser converts an input string into token productions by
walking a trie-shaped parser graph built from an ordered set of rules; at
each position it selects the best-matching rule honouring context
constraints (neighbouring tokens and token classes).

Three independent GraphParser instances are combined by package scan into a
working metrical scanner: a transcription parser (input characters to
phonetic tokens), a long-unit parser (phonetic tokens to '=' productions),
and a short-unit parser (phonetic tokens to '-'/'_' productions).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bahr.parser'.
func tracer() tracing.Trace {
	return tracing.Select("bahr.parser")
}
