/*
Package bahr scans lines of transliterated Urdu/Hindi verse and reports every
metrical pattern (meter) a line could realise.

A meter is a regular expression over three metrical-unit symbols: '=' (a heavy
or long syllable), '-' (a light or short syllable), and '_' (an optional
uncounted short immediately preceding a word boundary). A scan is a
decomposition of a line into a sequence of those symbols that matches some
registered meter's pattern end-to-end.

Package structure:

■ graph: a minimal directed-graph primitive used by both the rule-matching
parser graphs and the meter automata.

■ rule: ParserRule/OnMatchRule/Whitespace types, rule-string surface syntax,
and rule cost.

■ parser: GraphParser, a longest-pattern/lowest-cost token rewriter driven by
a parser graph.

■ meter: converts a meter regular expression into a minimised automaton, and
merges per-meter automata into a single translation graph.

■ scan: Scanner, which drives the translation graph in best-first order,
invoking long/short parsers (or pruned variants of them) at each step.

■ config: loads the YAML documents (tokens, rules, onmatch rules, whitespace,
constraints, meters list) that parameterise a Scanner.

The root package holds cross-cutting types used throughout: the metrical-unit
symbols and the error kinds of the core specification.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bahr
