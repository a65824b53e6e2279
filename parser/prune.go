package parser

import "github.com/npillmayer/bahr/rule"

// Constrained returns a new GraphParser built from the subset of p's rules
// for which keep returns true, sharing p's token set, on-match rules and
// whitespace settings. Package scan uses this to derive the long- and
// short-unit parser variants it selects during a walk by neighbouring node
// type and production, without re-validating or re-parsing rule strings
// that already passed validation once in p.
func (p *GraphParser) Constrained(keep func(rule.ParserRule) bool) *GraphParser {
	kept := make([]rule.ParserRule, 0, len(p.rules))
	for _, r := range p.rules {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	g, root := buildGraph(kept)
	return &GraphParser{
		tokens:       p.tokens,
		rawTokens:    p.rawTokens,
		rules:        kept,
		onmatch:      p.onmatch,
		whitespace:   p.whitespace,
		sortedTokens: p.sortedTokens,
		graph:        g,
		root:         root,
	}
}
