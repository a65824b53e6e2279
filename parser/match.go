package parser

import "github.com/npillmayer/bahr/rule"

// matchAt finds the best rule matching the token run starting at position i
// of tokens. "Best" means longest central Tokens run first, and among rules
// tying on length, lowest cost (most specific context constraints) first —
// the same order rules are stored in at each graph node. It returns the
// winning rule's production, the number of tokens it consumes, and whether
// any rule matched at all.
func (p *GraphParser) matchAt(tokens []string, i int) (string, int, bool) {
	all := p.AllMatches(tokens, i)
	if len(all) == 0 {
		return "", 0, false
	}
	return all[0].Production, all[0].Length, true
}

// RuleMatch is one rule matching at a position: its production and how
// many tokens it consumed.
type RuleMatch struct {
	Production string
	Length     int
}

// AllMatches returns every rule matching the token run starting at
// position i, longest central Tokens run first and, within a run length,
// in ascending-cost order — the order package scan's best-first walk
// expects to expand in.
func (p *GraphParser) AllMatches(tokens []string, i int) []RuleMatch {
	type candidate struct {
		depth int
		node  *parserNode
	}
	var candidates []candidate

	cur := p.root
	depth := 0
	for i+depth < len(tokens) {
		curData := nodeData(p.graph, cur)
		next, ok := curData.children[tokens[i+depth]]
		if !ok {
			break
		}
		cur = next
		depth++
		nextData := nodeData(p.graph, cur)
		if len(nextData.ruleKeys) > 0 {
			candidates = append(candidates, candidate{depth: depth, node: nextData})
		}
	}

	var out []RuleMatch
	for c := len(candidates) - 1; c >= 0; c-- {
		cand := candidates[c]
		for _, ruleKey := range cand.node.ruleKeys {
			r := p.rules[ruleKey]
			if p.checkConstraints(tokens, r, i, cand.depth) {
				out = append(out, RuleMatch{Production: r.Production, Length: cand.depth})
			}
		}
	}
	return out
}

// checkConstraints reports whether rule r's context constraints are
// satisfied for a central match occupying tokens[start:start+length].
//
// Per the core specification's §4.2 windowing table, the class window sits
// further out than the token window: PrevClasses occupies the
// len(PrevClasses) positions immediately before the PrevTokens window, and
// NextClasses the positions immediately after the NextTokens window (which
// itself starts right after the central match). Classes are checked
// against the tokens immediately neighbouring the (possibly empty) token
// window, never overlapping it.
func (p *GraphParser) checkConstraints(tokens []string, r rule.ParserRule, start, length int) bool {
	if len(r.PrevTokens) > 0 {
		winStart := start - len(r.PrevTokens)
		if winStart < 0 {
			return false
		}
		for k, tok := range r.PrevTokens {
			if tokens[winStart+k] != tok {
				return false
			}
		}
	}
	if len(r.PrevClasses) > 0 {
		winStart := start - len(r.PrevTokens) - len(r.PrevClasses)
		if winStart < 0 {
			return false
		}
		for k, cls := range r.PrevClasses {
			if !p.tokens.HasClass(tokens[winStart+k], cls) {
				return false
			}
		}
	}

	end := start + length
	if len(r.NextTokens) > 0 {
		if end+len(r.NextTokens) > len(tokens) {
			return false
		}
		for k, tok := range r.NextTokens {
			if tokens[end+k] != tok {
				return false
			}
		}
	}
	if len(r.NextClasses) > 0 {
		classStart := end + len(r.NextTokens)
		if classStart+len(r.NextClasses) > len(tokens) {
			return false
		}
		for k, cls := range r.NextClasses {
			if !p.tokens.HasClass(tokens[classStart+k], cls) {
				return false
			}
		}
	}
	return true
}
