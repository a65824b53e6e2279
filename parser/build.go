package parser

import (
	"github.com/npillmayer/bahr/graph"
	"github.com/npillmayer/bahr/rule"
)

type nodeKind int

const (
	nodeRoot nodeKind = iota
	nodeToken
)

// parserNode is the typed payload stored under the "data" key of a parser
// graph node's Attrs. children indexes outgoing token edges for O(1) walk
// steps; ruleKeys holds the indices (into GraphParser.rules) of every rule
// whose central Tokens run ends exactly at this node, in ascending-cost
// order (the order matchAt tries them in).
type parserNode struct {
	kind     nodeKind
	token    string
	children map[string]graph.Key
	ruleKeys []int
}

// parserEdge is the typed payload of a parser graph edge: the single token
// consumed when walking it.
type parserEdge struct {
	token string
}

func nodeData(g *graph.Graph, k graph.Key) *parserNode {
	attrs, _ := g.Node(k)
	return attrs["data"].(*parserNode)
}

// buildGraph builds the trie-shaped parser graph for rules, which must
// already be sorted by ascending cost. Rules sharing a common prefix of
// central tokens share the corresponding chain of graph nodes; a rule's
// ruleKey (its index in rules) is recorded on the node at the end of its
// token chain.
func buildGraph(rules []rule.ParserRule) (*graph.Graph, graph.Key) {
	g := graph.New()
	root := g.InsertNode(graph.Attrs{"data": &parserNode{kind: nodeRoot, children: map[string]graph.Key{}}})

	for ruleKey, r := range rules {
		cur := root
		for _, tok := range r.Tokens {
			curData := nodeData(g, cur)
			next, ok := curData.children[tok]
			if !ok {
				next = g.InsertNode(graph.Attrs{"data": &parserNode{kind: nodeToken, token: tok, children: map[string]graph.Key{}}})
				g.InsertEdge(cur, next, graph.Attrs{"data": &parserEdge{token: tok}})
				curData.children[tok] = next
			}
			cur = next
		}
		curData := nodeData(g, cur)
		curData.ruleKeys = append(curData.ruleKeys, ruleKey)
	}
	return g, root
}

// matchClassSeq reports whether tokens[start:start+len(classes)] each carry
// the class at their corresponding position in classes — the sequence-window
// check a multi-class PrevClasses/NextClasses constraint needs, since a
// single token generally belongs to only one of several sibling classes and
// so can never stand in for a whole class list by itself. An out-of-range
// window never matches.
func matchClassSeq(ts rule.TokenSet, tokens []string, start int, classes []string) bool {
	if start < 0 || start+len(classes) > len(tokens) {
		return false
	}
	for k, c := range classes {
		if !ts.HasClass(tokens[start+k], c) {
			return false
		}
	}
	return true
}

// onMatchProduction returns the production of the first on-match rule (in
// input order) whose PrevClasses match the token run ending right before
// position i and whose NextClasses match the run starting at i, if any. i is
// the index of the first token of the match about to be tried; tokens[0],
// the leading whitespace sentinel, is valid prev context at i=1, so an
// on-match rule anchored on whitespace can fire on the very first match.
func (p *GraphParser) onMatchProduction(tokens []string, i int) (string, bool) {
	for _, r := range p.onmatch {
		if matchClassSeq(p.tokens, tokens, i-len(r.PrevClasses), r.PrevClasses) &&
			matchClassSeq(p.tokens, tokens, i, r.NextClasses) {
			return r.Production, true
		}
	}
	return "", false
}
