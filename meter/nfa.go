package meter

import (
	"github.com/npillmayer/bahr"
	"github.com/npillmayer/bahr/graph"
)

type nfaKind int

const (
	nfaSplit nfaKind = iota // pure epsilon router: alternation/repetition plumbing
	nfaLiteral
	nfaAccepting
)

type nfaNode struct {
	kind   nfaKind
	symbol rune // valid when kind == nfaLiteral
}

// NFAGraph is a Thompson-construction NFA over graph.Graph: every edge is
// an epsilon transition except that a nfaLiteral node's single outgoing
// edge is understood to be taken only after consuming that node's symbol.
// This lets the whole automaton, split and literal nodes alike, be
// represented with plain unattributed edges.
type NFAGraph struct {
	g *graph.Graph
}

func (ng *NFAGraph) nodeData(k graph.Key) *nfaNode {
	attrs, _ := ng.g.Node(k)
	return attrs["data"].(*nfaNode)
}

func (ng *NFAGraph) newNode(kind nfaKind, symbol rune) graph.Key {
	return ng.g.InsertNode(graph.Attrs{"data": &nfaNode{kind: kind, symbol: symbol}})
}

func (ng *NFAGraph) link(src, dst graph.Key) {
	ng.g.InsertEdge(src, dst, graph.Attrs{})
}

// fragment is a Thompson-construction NFA fragment: a single entry point
// and a single dangling exit, wired into place as fragments compose.
type fragment struct {
	start, accept graph.Key
}

// BuildNFA runs Thompson's construction over a postfix token stream
// (produced by ToPostfix), returning the resulting NFA and its start node.
// The exit of the final fragment is linked to a new accepting node, which
// is part of the returned NFA but not returned separately; call Minimize
// next to obtain a walkable graph.
func BuildNFA(postfix []rune) (*NFAGraph, graph.Key, error) {
	ng := &NFAGraph{g: graph.New()}
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, bahr.NewRegexError("malformed postfix expression: operator with no operand")
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, tok := range postfix {
		switch {
		case isSymbol(tok):
			n1 := ng.newNode(nfaLiteral, tok)
			n2 := ng.newNode(nfaSplit, 0)
			ng.link(n1, n2)
			stack = append(stack, fragment{start: n1, accept: n2})

		case tok == concatOp:
			b, err := pop()
			if err != nil {
				return nil, 0, err
			}
			a, err := pop()
			if err != nil {
				return nil, 0, err
			}
			ng.link(a.accept, b.start)
			stack = append(stack, fragment{start: a.start, accept: b.accept})

		case tok == '|':
			b, err := pop()
			if err != nil {
				return nil, 0, err
			}
			a, err := pop()
			if err != nil {
				return nil, 0, err
			}
			split := ng.newNode(nfaSplit, 0)
			join := ng.newNode(nfaSplit, 0)
			ng.link(split, a.start)
			ng.link(split, b.start)
			ng.link(a.accept, join)
			ng.link(b.accept, join)
			stack = append(stack, fragment{start: split, accept: join})

		case tok == '*':
			a, err := pop()
			if err != nil {
				return nil, 0, err
			}
			split := ng.newNode(nfaSplit, 0)
			ng.link(split, a.start)
			ng.link(a.accept, split)
			stack = append(stack, fragment{start: split, accept: split})

		case tok == '+':
			a, err := pop()
			if err != nil {
				return nil, 0, err
			}
			split := ng.newNode(nfaSplit, 0)
			ng.link(a.accept, split)
			ng.link(split, a.start)
			stack = append(stack, fragment{start: a.start, accept: split})

		case tok == '?':
			a, err := pop()
			if err != nil {
				return nil, 0, err
			}
			split := ng.newNode(nfaSplit, 0)
			join := ng.newNode(nfaSplit, 0)
			ng.link(split, a.start)
			ng.link(split, join)
			ng.link(a.accept, join)
			stack = append(stack, fragment{start: split, accept: join})

		default:
			return nil, 0, bahr.NewRegexError("malformed postfix expression: unexpected token %q", string(tok))
		}
	}

	if len(stack) != 1 {
		return nil, 0, bahr.NewRegexError("malformed postfix expression: %d dangling fragments", len(stack))
	}
	final := stack[0]
	ng.link(final.accept, ng.newNode(nfaAccepting, 0))
	return ng, final.start, nil
}
