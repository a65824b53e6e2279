package meter

import "github.com/npillmayer/bahr/graph"

type minKind int

const (
	minEntry minKind = iota // virtual node; exactly one per minimized graph, no symbol
	minSymbol
	minAccepting
)

type minNode struct {
	kind   minKind
	symbol rune // valid when kind == minSymbol
}

func minData(g *graph.Graph, k graph.Key) *minNode {
	attrs, _ := g.Node(k)
	return attrs["data"].(*minNode)
}

// closureReal returns every nfaLiteral/nfaAccepting node reachable from
// from by a path of pure-epsilon (nfaSplit) edges, including from itself
// if it is already real. This is exactly the "remove Split nodes" step:
// chains of Split-only routing collapse to the set of real states they
// lead to.
func closureReal(ng *NFAGraph, from graph.Key) []graph.Key {
	var result []graph.Key
	seen := map[graph.Key]bool{}
	queue := []graph.Key{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		if ng.nodeData(cur).kind != nfaSplit {
			result = append(result, cur)
			continue
		}
		queue = append(queue, ng.g.Successors(cur)...)
	}
	return result
}

// Minimize collapses an NFA down to its real (symbol-consuming and
// accepting) states, discarding the Split nodes used only to wire
// alternation and repetition. The result is a graph with one virtual
// entry node (no symbol of its own) whose successors are the pattern's
// real start states, and whose literal nodes carry an edge to every real
// node reachable after consuming that literal's symbol.
func Minimize(ng *NFAGraph, start graph.Key) (*graph.Graph, graph.Key) {
	g2 := graph.New()
	entry := g2.InsertNode(graph.Attrs{"data": &minNode{kind: minEntry}})

	old2new := map[graph.Key]graph.Key{}
	ensure := func(old graph.Key) graph.Key {
		if nk, ok := old2new[old]; ok {
			return nk
		}
		d := ng.nodeData(old)
		var nk graph.Key
		if d.kind == nfaAccepting {
			nk = g2.InsertNode(graph.Attrs{"data": &minNode{kind: minAccepting}})
		} else {
			nk = g2.InsertNode(graph.Attrs{"data": &minNode{kind: minSymbol, symbol: d.symbol}})
		}
		old2new[old] = nk
		return nk
	}

	visited := map[graph.Key]bool{}
	var process func(old graph.Key)
	process = func(old graph.Key) {
		if visited[old] {
			return
		}
		visited[old] = true
		if ng.nodeData(old).kind == nfaAccepting {
			return
		}
		succs := ng.g.Successors(old)
		if len(succs) == 0 {
			return
		}
		newKey := ensure(old)
		for _, real := range closureReal(ng, succs[0]) {
			g2.InsertEdge(newKey, ensure(real), graph.Attrs{})
			process(real)
		}
	}

	for _, real := range closureReal(ng, start) {
		g2.InsertEdge(entry, ensure(real), graph.Attrs{})
		process(real)
	}
	return g2, entry
}
