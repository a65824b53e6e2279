package meter

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/bahr/graph"
)

type transKind int

const (
	transEntry transKind = iota
	transSymbol
	transAccepting
)

// TransNode is the typed payload of a Translation graph node.
type TransNode struct {
	Kind   transKind
	Symbol rune     // valid when Kind == transSymbol
	Meters []*Meter // valid when Kind == transAccepting: every meter this node accepts for
}

func transData(g *graph.Graph, k graph.Key) *TransNode {
	attrs, _ := g.Node(k)
	return attrs["data"].(*TransNode)
}

// IsRoot reports whether the node is the translation graph's virtual root
// (type 0 in the core specification's terms).
func (n TransNode) IsRoot() bool { return n.Kind == transEntry }

// IsAccepting reports whether the node is a meter-accepting node.
func (n TransNode) IsAccepting() bool { return n.Kind == transAccepting }

// Type returns the node's type symbol for constraint lookups: '=', '-' or
// '_' for a symbol node, or the zero rune for the root.
func (n TransNode) Type() rune {
	if n.Kind == transSymbol {
		return n.Symbol
	}
	return 0
}

// Node returns the node data for k.
func (tg *Translation) Node(k graph.Key) TransNode {
	return *transData(tg.Graph, k)
}

// Translation is the shared graph scan walks: every meter's minimized
// graph merged together, sharing nodes along any prefix the meters agree
// on structurally.
type Translation struct {
	Graph *graph.Graph
	Root  graph.Key
}

// NewTranslation creates an empty Translation with just its entry node.
func NewTranslation() *Translation {
	g := graph.New()
	root := g.InsertNode(graph.Attrs{"data": &TransNode{Kind: transEntry}})
	return &Translation{Graph: g, Root: root}
}

// cyclicNodes returns the set of nodes of a minimized meter-graph that lie
// on some cycle, found by DFS with an explicit recursion stack: a back
// edge to a node currently on the stack marks every node on the stack
// between there and here as cyclic.
func cyclicNodes(g *graph.Graph, start graph.Key) map[graph.Key]bool {
	cyclic := map[graph.Key]bool{}
	onStack := map[graph.Key]bool{}
	stack := []graph.Key{}
	visited := map[graph.Key]bool{}

	var dfs func(n graph.Key)
	dfs = func(n graph.Key) {
		visited[n] = true
		onStack[n] = true
		stack = append(stack, n)
		for _, succ := range g.Successors(n) {
			if onStack[succ] {
				// succ..n is a cycle; mark everyone from succ to the top.
				for i := len(stack) - 1; i >= 0; i-- {
					cyclic[stack[i]] = true
					if stack[i] == succ {
						break
					}
				}
				continue
			}
			if !visited[succ] {
				dfs(succ)
			}
		}
		stack = stack[:len(stack)-1]
		onStack[n] = false
	}
	dfs(start)
	return cyclic
}

// Merge folds a meter's minimized graph into the Translation, sharing
// nodes along the non-cyclic prefix the meter agrees with what has already
// been merged (same symbol, same position), and branching fresh nodes as
// soon as either the meter diverges or enters a cycle. All of the meter's
// own accepting expansions (there is exactly one per Minimize'd graph)
// become a single Translation accepting node carrying the meter's
// metadata. Only symbol nodes are looked up for sharing, so every meter
// gets a fresh accepting node of its own; accepting nodes are never shared
// between meters.
func (tg *Translation) Merge(mg *graph.Graph, mgEntry graph.Key, m *Meter) {
	cyclic := cyclicNodes(mg, mgEntry)
	mapped := map[graph.Key]graph.Key{mgEntry: tg.Root}

	// insertEdgeOnce dedupes edges by structural identity (src, dst) so that two
	// distinct meter-graph successors collapsing onto the same shared
	// Translation node never produce a parallel duplicate edge.
	seenEdges := map[string]bool{}
	insertEdgeOnce := func(src, dst graph.Key) {
		key, err := structhash.Hash(struct{ Src, Dst graph.Key }{src, dst}, 1)
		if err != nil || !seenEdges[key] {
			seenEdges[key] = true
			tg.Graph.InsertEdge(src, dst, graph.Attrs{})
		}
	}

	var walk func(mNode graph.Key, tNode graph.Key, shareable bool)
	walk = func(mNode, tNode graph.Key, shareable bool) {
		for _, succ := range mg.Successors(mNode) {
			// succ was already reached earlier in this same meter's walk
			// (a loop back-edge, inside or outside a cycle): just wire the
			// edge to the node already created for it, never revisit.
			if already, ok := mapped[succ]; ok {
				insertEdgeOnce(tNode, already)
				continue
			}

			sData := minData(mg, succ)
			nextShareable := shareable && !cyclic[succ]

			var tSucc graph.Key
			found := false
			if nextShareable {
				for _, e := range tg.Graph.EdgesFrom(tNode) {
					td := transData(tg.Graph, e.Dst)
					if sData.kind == minSymbol && td.Kind == transSymbol && td.Symbol == sData.symbol {
						tSucc, found = e.Dst, true
						break
					}
				}
			}
			if !found {
				switch sData.kind {
				case minAccepting:
					tSucc = tg.Graph.InsertNode(graph.Attrs{"data": &TransNode{Kind: transAccepting, Meters: []*Meter{m}}})
				default:
					tSucc = tg.Graph.InsertNode(graph.Attrs{"data": &TransNode{Kind: transSymbol, Symbol: sData.symbol}})
				}
				insertEdgeOnce(tNode, tSucc)
			} else if transData(tg.Graph, tSucc).Kind == transAccepting {
				transData(tg.Graph, tSucc).Meters = append(transData(tg.Graph, tSucc).Meters, m)
			}

			mapped[succ] = tSucc
			if sData.kind != minAccepting {
				walk(succ, tSucc, nextShareable)
			}
		}
	}
	walk(mgEntry, tg.Root, true)
}
