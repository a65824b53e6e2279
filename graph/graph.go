package graph

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Attrs is a loosely typed attribute bag attached to a node or an edge.
// Concrete packages built on top of graph (parser, meter) define their own
// typed accessors over specific keys instead of type-switching everywhere;
// Attrs exists so Graph itself stays ignorant of what it is the graph of.
type Attrs map[string]interface{}

// Key is a dense, non-negative node identifier assigned at InsertNode time.
type Key int

// edgeRecord is the adjacency-list entry for one outgoing edge.
type edgeRecord struct {
	to    Key
	attrs Attrs
}

// Edge is a (src, dst) pair together with its attributes, as returned by
// enumeration methods.
type Edge struct {
	Src, Dst Key
	Attrs    Attrs
}

// Graph is an addressable collection of nodes and directed edges. Node keys
// are dense and assigned in insertion order, mirroring the Python
// DirectedGraph this is grounded on: node and edge dictionaries plus a flat
// edge list for full enumeration.
type Graph struct {
	nodes []Attrs
	out   map[Key][]edgeRecord // adjacency, preserves insertion order per source
	all   *arraylist.List      // flat list of Edge, insertion order
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		out: make(map[Key][]edgeRecord),
		all: arraylist.New(),
	}
}

// InsertNode adds a new node with the given attributes and returns its key.
func (g *Graph) InsertNode(attrs Attrs) Key {
	if attrs == nil {
		attrs = Attrs{}
	}
	k := Key(len(g.nodes))
	g.nodes = append(g.nodes, attrs)
	return k
}

// InsertEdge adds a directed edge between two existing nodes. It does not
// check for duplicate (src,dst) pairs; callers that must avoid parallel
// edges (the parser-graph builder, the meter-graph merger) keep their own
// record of the edges they have inserted.
func (g *Graph) InsertEdge(src, dst Key, attrs Attrs) {
	if attrs == nil {
		attrs = Attrs{}
	}
	g.out[src] = append(g.out[src], edgeRecord{to: dst, attrs: attrs})
	g.all.Add(Edge{Src: src, Dst: dst, Attrs: attrs})
}

// Node looks up a node's attributes by key. The second return value is false
// if the key is out of range.
func (g *Graph) Node(k Key) (Attrs, bool) {
	if int(k) < 0 || int(k) >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[k], true
}

// NodeCount returns the number of nodes inserted so far.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Edge looks up the attributes of the edge from src to dst. If more than one
// parallel edge exists between src and dst, the first inserted is returned.
func (g *Graph) Edge(src, dst Key) (Attrs, bool) {
	for _, e := range g.out[src] {
		if e.to == dst {
			return e.attrs, true
		}
	}
	return nil, false
}

// HasEdge reports whether any edge from src to dst exists.
func (g *Graph) HasEdge(src, dst Key) bool {
	_, ok := g.Edge(src, dst)
	return ok
}

// EdgesFrom enumerates the outgoing edges of a node, in insertion order.
func (g *Graph) EdgesFrom(src Key) []Edge {
	recs := g.out[src]
	edges := make([]Edge, len(recs))
	for i, r := range recs {
		edges[i] = Edge{Src: src, Dst: r.to, Attrs: r.attrs}
	}
	return edges
}

// Successors returns the destination keys of src's outgoing edges, in
// insertion order. Parallel edges to the same destination appear once per
// edge, matching Python's edge_list semantics.
func (g *Graph) Successors(src Key) []Key {
	recs := g.out[src]
	keys := make([]Key, len(recs))
	for i, r := range recs {
		keys[i] = r.to
	}
	return keys
}

// AllEdges enumerates every edge in the graph, in insertion order.
func (g *Graph) AllEdges() []Edge {
	edges := make([]Edge, 0, g.all.Size())
	it := g.all.Iterator()
	for it.Next() {
		edges = append(edges, it.Value().(Edge))
	}
	return edges
}
