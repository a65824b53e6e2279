package graph

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertNodeAssignsDenseKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.graph")
	defer teardown()
	//
	g := New()
	a := g.InsertNode(Attrs{"type": "root"})
	b := g.InsertNode(Attrs{"type": "="})
	if a != 0 || b != 1 {
		t.Fatalf("expected dense keys 0,1; got %d,%d", a, b)
	}
	if g.NodeCount() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NodeCount())
	}
}

func TestInsertEdgeAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.graph")
	defer teardown()
	//
	g := New()
	a := g.InsertNode(nil)
	b := g.InsertNode(nil)
	g.InsertEdge(a, b, Attrs{"token": "x"})

	attrs, ok := g.Edge(a, b)
	if !ok {
		t.Fatal("expected edge a->b to exist")
	}
	if attrs["token"] != "x" {
		t.Fatalf("expected token attr %q, got %v", "x", attrs["token"])
	}
	if g.HasEdge(b, a) {
		t.Fatal("did not expect reverse edge")
	}
}

func TestEdgesFromPreservesInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.graph")
	defer teardown()
	//
	g := New()
	root := g.InsertNode(nil)
	var children []Key
	for i := 0; i < 5; i++ {
		c := g.InsertNode(nil)
		children = append(children, c)
		g.InsertEdge(root, c, nil)
	}
	got := g.Successors(root)
	if len(got) != len(children) {
		t.Fatalf("expected %d successors, got %d", len(children), len(got))
	}
	for i := range children {
		if got[i] != children[i] {
			t.Fatalf("successor %d out of order: want %d, got %d", i, children[i], got[i])
		}
	}
}

func TestAllEdgesEnumeratesEverything(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.graph")
	defer teardown()
	//
	g := New()
	a, b, c := g.InsertNode(nil), g.InsertNode(nil), g.InsertNode(nil)
	g.InsertEdge(a, b, nil)
	g.InsertEdge(b, c, nil)
	g.InsertEdge(a, c, nil)
	if n := len(g.AllEdges()); n != 3 {
		t.Fatalf("expected 3 edges total, got %d", n)
	}
}

func TestParallelEdgesAreNotDeduplicated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.graph")
	defer teardown()
	//
	g := New()
	a, b := g.InsertNode(nil), g.InsertNode(nil)
	g.InsertEdge(a, b, Attrs{"n": 1})
	g.InsertEdge(a, b, Attrs{"n": 2})
	if n := len(g.EdgesFrom(a)); n != 2 {
		t.Fatalf("expected 2 parallel edges preserved, got %d", n)
	}
}
