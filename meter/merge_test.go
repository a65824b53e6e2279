package meter

import (
	"testing"

	"github.com/npillmayer/bahr/graph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// collectAccepting gathers every distinct accepting node reachable from k.
func collectAccepting(tg *Translation, k graph.Key, out *[]*TransNode, seen map[graph.Key]bool) {
	if seen[k] {
		return
	}
	seen[k] = true
	if node := transData(tg.Graph, k); node.Kind == transAccepting {
		*out = append(*out, node)
		return
	}
	for _, succ := range tg.Graph.Successors(k) {
		collectAccepting(tg, succ, out, seen)
	}
}

func TestMergeSharesCommonPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	tg := NewTranslation()
	m1 := &Meter{ID: "m1", Pattern: "=-="}
	m2 := &Meter{ID: "m2", Pattern: "=--"}

	for _, m := range []*Meter{m1, m2} {
		postfix, err := ToPostfix(m.Pattern)
		if err != nil {
			t.Fatal(err)
		}
		ng, start, err := BuildNFA(postfix)
		if err != nil {
			t.Fatal(err)
		}
		mg, mgEntry := Minimize(ng, start)
		tg.Merge(mg, mgEntry, m)
	}

	rootSuccs := tg.Graph.Successors(tg.Root)
	if len(rootSuccs) != 1 {
		t.Fatalf("expected the shared '=' prefix to collapse to one root successor, got %d", len(rootSuccs))
	}
	firstSymbolNode := transData(tg.Graph, rootSuccs[0])
	if firstSymbolNode.Kind != transSymbol || firstSymbolNode.Symbol != '=' {
		t.Fatalf("expected the shared root successor to be the '=' node, got %+v", firstSymbolNode)
	}

	// The two meters share their second symbol ('-') and diverge at their
	// third ('=' vs '-'): find the two accepting nodes and confirm
	// each carries exactly its own meter.
	var accepting []*TransNode
	collectAccepting(tg, rootSuccs[0], &accepting, map[graph.Key]bool{})
	if len(accepting) != 2 {
		t.Fatalf("expected 2 accepting nodes, got %d", len(accepting))
	}
	for _, acc := range accepting {
		if len(acc.Meters) != 1 {
			t.Fatalf("expected each accepting node to carry exactly one meter, got %d", len(acc.Meters))
		}
	}
}
