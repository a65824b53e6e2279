package meter

import (
	"testing"

	"github.com/npillmayer/bahr/graph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// simulate runs a minimized meter graph as an NFA over a literal symbol
// string, for testing only: real scanning (package scan) walks the merged
// Translation graph instead of running this simulation.
func simulate(g *graph.Graph, entry graph.Key, input []rune) bool {
	current := map[graph.Key]bool{}
	for _, k := range g.Successors(entry) {
		current[k] = true
	}
	for _, sym := range input {
		next := map[graph.Key]bool{}
		for k := range current {
			if minData(g, k).kind == minSymbol && minData(g, k).symbol == sym {
				for _, succ := range g.Successors(k) {
					next[succ] = true
				}
			}
		}
		current = next
		if len(current) == 0 {
			return false
		}
	}
	for k := range current {
		if minData(g, k).kind == minAccepting {
			return true
		}
	}
	return false
}

func buildMinimized(t *testing.T, pattern string) (*graph.Graph, graph.Key) {
	t.Helper()
	postfix, err := ToPostfix(pattern)
	if err != nil {
		t.Fatal(err)
	}
	ng, start, err := BuildNFA(postfix)
	if err != nil {
		t.Fatal(err)
	}
	return Minimize(ng, start)
}

func TestMinimizeConcatMatchesExactSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	g, entry := buildMinimized(t, "=-")
	if !simulate(g, entry, []rune("=-")) {
		t.Fatal("expected \"=-\" to match pattern =-")
	}
	if simulate(g, entry, []rune("=")) {
		t.Fatal("expected \"=\" not to match pattern =-")
	}
}

func TestMinimizeAlternation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	g, entry := buildMinimized(t, "=|-")
	if !simulate(g, entry, []rune("=")) || !simulate(g, entry, []rune("-")) {
		t.Fatal("expected both branches of =|- to match")
	}
	if simulate(g, entry, []rune("_")) {
		t.Fatal("expected \"_\" not to match =|-")
	}
}

func TestMinimizeStarAllowsZeroOrMoreRepeats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	g, entry := buildMinimized(t, "=*-")
	for _, s := range []string{"-", "=-", "==-", "===-"} {
		if !simulate(g, entry, []rune(s)) {
			t.Fatalf("expected %q to match =*-", s)
		}
	}
	if simulate(g, entry, []rune("=")) {
		t.Fatal("expected \"=\" alone not to match =*-")
	}
}

func TestMinimizePlusRequiresAtLeastOne(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	g, entry := buildMinimized(t, "=+-")
	if simulate(g, entry, []rune("-")) {
		t.Fatal("expected \"-\" alone not to match =+-")
	}
	if !simulate(g, entry, []rune("=-")) || !simulate(g, entry, []rune("==-")) {
		t.Fatal("expected one or more '=' followed by '-' to match =+-")
	}
}

func TestMinimizeOptional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	g, entry := buildMinimized(t, "=?-")
	if !simulate(g, entry, []rune("-")) || !simulate(g, entry, []rune("=-")) {
		t.Fatal("expected both \"-\" and \"=-\" to match =?-")
	}
	if simulate(g, entry, []rune("==-")) {
		t.Fatal("expected \"==-\" not to match =?-")
	}
}
