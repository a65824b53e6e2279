package scan

import (
	"github.com/npillmayer/bahr/graph"
)

// item is one pending step of the best-first walk: the translation-graph
// node just reached, the type of its parent (0 for the root), how far into
// the phonetic token sequence the walk has consumed, and the unit matches
// and scan symbols accumulated to get there.
type item struct {
	node           graph.Key
	parentType     rune
	tokenI         int
	matches        []UnitMatch
	nodeMatches    []NodeMatch
	scan           string
	lastProduction string
}

// deque is a minimal double-ended queue of items: pushBack seeds the
// initial work list in translation-graph edge order, pushFront (keeping
// the expansions in rule order) gives each expansion step depth-first
// preference over siblings still waiting, and popFront drives the
// best-first loop.
type deque struct {
	items []item
}

func (d *deque) pushBack(it item) {
	d.items = append(d.items, it)
}

// pushFront inserts items, in their given order, at the head of the deque,
// so that items[0] is the next one popped.
func (d *deque) pushFront(items []item) {
	d.items = append(append([]item{}, items...), d.items...)
}

func (d *deque) popFront() (item, bool) {
	if len(d.items) == 0 {
		return item{}, false
	}
	it := d.items[0]
	d.items = d.items[1:]
	return it, true
}

func (d *deque) empty() bool { return len(d.items) == 0 }

// Scan runs the best-first walk described by the core specification over
// input and returns every metrical reading found, subject to opts.
func (s *Scanner) Scan(input string, opts Options) ([]ScanResult, error) {
	phonetic, origFor, err := s.transcribe(input)
	if err != nil {
		return nil, err
	}

	// phonetic is sentinel-padded by Tokenize (leading and trailing
	// whitespace.Default); the walk matches only the real content between
	// them, and accepts once it reaches the trailing sentinel's index.
	lastIndex := len(phonetic) - 1

	var results []ScanResult
	q := &deque{}
	for _, edge := range s.translation.Graph.EdgesFrom(s.translation.Root) {
		q.pushBack(item{node: edge.Dst, parentType: 0, tokenI: 1})
	}

	for !q.empty() {
		cur, _ := q.popFront()
		node := s.translation.Node(cur.node)

		if node.IsAccepting() {
			if cur.tokenI == lastIndex {
				for _, m := range node.Meters {
					scanStr := cur.scan
					if opts.ShowFeet {
						scanStr = s.findFeet(scanStr)
					}
					res := ScanResult{
						MeterID:   m.ID,
						MeterName: m.Name,
						Scan:      scanStr,
						Matches:   cur.matches,
						Cost:      scanCost(cur.scan),
					}
					if opts.GraphDetails {
						res.NodeMatches = cur.nodeMatches
					}
					results = append(results, res)
				}
				if opts.FirstOnly {
					break
				}
			}
			continue
		}

		nodeType := node.Type()
		p := s.selectParser(cur.parentType, nodeType, cur.lastProduction, len(cur.matches) > 0)

		if cur.tokenI >= lastIndex {
			continue
		}
		matchedRules := p.AllMatches(phonetic, cur.tokenI)
		if len(matchedRules) == 0 {
			continue
		}

		edges := s.translation.Graph.EdgesFrom(cur.node)
		var expansions []item
		for _, mr := range matchedRules {
			origTokens := append([]string{}, origFor[cur.tokenI:cur.tokenI+mr.Length]...)
			unit := UnitMatch{Symbol: nodeType, Production: mr.Production, OrigTokens: origTokens}
			for _, e := range edges {
				next := item{
					node:           e.Dst,
					parentType:     nodeType,
					tokenI:         cur.tokenI + mr.Length,
					matches:        append(append([]UnitMatch{}, cur.matches...), unit),
					scan:           cur.scan + string(nodeType),
					lastProduction: mr.Production,
				}
				if opts.GraphDetails {
					next.nodeMatches = append(append([]NodeMatch{}, cur.nodeMatches...), NodeMatch{UnitMatch: unit, Node: cur.node})
				}
				expansions = append(expansions, next)
			}
		}
		q.pushFront(expansions)
	}

	if s.PostScanFilter != nil && len(results) > 0 {
		results = s.PostScanFilter(results)
	}
	return results, nil
}
