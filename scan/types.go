package scan

import (
	"github.com/npillmayer/bahr/graph"
	"github.com/npillmayer/bahr/meter"
)

// UnitMatch records one rule application the scanner folded into a scan: the
// metrical symbol it realized, the production the deciding parser rule
// emitted, and the slice of original-input tokens that production covers.
// Each phonetic token's original text is assigned in order, one
// transcription match per phonetic token (see transcribe), so concatenating
// OrigTokens across every UnitMatch of a ScanResult reproduces the input
// only when every transcription match yields exactly one phonetic token;
// input text that no transcription rule matched is not included.
type UnitMatch struct {
	Symbol     rune     `json:"symbol"`
	Production string   `json:"production"`
	OrigTokens []string `json:"orig_tokens"`
}

// NodeMatch extends UnitMatch with the translation-graph node the step
// landed on, for callers that asked for graph detail (Options.GraphDetails).
type NodeMatch struct {
	UnitMatch
	Node graph.Key `json:"node"`
}

// ScanResult is one candidate metrical reading of a line.
type ScanResult struct {
	MeterID     string      `json:"meter_id"`
	MeterName   string      `json:"meter_name"`
	Scan        string      `json:"scan"` // the symbol sequence, e.g. "=-=--", feet-separated if requested
	Matches     []UnitMatch `json:"matches"`
	NodeMatches []NodeMatch `json:"node_matches,omitempty"` // populated alongside Matches when Options.GraphDetails is set
	Cost        int         `json:"cost"`                   // sum(costOf(sym)), used by the default post-scan filter
}

// costOf is the per-symbol weight used by the default post-scan filter:
// long units are the cheapest, so ties between ambiguous scans favour the
// heavy-syllable reading.
func costOf(sym rune) int {
	switch sym {
	case '=':
		return 10
	case '-':
		return 20
	case '_':
		return 20
	}
	return 0
}

func scanCost(scan string) int {
	cost := 0
	for _, r := range scan {
		cost += costOf(r)
	}
	return cost
}

// Options controls one Scan call.
type Options struct {
	FirstOnly    bool // stop at the first accepting scan found
	GraphDetails bool // populate NodeMatches
	ShowFeet     bool // insert foot separators into Scan via findFeet
}

// Option narrows a meter list before a Scanner is built from it, e.g. to
// scan against a named subset of a larger bundled meters_list document
// rather than against every meter it contains.
type Option func([]*meter.Meter) []*meter.Meter

// WithMeterFilter keeps only the meters keep reports true for.
func WithMeterFilter(keep func(*meter.Meter) bool) Option {
	return func(meters []*meter.Meter) []*meter.Meter {
		out := make([]*meter.Meter, 0, len(meters))
		for _, m := range meters {
			if keep(m) {
				out = append(out, m)
			}
		}
		return out
	}
}

// ApplyOptions runs every option over meters in order.
func ApplyOptions(meters []*meter.Meter, opts ...Option) []*meter.Meter {
	for _, opt := range opts {
		meters = opt(meters)
	}
	return meters
}
