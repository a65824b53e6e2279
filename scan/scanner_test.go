package scan

import (
	"testing"

	"github.com/npillmayer/bahr/meter"
	"github.com/npillmayer/bahr/parser"
	"github.com/npillmayer/bahr/rule"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildTestScanner wires up a minimal three-parser scanner whose alphabet
// is just the letter "a" (transcribed to phonetic token "a", scannable as
// either one long unit or one short unit) over a two-meter list: "=" and
// "-", so a single "a" input is ambiguous between them.
func buildTestScanner(t *testing.T) *Scanner {
	t.Helper()
	ws := rule.Whitespace{Default: " ", TokenClass: "ws", Consolidate: true}

	transcriptionTokens := map[string][]string{" ": {"ws"}, "a": {"letter"}}
	transcription, err := parser.New(transcriptionTokens, []parser.RuleSource{
		{RuleString: "a", Production: "a"},
	}, nil, ws)
	if err != nil {
		t.Fatal(err)
	}

	unitTokens := map[string][]string{" ": {"ws"}, "a": {"letter"}}
	long, err := parser.New(unitTokens, []parser.RuleSource{
		{RuleString: "a", Production: "LONG_A"},
	}, nil, ws)
	if err != nil {
		t.Fatal(err)
	}
	short, err := parser.New(unitTokens, []parser.RuleSource{
		{RuleString: "a", Production: "SHORT_A"},
	}, nil, ws)
	if err != nil {
		t.Fatal(err)
	}

	meters := []*meter.Meter{
		{ID: "heavy", Name: "Heavy", Pattern: "="},
		{ID: "light", Name: "Light", Pattern: "-"},
	}

	s, err := New(transcription, long, short, meters, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestScanFindsBothMeterReadings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.scan")
	defer teardown()
	//
	s := buildTestScanner(t)
	results, err := s.Scan("a", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 readings (heavy and light), got %d: %+v", len(results), results)
	}
	seen := map[string]bool{}
	for _, r := range results {
		seen[r.MeterID] = true
	}
	if !seen["heavy"] || !seen["light"] {
		t.Fatalf("expected both meter ids present, got %+v", results)
	}
}

func TestScanFirstOnlyStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.scan")
	defer teardown()
	//
	s := buildTestScanner(t)
	results, err := s.Scan("a", Options{FirstOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 result with FirstOnly, got %d", len(results))
	}
}

func TestScanRejectsMismatchedAlphabets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.scan")
	defer teardown()
	//
	ws := rule.Whitespace{Default: " ", TokenClass: "ws", Consolidate: true}
	transcription, _ := parser.New(map[string][]string{" ": {"ws"}, "a": {"letter"}},
		[]parser.RuleSource{{RuleString: "a", Production: "a"}}, nil, ws)
	long, _ := parser.New(map[string][]string{" ": {"ws"}, "a": {"letter"}},
		[]parser.RuleSource{{RuleString: "a", Production: "LONG_A"}}, nil, ws)
	short, _ := parser.New(map[string][]string{" ": {"ws"}, "b": {"letter"}},
		[]parser.RuleSource{{RuleString: "b", Production: "SHORT_B"}}, nil, rule.Whitespace{Default: " ", TokenClass: "ws"})

	_, err := New(transcription, long, short, []*meter.Meter{{ID: "x", Pattern: "="}}, nil)
	if err == nil {
		t.Fatal("expected an error for mismatched long/short alphabets")
	}
}
