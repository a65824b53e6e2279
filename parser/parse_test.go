package parser

import (
	"testing"

	"github.com/npillmayer/bahr/rule"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func simpleABParser(t *testing.T) *GraphParser {
	tokens := map[string][]string{
		" ": {"ws"},
		"a": {"vowel"},
		"b": {"consonant"},
	}
	p, err := New(tokens, []RuleSource{
		{RuleString: "a", Production: "A"},
		{RuleString: "b", Production: "B"},
		{RuleString: "(b) a", Production: "BA"}, // more specific: a preceded by b
	}, nil, testWhitespace())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTokenizePrependsAndAppendsWhitespaceSentinel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.parser")
	defer teardown()
	//
	p := simpleABParser(t)
	toks, err := p.Tokenize("ab")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{" ", "a", "b", " "}
	if len(toks) != len(want) {
		t.Fatalf("expected %v, got %v", want, toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, toks)
		}
	}
}

func TestTokenizeRejectsUnknownInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.parser")
	defer teardown()
	//
	p := simpleABParser(t)
	if _, err := p.Tokenize("az"); err == nil {
		t.Fatal("expected a tokenisation error for unknown input 'z'")
	}
}

func TestParsePrefersMoreSpecificRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.parser")
	defer teardown()
	//
	p := simpleABParser(t)
	got, err := p.Parse("ba")
	if err != nil {
		t.Fatal(err)
	}
	if got != "BBA" {
		t.Fatalf("expected B then the constrained BA match, got %q", got)
	}
}

func TestParseFallsBackToPlainRuleWithoutContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.parser")
	defer teardown()
	//
	p := simpleABParser(t)
	got, err := p.Parse("a")
	if err != nil {
		t.Fatal(err)
	}
	if got != "A" {
		t.Fatalf("expected A, got %q", got)
	}
}

func TestOnMatchRuleFiresBetweenAdjacentMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.parser")
	defer teardown()
	//
	tokens := map[string][]string{
		" ": {"ws"},
		"a": {"vowel"},
		"b": {"consonant"},
	}
	p, err := New(tokens, []RuleSource{
		{RuleString: "a", Production: "A"},
		{RuleString: "b", Production: "B"},
	}, []OnMatchSource{
		{RuleString: "<consonant> + <vowel>", Production: "-JOIN-"},
	}, testWhitespace())
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Parse("ba")
	if err != nil {
		t.Fatal(err)
	}
	if got != "B-JOIN-A" {
		t.Fatalf("expected B-JOIN-A, got %q", got)
	}
}

func TestConstrainedBuildsRestrictedCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.parser")
	defer teardown()
	//
	p := simpleABParser(t)
	restricted := p.Constrained(func(r rule.ParserRule) bool { return r.Production != "BA" })
	if len(restricted.Rules()) != 2 {
		t.Fatalf("expected 2 rules after excluding BA, got %d", len(restricted.Rules()))
	}
	got, err := restricted.Parse("ba")
	if err != nil {
		t.Fatal(err)
	}
	if got != "BA" {
		t.Fatalf("expected the plain B then A match (BA concatenated), got %q", got)
	}
}
