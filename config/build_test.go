package config

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const testDocYAML = `
tokens:
  " ": ["ws"]
  "a": ["vowel"]
  "b": ["consonant"]
rules:
  - "a": "A"
  - "b": "B"
onmatch_rules: []
whitespace:
  default: " "
  token_class: "ws"
  consolidate: true
`

func TestLoadAndBuildParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.config")
	defer teardown()
	//
	doc, err := LoadBytes([]byte(testDocYAML))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(doc.Rules))
	}
	p, err := BuildParser(doc)
	if err != nil {
		t.Fatal(err)
	}
	out, err := p.Parse("ab")
	if err != nil {
		t.Fatal(err)
	}
	if out != "AB" {
		t.Fatalf("expected %q, got %q", "AB", out)
	}
}

func TestBuildParserRejectsMultiKeyRuleEntry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.config")
	defer teardown()
	//
	doc := &Document{
		Tokens: map[string][]string{" ": {"ws"}, "a": {"vowel"}},
		Rules:  []map[string]string{{"a": "A", "b": "B"}},
		Whitespace: RawWhitespace{Default: " ", TokenClass: "ws", Consolidate: true},
	}
	if _, err := BuildParser(doc); err == nil {
		t.Fatal("expected an error for a multi-key rule entry")
	}
}

func TestUnescapeCharNamesExpandsKnownNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.config")
	defer teardown()
	//
	out, err := UnescapeCharNames(`H\N{LATIN SMALL LETTER I}`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hi" {
		t.Fatalf("expected %q, got %q", "Hi", out)
	}
}

func TestUnescapeCharNamesRejectsUnknownName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.config")
	defer teardown()
	//
	if _, err := UnescapeCharNames(`\N{NOT A REAL NAME}`); err == nil {
		t.Fatal("expected an error for an unknown character name")
	}
}

func TestBuildConstraintsConvertsStringKeysToRunes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.config")
	defer teardown()
	//
	raw := RawConstraints{
		"=": {
			"-": {
				"*": []string{"FORBIDDEN"},
			},
		},
	}
	out, err := BuildConstraints(raw)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := out['=']['-']["*"]; !ok {
		t.Fatalf("expected converted constraint under ['=']['-'][\"*\"], got %+v", out)
	}
}
