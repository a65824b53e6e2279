package config

import (
	"github.com/npillmayer/bahr"
	"github.com/npillmayer/bahr/meter"
	"github.com/npillmayer/bahr/parser"
	"github.com/npillmayer/bahr/rule"
	"github.com/npillmayer/bahr/scan"
)

// BuildParser turns a raw Document into a parser.GraphParser, unescaping any
// \N{...} character-name escapes in token and rule text along the way and
// aggregating every schema problem found into one error.
func BuildParser(doc *Document) (*parser.GraphParser, error) {
	var errs bahr.CompoundError

	tokens := make(map[string][]string, len(doc.Tokens))
	for tok, classes := range doc.Tokens {
		unescaped, err := UnescapeCharNames(tok)
		if err != nil {
			errs.Add(err)
			continue
		}
		tokens[unescaped] = classes
	}

	rules := make([]parser.RuleSource, 0, len(doc.Rules))
	for i, entry := range doc.Rules {
		ruleString, production, err := singleEntry(entry)
		if err != nil {
			errs.Add(bahr.NewSchemaError("rules[%d]: %v", i, err))
			continue
		}
		ruleString, err = UnescapeCharNames(ruleString)
		if err != nil {
			errs.Add(err)
			continue
		}
		rules = append(rules, parser.RuleSource{RuleString: ruleString, Production: production})
	}

	onmatch := make([]parser.OnMatchSource, 0, len(doc.OnMatchRules))
	for i, entry := range doc.OnMatchRules {
		ruleString, production, err := singleEntry(entry)
		if err != nil {
			errs.Add(bahr.NewSchemaError("onmatch_rules[%d]: %v", i, err))
			continue
		}
		onmatch = append(onmatch, parser.OnMatchSource{RuleString: ruleString, Production: production})
	}

	ws := rule.Whitespace{
		Default:     doc.Whitespace.Default,
		TokenClass:  doc.Whitespace.TokenClass,
		Consolidate: doc.Whitespace.Consolidate,
	}

	if errs.HasErrors() {
		return nil, &errs
	}
	return parser.New(tokens, rules, onmatch, ws)
}

// singleEntry extracts the one key/value pair a rules/onmatch_rules YAML
// sequence entry must carry (a rule string mapped to its production); more
// than one key, or zero, is a schema error.
func singleEntry(m map[string]string) (key, value string, err error) {
	if len(m) != 1 {
		return "", "", bahr.NewSchemaError("entry must have exactly one key, has %d", len(m))
	}
	for k, v := range m {
		return k, v, nil
	}
	return "", "", bahr.NewSchemaError("unreachable: empty single-entry map")
}

// BuildMeters converts meters_list entries into meter.Meter values.
func BuildMeters(raw []RawMeter) []*meter.Meter {
	out := make([]*meter.Meter, 0, len(raw))
	for _, m := range raw {
		out = append(out, &meter.Meter{
			ID:          m.ID,
			Name:        m.Name,
			Pattern:     m.Pattern,
			FeetPattern: m.FeetPattern,
			Tags:        m.Tags,
		})
	}
	return out
}

// BuildConstraints converts the raw YAML constraints document (string keys)
// into scan.Constraints (rune keys). A key that is not exactly one rune is a
// schema error.
func BuildConstraints(raw RawConstraints) (scan.Constraints, error) {
	var errs bahr.CompoundError
	out := make(scan.Constraints, len(raw))
	for prevTypeStr, byNext := range raw {
		prevType, err := singleRune(prevTypeStr)
		if err != nil {
			errs.Add(bahr.NewSchemaError("constraints: prev-type %v", err))
			continue
		}
		byNextOut := make(map[rune]map[string][]string, len(byNext))
		for nextTypeStr, byProd := range byNext {
			nextType, err := singleRune(nextTypeStr)
			if err != nil {
				errs.Add(bahr.NewSchemaError("constraints[%s]: next-type %v", prevTypeStr, err))
				continue
			}
			byNextOut[nextType] = byProd
		}
		out[prevType] = byNextOut
	}
	if errs.HasErrors() {
		return nil, &errs
	}
	return out, nil
}

func singleRune(s string) (rune, error) {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, bahr.NewSchemaError("%q is not a single character", s)
	}
	return rs[0], nil
}

// BuildScanner builds every parser and the meter list from a ScannerDocument
// and wires them into a scan.Scanner, the YAML-driven equivalent of handing
// parser.New/scan.New their arguments directly. opts narrow the meter list
// before the Scanner is built from it, the config-driven counterpart of
// urdubiometer's DefaultScanner(meters_filter=...).
func BuildScanner(doc *ScannerDocument, opts ...scan.Option) (*scan.Scanner, error) {
	var errs bahr.CompoundError

	transcription, err := BuildParser(&doc.Transcription)
	errs.Add(err)
	long, err := BuildParser(&doc.Long)
	errs.Add(err)
	short, err := BuildParser(&doc.Short)
	errs.Add(err)
	constraints, err := BuildConstraints(doc.Constraints)
	errs.Add(err)

	if errs.HasErrors() {
		return nil, &errs
	}

	meters := scan.ApplyOptions(BuildMeters(doc.MetersList), opts...)
	return scan.New(transcription, long, short, meters, constraints)
}
