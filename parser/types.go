package parser

import (
	"sort"

	"github.com/npillmayer/bahr"
	"github.com/npillmayer/bahr/graph"
	"github.com/npillmayer/bahr/rule"
)

// RuleSource is one entry of the rules document: a rule string (surface
// syntax, see package rule) paired with the production it emits.
type RuleSource struct {
	RuleString string
	Production string
}

// OnMatchSource is one entry of the onmatch_rules document.
type OnMatchSource struct {
	RuleString string
	Production string
}

// GraphParser converts an input string into a new string based on patterns
// of tokens, each of which can be a member of a series of classes.
//
// All structural data — the token set, the cost-sorted rules, the on-match
// rules, and the parser graph — is built once at construction and is
// read-only thereafter; Parse/Tokenize mutate no shared state.
type GraphParser struct {
	tokens       rule.TokenSet
	rawTokens    map[string][]string
	rules        []rule.ParserRule
	onmatch      []rule.OnMatchRule
	whitespace   rule.Whitespace
	sortedTokens []string // by length desc, for tokenize
	graph        *graph.Graph
	root         graph.Key
}

// Tokens returns the token-to-class-set mapping this parser was built with.
func (p *GraphParser) Tokens() rule.TokenSet { return p.tokens }

// Rules returns the parser's rules, sorted by ascending cost (most specific
// first), the order used throughout matching.
func (p *GraphParser) Rules() []rule.ParserRule { return p.rules }

// OnMatchRules returns the parser's on-match rules, in input order.
func (p *GraphParser) OnMatchRules() []rule.OnMatchRule { return p.onmatch }

// Whitespace returns the parser's whitespace settings.
func (p *GraphParser) Whitespace() rule.Whitespace { return p.whitespace }

// Productions returns the set of distinct, non-empty productions emitted by
// this parser's rules. Scanner construction uses this to validate that a
// long/short parser's productions line up with a transcription parser's.
func (p *GraphParser) Productions() map[string]struct{} {
	out := make(map[string]struct{})
	for _, r := range p.rules {
		if r.Production == "" {
			continue
		}
		out[r.Production] = struct{}{}
	}
	return out
}


// New builds a GraphParser from its configuration. It validates that every
// rule token is defined, that every class referenced by a rule or by
// whitespace is defined by some token, and that every rule string parses,
// aggregating all problems found into a single error.
func New(tokens map[string][]string, rules []RuleSource, onmatch []OnMatchSource, ws rule.Whitespace) (*GraphParser, error) {
	var errs bahr.CompoundError

	ts := rule.NewTokenSet(tokens)
	allClasses := make(map[string]struct{})
	for _, classes := range tokens {
		for _, c := range classes {
			allClasses[c] = struct{}{}
		}
	}

	parsedRules := make([]rule.ParserRule, 0, len(rules))
	for _, src := range rules {
		pr, err := rule.ParseRuleString(src.RuleString)
		if err != nil {
			errs.Add(err)
			continue
		}
		pr.Production = src.Production
		validateRuleReferences(&errs, tokens, allClasses, pr, src.RuleString)
		parsedRules = append(parsedRules, pr)
	}

	parsedOnMatch := make([]rule.OnMatchRule, 0, len(onmatch))
	for _, src := range onmatch {
		om, err := rule.ParseOnMatchString(src.RuleString)
		if err != nil {
			errs.Add(err)
			continue
		}
		om.Production = src.Production
		for _, c := range om.PrevClasses {
			if _, ok := allClasses[c]; !ok {
				errs.Add(bahr.NewReferenceError("onmatch rule %q references undefined class %q", src.RuleString, c))
			}
		}
		for _, c := range om.NextClasses {
			if _, ok := allClasses[c]; !ok {
				errs.Add(bahr.NewReferenceError("onmatch rule %q references undefined class %q", src.RuleString, c))
			}
		}
		parsedOnMatch = append(parsedOnMatch, om)
	}

	if _, ok := tokens[ws.Default]; !ok {
		errs.Add(bahr.NewReferenceError("whitespace default %q is not among the tokens", ws.Default))
	}
	if _, ok := allClasses[ws.TokenClass]; !ok {
		errs.Add(bahr.NewReferenceError("whitespace token_class %q is not recognised by any token", ws.TokenClass))
	} else if !ts.HasClass(ws.Default, ws.TokenClass) {
		errs.Add(bahr.NewReferenceError("whitespace default %q does not carry whitespace class %q", ws.Default, ws.TokenClass))
	}

	if errs.HasErrors() {
		return nil, &errs
	}

	sort.SliceStable(parsedRules, func(i, j int) bool {
		return parsedRules[i].Cost < parsedRules[j].Cost
	})

	sortedTokens := make([]string, 0, len(tokens))
	for t := range tokens {
		sortedTokens = append(sortedTokens, t)
	}
	sort.Slice(sortedTokens, func(i, j int) bool {
		if len(sortedTokens[i]) != len(sortedTokens[j]) {
			return len(sortedTokens[i]) > len(sortedTokens[j])
		}
		return sortedTokens[i] < sortedTokens[j]
	})

	p := &GraphParser{
		tokens:       ts,
		rawTokens:    tokens,
		rules:        parsedRules,
		onmatch:      parsedOnMatch,
		whitespace:   ws,
		sortedTokens: sortedTokens,
	}
	p.graph, p.root = buildGraph(parsedRules)
	return p, nil
}

// validateRuleReferences checks that every token and class a rule string
// references is defined.
func validateRuleReferences(errs *bahr.CompoundError, tokens map[string][]string, classes map[string]struct{}, r rule.ParserRule, src string) {
	checkTokens := func(list []string) {
		for _, tok := range list {
			if _, ok := tokens[tok]; !ok {
				errs.Add(bahr.NewReferenceError("rule %q references undefined token %q", src, tok))
			}
		}
	}
	checkClasses := func(list []string) {
		for _, c := range list {
			if _, ok := classes[c]; !ok {
				errs.Add(bahr.NewReferenceError("rule %q references undefined class %q", src, c))
			}
		}
	}
	checkTokens(r.Tokens)
	checkTokens(r.PrevTokens)
	checkTokens(r.NextTokens)
	checkClasses(r.PrevClasses)
	checkClasses(r.NextClasses)
}
