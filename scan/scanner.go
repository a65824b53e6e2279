package scan

import (
	"sort"

	"github.com/cnf/structhash"
	"github.com/npillmayer/bahr"
	"github.com/npillmayer/bahr/meter"
	"github.com/npillmayer/bahr/parser"
	"github.com/npillmayer/bahr/rule"
)

// Constraints maps prevType -> nextType -> prevProduction -> the list of
// next-step productions forbidden in that context. prevProduction "*" is
// the wildcard: it applies regardless of the actual previous production.
// Constraints are consulted only once a walk has at least one match; the
// first move off the translation graph's root always uses the natural
// long/short parser.
type Constraints map[rune]map[rune]map[string][]string

const wildcardProduction = "*"

type constraintKey struct {
	prevType, nextType rune
	prevProduction     string
}

// Scanner combines a transcription parser, a long- and short-unit parser,
// and a meter list into a best-first walker (see Scan).
type Scanner struct {
	Transcription *parser.GraphParser
	Long          *parser.GraphParser
	Short         *parser.GraphParser
	Meters        []*meter.Meter

	// PostScanFilter, if set, narrows a Scan call's results before they are
	// returned; DefaultPostScanFilter is the core specification's default
	// but callers may set this to nil to see every candidate scan.
	PostScanFilter func([]ScanResult) []ScanResult

	translation *meter.Translation
	constraints Constraints
	constrained map[constraintKey]*parser.GraphParser
	feetTable   map[string]string
}

// New validates and builds a Scanner. It fails construction, rather than
// scanning, on any schema problem: mismatched token alphabets between the
// long and short parsers, a transcription parser whose productions don't
// match the long parser's tokens, a constraint naming an unknown
// production, or a meter with no pattern.
func New(transcription, long, short *parser.GraphParser, meters []*meter.Meter, constraints Constraints) (*Scanner, error) {
	var errs bahr.CompoundError

	longTokens := tokenKeySet(long)
	shortTokens := tokenKeySet(short)
	if !sameKeys(longTokens, shortTokens) {
		errs.Add(bahr.NewSchemaError("long and short parsers do not share the same token alphabet"))
	}

	longProds := long.Productions()
	for prod := range transcription.Productions() {
		if prod == "" {
			continue
		}
		if _, ok := longTokens[prod]; !ok {
			errs.Add(bahr.NewSchemaError("transcription parser produces %q, which is not a token of the long parser", prod))
		}
	}

	knownProduction := func(nextType rune, prod string) bool {
		if prod == wildcardProduction {
			return true
		}
		if nextType == '=' {
			_, ok := longProds[prod]
			return ok
		}
		_, ok := shortProductions(short)[prod]
		return ok
	}
	for _, byNext := range constraints {
		for nextType, byProd := range byNext {
			for _, forbidden := range byProd {
				for _, prod := range forbidden {
					if !knownProduction(nextType, prod) {
						errs.Add(bahr.NewSchemaError("constraint forbids unknown production %q for next type %q", prod, string(nextType)))
					}
				}
			}
		}
	}

	for _, m := range meters {
		if m.Pattern == "" {
			errs.Add(bahr.NewSchemaError("meter %q has no pattern", m.ID))
		}
	}

	if errs.HasErrors() {
		return nil, &errs
	}

	tg := meter.NewTranslation()
	for _, m := range meters {
		postfix, err := meter.ToPostfix(m.Pattern)
		if err != nil {
			return nil, err
		}
		ng, start, err := meter.BuildNFA(postfix)
		if err != nil {
			return nil, err
		}
		mg, mgEntry := meter.Minimize(ng, start)
		tg.Merge(mg, mgEntry, m)
	}

	s := &Scanner{
		Transcription: transcription,
		Long:          long,
		Short:         short,
		Meters:        meters,
		translation:   tg,
		constraints:   constraints,
		constrained:    map[constraintKey]*parser.GraphParser{},
		feetTable:      meter.GenPossibleFeet(meters),
		PostScanFilter: DefaultPostScanFilter,
	}
	s.buildConstrainedParsers()
	return s, nil
}

func tokenKeySet(p *parser.GraphParser) map[string]struct{} {
	out := map[string]struct{}{}
	for tok := range p.Tokens() {
		out[tok] = struct{}{}
	}
	return out
}

func sameKeys(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func shortProductions(short *parser.GraphParser) map[string]struct{} {
	return short.Productions()
}

// buildConstrainedParsers builds and caches, for every (prevType, nextType,
// prevProduction) triple in s.constraints, a pruned copy of the parser
// naturally selected by nextType with every rule whose production is
// forbidden in that context removed.
//
// Many constraint entries forbid the exact same production set under a
// different prevProduction (a wildcard plus a handful of specific
// overrides usually agree on most of it), so built parsers are cached by a
// structhash of the sorted forbidden list rather than rebuilt per key. The
// parser graph construction in Constrained is not cheap enough to repeat
// for every constraintKey that happens to forbid the same rules.
func (s *Scanner) buildConstrainedParsers() {
	built := map[string]*parser.GraphParser{}
	for prevType, byNext := range s.constraints {
		for nextType, byProd := range byNext {
			base := s.Long
			if nextType != '=' {
				base = s.Short
			}
			for prevProd, forbidden := range byProd {
				sorted := append([]string{}, forbidden...)
				sort.Strings(sorted)
				hashKey, err := structhash.Hash(struct {
					Next      rune
					Forbidden []string
				}{nextType, sorted}, 1)
				if err != nil {
					hashKey = nextType2Fallback(nextType, sorted)
				}

				p, ok := built[hashKey]
				if !ok {
					forbiddenSet := map[string]struct{}{}
					for _, f := range sorted {
						forbiddenSet[f] = struct{}{}
					}
					p = base.Constrained(func(r rule.ParserRule) bool {
						_, forbid := forbiddenSet[r.Production]
						return !forbid
					})
					built[hashKey] = p
				}

				key := constraintKey{prevType: prevType, nextType: nextType, prevProduction: prevProd}
				s.constrained[key] = p
			}
		}
	}
}

// nextType2Fallback is the degenerate cache key used only if structhash
// itself fails to reflect a value (never expected for the plain struct
// above, but New must not panic on a hashing library's own errors).
func nextType2Fallback(nextType rune, forbidden []string) string {
	key := string(nextType)
	for _, f := range forbidden {
		key += "|" + f
	}
	return key
}

// selectParser picks the parser to use for a step to a node of nextType,
// given the type of the parent node and the production of the last match
// (empty if this is the first step off the root). It prefers an exact
// constrained parser, falls back to the wildcard-production constrained
// parser, and otherwise returns the natural long/short parser.
func (s *Scanner) selectParser(prevType, nextType rune, lastProduction string, haveMatches bool) *parser.GraphParser {
	natural := s.Long
	if nextType != '=' {
		natural = s.Short
	}
	if !haveMatches {
		return natural
	}
	if p, ok := s.constrained[constraintKey{prevType, nextType, lastProduction}]; ok {
		return p
	}
	if p, ok := s.constrained[constraintKey{prevType, nextType, wildcardProduction}]; ok {
		return p
	}
	return natural
}
