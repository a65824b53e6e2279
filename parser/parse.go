package parser

import (
	"strings"

	"github.com/npillmayer/bahr"
)

// Match records one rule application during a parse: which rule fired
// (identified by its production and the token span it consumed) and which
// on-match production, if any, preceded it.
type Match struct {
	OnMatchProduction string // empty if no on-match rule fired before this match
	Production        string
	Start, Length     int // token span in the input, Tokenize's sentinel included
}

// Parse tokenizes input and rewrites it to a production string, inserting
// on-match productions between adjacent rule matches wherever the tail
// token of one match and the head token of the next satisfy an on-match
// rule's class constraints.
func (p *GraphParser) Parse(input string) (string, error) {
	tokens, err := p.Tokenize(input)
	if err != nil {
		return "", err
	}
	matches, err := p.ParseTokens(tokens)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for _, m := range matches {
		out.WriteString(m.OnMatchProduction)
		out.WriteString(m.Production)
	}
	return out.String(), nil
}

// ParseTokens rewrites an already-tokenized input into the sequence of
// rule matches (and any on-match productions between them) that cover it.
// Package scan calls this directly on phonetic token sequences that never
// pass through Tokenize.
func (p *GraphParser) ParseTokens(tokens []string) ([]Match, error) {
	var out []Match
	i := 0
	for i < len(tokens) {
		production, length, ok := p.matchAt(tokens, i)
		if !ok {
			if tokens[i] == p.whitespace.Default {
				// The whitespace sentinel Tokenize added at either end of
				// the input exists only to satisfy context-window
				// constraints; it is never itself required to match a
				// rule.
				i++
				continue
			}
			return nil, bahr.NewParseError(i, "no rule matches at position %d (token %q)", i, tokens[i])
		}
		m := Match{Production: production, Start: i, Length: length}
		// tokens[0], the leading whitespace sentinel, is valid prev context
		// here, so an on-match rule can fire on the very first match too.
		if prod, ok := p.onMatchProduction(tokens, i); ok {
			m.OnMatchProduction = prod
		}
		out = append(out, m)
		i += length
	}
	return out, nil
}
