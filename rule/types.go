package rule

// ParserRule is a single rule of a GraphParser: a production emitted when
// Tokens match at the current input position, optionally constrained by
// tokens or token classes in the immediately adjacent positions.
//
// Tokens is the core of the match and is always non-empty. The four context
// fields are nil when the rule carries no such constraint.
type ParserRule struct {
	Production   string
	PrevClasses  []string
	PrevTokens   []string
	Tokens       []string
	NextTokens   []string
	NextClasses  []string
	Cost         int
}

// HasConstraints reports whether the rule carries any context constraint
// beyond its central Tokens.
func (r ParserRule) HasConstraints() bool {
	return len(r.PrevClasses) > 0 || len(r.PrevTokens) > 0 ||
		len(r.NextTokens) > 0 || len(r.NextClasses) > 0
}

// Cost constants from the core specification: each exact token contributes
// -100, each class constraint contributes -101. Rules with more, or more
// specific, constraints therefore sort first (lower/more negative cost).
const (
	CostOfExactToken = -100
	CostOfTokenClass = -101
)

// ComputeCost computes a ParserRule's cost from the lengths of its token and
// class lists, per the core specification's §3 formula.
func ComputeCost(prevClasses, prevTokens, tokens, nextTokens, nextClasses []string) int {
	return CostOfTokenClass*len(prevClasses) +
		CostOfExactToken*len(prevTokens) +
		CostOfExactToken*len(tokens) +
		CostOfExactToken*len(nextTokens) +
		CostOfTokenClass*len(nextClasses)
}

// OnMatchRule is a production emitted between the outputs of two adjacent
// rule matches, when the tail of the previously matched rule's tokens falls
// into PrevClasses and the head of the about-to-match rule's tokens falls
// into NextClasses.
type OnMatchRule struct {
	PrevClasses []string
	NextClasses []string
	Production  string
}

// Whitespace describes a GraphParser's whitespace handling: the default
// token virtually prepended/appended to every input, the class that marks a
// token as whitespace, and whether runs of whitespace tokens collapse to a
// single default token.
type Whitespace struct {
	Default     string
	TokenClass  string
	Consolidate bool
}

// TokenSet maps a token to the set of classes it belongs to.
type TokenSet map[string]map[string]struct{}

// NewTokenSet builds a TokenSet from a map of token to class list.
func NewTokenSet(tokens map[string][]string) TokenSet {
	ts := make(TokenSet, len(tokens))
	for tok, classes := range tokens {
		set := make(map[string]struct{}, len(classes))
		for _, c := range classes {
			set[c] = struct{}{}
		}
		ts[tok] = set
	}
	return ts
}

// HasClass reports whether token belongs to class. Unknown tokens never
// belong to any class.
func (ts TokenSet) HasClass(token, class string) bool {
	classes, ok := ts[token]
	if !ok {
		return false
	}
	_, ok = classes[class]
	return ok
}

// Classes returns token's class set. The returned slice is not ordered.
func (ts TokenSet) Classes(token string) []string {
	classes, ok := ts[token]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(classes))
	for c := range classes {
		out = append(out, c)
	}
	return out
}
