package rule

import (
	"strings"

	"github.com/npillmayer/bahr"
)

// segKind distinguishes the three shapes a lexed rule-string segment can take.
type segKind int

const (
	segWord segKind = iota
	segClass
	segParen
)

type segment struct {
	kind  segKind
	word  string   // segWord, segClass
	words []string // segParen: literals and classes, in order
}

// lex splits a rule string into words and paren groups. '(' and ')' are
// treated as token boundaries even when not separated from neighbours by
// whitespace, e.g. "(a)" lexes as "(", "a", ")".
func lex(s string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t':
			flush()
		case r == '(' || r == ')':
			flush()
			out = append(out, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// classify turns a bare word into either a class reference ("<name>" -> name)
// or a literal token.
func classify(word string) segment {
	if strings.HasPrefix(word, "<") && strings.HasSuffix(word, ">") && len(word) > 2 {
		return segment{kind: segClass, word: word[1 : len(word)-1]}
	}
	return segment{kind: segWord, word: word}
}

// ParseRuleString parses a rule's surface syntax (see package doc) into the
// context fields of a ParserRule; Tokens holds the central run of literal
// tokens, Production is filled in by the caller (the rule-string -> production
// mapping lives one level up, since ParserRule doesn't know its own key).
func ParseRuleString(s string) (ParserRule, error) {
	toks := lex(s)
	if len(toks) == 0 {
		return ParserRule{}, bahr.NewSchemaError("empty rule string")
	}

	var segs []segment
	for i := 0; i < len(toks); i++ {
		if toks[i] == "(" {
			j := i + 1
			var words []string
			for j < len(toks) && toks[j] != ")" {
				words = append(words, toks[j])
				j++
			}
			if j >= len(toks) {
				return ParserRule{}, bahr.NewSchemaError("rule string %q has an unclosed '('", s)
			}
			if len(words) == 0 {
				return ParserRule{}, bahr.NewSchemaError("rule string %q has an empty parenthesised group", s)
			}
			segs = append(segs, segment{kind: segParen, words: words})
			i = j
		} else if toks[i] == ")" {
			return ParserRule{}, bahr.NewSchemaError("rule string %q has an unmatched ')'", s)
		} else {
			segs = append(segs, classify(toks[i]))
		}
	}

	lo, hi := 0, len(segs)

	var prevTokens, prevClasses []string
	for lo < hi {
		seg := segs[lo]
		switch seg.kind {
		case segClass:
			prevClasses = append(prevClasses, seg.word)
		case segParen:
			for _, w := range seg.words {
				cw := classify(w)
				if cw.kind == segClass {
					prevClasses = append(prevClasses, cw.word)
				} else {
					prevTokens = append(prevTokens, cw.word)
				}
			}
		default:
			goto centralStart
		}
		lo++
	}
centralStart:

	var nextTokens, nextClasses []string
	for hi > lo {
		seg := segs[hi-1]
		switch seg.kind {
		case segClass:
			nextClasses = append([]string{seg.word}, nextClasses...)
		case segParen:
			var toksInGroup, classesInGroup []string
			for _, w := range seg.words {
				cw := classify(w)
				if cw.kind == segClass {
					classesInGroup = append(classesInGroup, cw.word)
				} else {
					toksInGroup = append(toksInGroup, cw.word)
				}
			}
			nextTokens = append(toksInGroup, nextTokens...)
			nextClasses = append(classesInGroup, nextClasses...)
		default:
			goto centralEnd
		}
		hi--
	}
centralEnd:

	if lo >= hi {
		return ParserRule{}, bahr.NewSchemaError("rule string %q has no central tokens", s)
	}

	central := make([]string, 0, hi-lo)
	for _, seg := range segs[lo:hi] {
		if seg.kind != segWord {
			return ParserRule{}, bahr.NewSchemaError(
				"rule string %q: class constraints must be contiguous with a word boundary or parenthesised", s)
		}
		central = append(central, seg.word)
	}

	return ParserRule{
		PrevClasses: prevClasses,
		PrevTokens:  prevTokens,
		Tokens:      central,
		NextTokens:  nextTokens,
		NextClasses: nextClasses,
		Cost:        ComputeCost(prevClasses, prevTokens, central, nextTokens, nextClasses),
	}, nil
}

// ParseOnMatchString parses the on-match rule surface syntax:
// "<cls_a> <cls_b> + <cls_c>", where '+' separates PrevClasses from
// NextClasses. Production is filled in by the caller.
func ParseOnMatchString(s string) (OnMatchRule, error) {
	parts := strings.SplitN(s, "+", 2)
	if len(parts) != 2 {
		return OnMatchRule{}, bahr.NewSchemaError("on-match rule string %q is missing its '+' separator", s)
	}
	prev, err := classWords(parts[0])
	if err != nil {
		return OnMatchRule{}, bahr.NewSchemaError("on-match rule string %q: %v", s, err)
	}
	next, err := classWords(parts[1])
	if err != nil {
		return OnMatchRule{}, bahr.NewSchemaError("on-match rule string %q: %v", s, err)
	}
	if len(prev) == 0 || len(next) == 0 {
		return OnMatchRule{}, bahr.NewSchemaError(
			"on-match rule string %q must have at least one class on each side of '+'", s)
	}
	return OnMatchRule{PrevClasses: prev, NextClasses: next}, nil
}

func classWords(s string) ([]string, error) {
	words := lex(strings.TrimSpace(s))
	out := make([]string, 0, len(words))
	for _, w := range words {
		seg := classify(w)
		if seg.kind != segClass {
			return nil, bahr.NewSchemaError("%q is not a class reference", w)
		}
		out = append(out, seg.word)
	}
	return out, nil
}
