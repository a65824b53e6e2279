package config

import (
	"regexp"

	"github.com/npillmayer/bahr"
)

// charnamePattern matches \N{UNICODE NAME} escapes.
var charnamePattern = regexp.MustCompile(`\\N\{([A-Z -]+)\}`)

// charnames is a curated subset of the Unicode name table covering the
// combining diacritics and Latin letters transliteration schemes for
// Urdu/Hindi verse actually spell out by name, not the full Unicode
// Character Database, which the standard library does not ship and which no
// library in this module's dependency set provides either.
var charnames = map[string]rune{
	"LATIN SMALL LETTER A":            'a',
	"LATIN SMALL LETTER I":            'i',
	"LATIN SMALL LETTER U":            'u',
	"LATIN SMALL LETTER E":            'e',
	"LATIN SMALL LETTER O":            'o',
	"COMBINING TILDE":                 '̃',
	"COMBINING MACRON":                '̄',
	"COMBINING ACUTE ACCENT":          '́',
	"COMBINING GRAVE ACCENT":          '̀',
	"COMBINING DOT ABOVE":             '̇',
	"COMBINING DOT BELOW":             '̣',
	"COMBINING RING ABOVE":            '̊',
	"COMBINING BREVE":                 '̆',
	"COMBINING CEDILLA":               '̧',
	"ARABIC LETTER HAMZA":             'ء',
	"ARABIC LETTER AIN":               'ع',
	"ZERO WIDTH NON-JOINER":           '‌',
	"ZERO WIDTH JOINER":               '‍',
}

// UnescapeCharNames expands \N{UNICODE NAME} escapes in s into the named
// character, the way a token or rule document written by hand can spell out
// a combining mark unambiguously instead of embedding the raw, often
// visually indistinguishable, Unicode codepoint. It fails on any name not in
// the curated table, the same way Python's unicodedata.lookup raises
// KeyError on an unknown name.
func UnescapeCharNames(s string) (string, error) {
	var firstErr error
	out := charnamePattern.ReplaceAllStringFunc(s, func(m string) string {
		if firstErr != nil {
			return m
		}
		name := charnamePattern.FindStringSubmatch(m)[1]
		r, ok := charnames[name]
		if !ok {
			firstErr = bahr.NewSchemaError("unknown unicode character name %q", name)
			return m
		}
		return string(r)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}
