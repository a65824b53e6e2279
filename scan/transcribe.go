package scan

import "strings"

// transcribe runs input through the transcription parser and returns the
// resulting phonetic token sequence (already tokenized for the long/short
// parsers, since construction validated that they share one alphabet),
// along with, for each phonetic token, the original input substring that
// produced it.
//
// The original-text mapping is best-effort: it tracks the raw character
// span of each transcription rule match one-for-one against the phonetic
// tokens it emits, but does not attribute span to any on-match production
// inserted between two matches (those carry no original text of their
// own).
func (s *Scanner) transcribe(input string) (phonetic []string, origFor []string, err error) {
	rawTokens, err := s.Transcription.Tokenize(input)
	if err != nil {
		return nil, nil, err
	}
	matches, err := s.Transcription.ParseTokens(rawTokens)
	if err != nil {
		return nil, nil, err
	}

	var phoneticStr strings.Builder
	var origTextByMatch []string
	for _, m := range matches {
		phoneticStr.WriteString(m.OnMatchProduction)
		phoneticStr.WriteString(m.Production)
		origTextByMatch = append(origTextByMatch, strings.Join(rawTokens[m.Start:m.Start+m.Length], ""))
	}

	phonetic, err = s.Long.Tokenize(phoneticStr.String())
	if err != nil {
		return nil, nil, err
	}

	// Map each phonetic token back to the original text of the
	// transcription match that produced it, in order; the whitespace
	// sentinels Tokenize adds at both ends have no original text.
	origFor = make([]string, len(phonetic))
	matchIdx := 0
	for i, tok := range phonetic {
		if tok == s.Long.Whitespace().Default {
			continue
		}
		if matchIdx < len(origTextByMatch) {
			origFor[i] = origTextByMatch[matchIdx]
			matchIdx++
		}
	}
	return phonetic, origFor, nil
}
