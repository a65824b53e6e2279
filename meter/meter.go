package meter

import "strings"

// Meter is one named metrical pattern, as found in a prosody's meter list.
// Only Pattern is required to build an automaton; the remaining fields are
// descriptive metadata carried through to scan results.
//
// FeetPattern is the foot-separated form of the symbol sequence a fully
// scanned line of this meter reads as, e.g. "=-=-/=-=-/=-=" with "/"
// marking foot boundaries; a trailing "*" foot marks a variable final
// syllable (may close short), and "//" marks a hemistich (half-line)
// boundary. It is optional: a meter with no FeetPattern simply never gets
// foot markers inserted into its scans.
type Meter struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Pattern     string   `json:"regex_pattern"` // regex over {=,-,_,(,),|,*,+,?}
	FeetPattern string   `json:"fp7pattern,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// GenPossibleFeet derives, for every meter carrying a FeetPattern, the set
// of bare symbol sequences ("/" markers stripped) that could legitimately
// end in a variable or short-closing final syllable, mapped back to their
// foot-annotated form. It is grounded on the original scanner's
// FeetPattern handling: a pattern containing "*" allows the line to close
// long, long-then-uncounted, or short-then-uncounted; a pattern with "//"
// (a hemistich break) also allows a trailing uncounted syllable, on either
// side of the break; any other pattern simply allows a trailing uncounted
// syllable.
func GenPossibleFeet(meters []*Meter) map[string]string {
	out := make(map[string]string)
	for _, m := range meters {
		pat := strings.ReplaceAll(m.FeetPattern, " ", "")
		if pat == "" {
			continue
		}
		var variants []string
		switch {
		case strings.Contains(pat, "*"):
			rest := pat[2:] // past the leading "=*"
			variants = []string{"=" + rest, "=" + rest + "_", "-" + rest + "_"}
		case strings.Contains(pat, "//"):
			loc := strings.Index(pat, "//")
			variants = []string{pat, pat + "_", pat[:loc] + "_" + pat[loc:]}
		default:
			variants = []string{pat, pat + "_"}
		}
		for _, v := range variants {
			out[strings.ReplaceAll(v, "/", "")] = v
		}
	}
	return out
}
