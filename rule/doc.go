/*
Package rule defines the data types a GraphParser is built from — ParserRule,
OnMatchRule, Whitespace — together with rule cost computation and parsing of
the rule surface syntax described in the core specification.

A rule string's central tokens are whitespace-separated token literals.
A parenthesised group before the central tokens contributes to PrevTokens (or
PrevClasses, for `<name>` entries inside the group); a parenthesised group
after the central tokens contributes to NextTokens/NextClasses. A `<name>`
appearing outside any parenthesised group binds to the rule's outer
PrevClasses/NextClasses, depending on which side of the central tokens it
falls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rule

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bahr.rule'.
func tracer() tracing.Trace {
	return tracing.Select("bahr.rule")
}
