// Package config loads the scanner's document set from YAML: tokens, rules,
// onmatch_rules, whitespace, constraints and meters_list. Documents are
// decoded in a permissive raw form close to the YAML shape a user edits by
// hand, then validated and built into the typed values parser.New and
// scan.New expect.
package config

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("bahr.config")
}
