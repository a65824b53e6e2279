/*
Package scan implements Scanner, which combines a transcription parser, a
long-unit parser, a short-unit parser and a meter Translation into a
best-first walk that reports every metrical pattern a line of verse could
realize.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scan

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bahr.scan'.
func tracer() tracing.Trace {
	return tracing.Select("bahr.scan")
}
