// Package parse reads Praat text objects into [ir] values.
//
// Every reader is built on [ReadHeader], which collects `key = value`
// lines until a line starting with one of a set of prefixes. Adapters
// dispatch on that lookahead line to descend into frames, formant slots,
// matrix columns, tiers and segments.
//
// Structural index mismatches (formant slots, tier items) abort the parse
// with a [*ParseError]. Matrix column and row mismatches are recorded as
// [ir.IntegrityWarning]s on the result instead, unless [ParseStrict] is
// given.
package parse
