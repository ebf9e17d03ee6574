// Package codec converts between ConvertKit wire data and Go values.
//
// JSON is handled by github.com/goccy/go-json. Objects decode into
// map[string]any with numbers kept as [json.Number], so callers can tell an
// integer id from a float. Input nested deeper than [MaxDepth] containers is
// rejected before it reaches the parser.
//
// Timestamps use RFC3339 with millisecond precision. The API marks UTC with a
// trailing "Z"; [ParseTimestamp] accepts that form and always returns UTC,
// and [FormatTimestamp] always writes an explicit "+00:00" offset.
//
// Failures are reported as *apierrors.CodecError (JSON) or
// *apierrors.AssertionError (malformed timestamps, non-object documents).
package codec
