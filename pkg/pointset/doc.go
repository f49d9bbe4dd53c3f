// Package pointset provides reading and writing of planar point sets.
//
// # Overview
//
// This package is the input/output boundary of the hull pipeline. It decodes
// point sets from two formats, detects whether a set is integral (so the
// hull computation can use exact integer arithmetic), and encodes hull
// results back out.
//
// # Text Format
//
// The text format is a whitespace-separated token stream: a point count
// followed by that many x y coordinate pairs:
//
//	5
//	0 0
//	4 0
//	4 4
//	0 4
//	2 2
//
// Line breaks carry no meaning; all tokens may share one line. A count of
// zero or less yields an empty set. Trailing tokens after the declared
// pairs are an error.
//
// # JSON Format
//
// The JSON format is an object with a "points" array:
//
//	{
//	  "points": [
//	    {"x": 0, "y": 0},
//	    {"x": 4, "y": 4}
//	  ]
//	}
//
// # Integral Detection
//
// A set is integral when every coordinate is a whole number that float64
// represents exactly. Integral sets expose an int64 view via [Set.Ints],
// which downstream code uses to select the exact arithmetic path.
//
// # Import and Export
//
// [ReadFile] dispatches on the file extension (".json" selects JSON,
// anything else text). [ReadText] and [ReadJSON] decode from any
// io.Reader. [WriteText] and [WriteJSON] encode a vertex sequence; the
// text encoding mirrors the input format, so results round-trip.
package pointset
