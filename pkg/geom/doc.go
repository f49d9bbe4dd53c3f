// Package geom provides the planar geometry primitives used by the hull
// construction pipeline: the orientation test, squared-distance comparisons,
// and coordinate equality.
//
// # Coordinate types
//
// All primitives are generic over the coordinate type via the [Coord]
// constraint. Integer coordinates get exact arithmetic: the orientation
// determinant and squared-distance comparisons are evaluated in 128-bit
// integer precision, so results are correct for any coordinates whose
// pairwise differences fit in an int64 (safe magnitude range ±2^62).
// Floating-point coordinates are evaluated in float64 with an adaptive
// error bound; when the determinant falls inside the rounding-error
// window, the test is re-run in arbitrary precision (math/big), so the
// sign is reliable across the full float64 range.
//
// # Conventions
//
// [Orientation] follows the counter-clockwise convention: a positive
// result means the three points make a left turn, negative a right turn,
// and zero means they are collinear.
package geom
