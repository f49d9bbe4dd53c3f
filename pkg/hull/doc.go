// Package hull computes 2D convex hulls with Graham's scan.
//
// # Overview
//
// A [Builder] owns one point set and produces the minimal counter-clockwise
// sequence of vertices enclosing it. The computation is a linear pipeline:
//
//	raw points → dedup → anchor selection → polar sort → ray pruning → scan
//
// The anchor is the lowest point (ties broken by lowest x). The remaining
// points are sorted by polar angle around it using the stable merge sort
// from [github.com/matzehuels/hullscan/pkg/order]; points sharing an angle
// are ordered nearer-first by squared distance. Maximal runs of points on
// a single anchor ray are then collapsed or kept according to the
// [Policy], and a monotonic stack scan discards everything that is not a
// hull vertex.
//
// # Policies
//
// [ExtremeOnly] (the default) keeps only the corner vertices: every triple
// of consecutive hull vertices is a strict left turn. [KeepEdgePoints]
// additionally retains points that lie on hull edges, removing only
// strictly interior points.
//
// # Degenerate inputs
//
// Empty input produces an empty hull, a single distinct point a 1-point
// hull, and an all-collinear set the 2-point segment between its extremes.
// These are ordinary results, not errors; the computation is total over
// finite input.
//
// # Usage
//
//	b := hull.New[int64](hull.ExtremeOnly)
//	b.SetPoints([]geom.Point[int64]{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}})
//	vertices := b.Build()
//	// vertices: (0,0) (4,0) (4,4) (0,4)
//
// A Builder is not safe for concurrent use; use one Builder per
// concurrent computation. There is no shared state between instances.
package hull
