package hull

import "github.com/matzehuels/hullscan/pkg/geom"

// rayRuns groups the polar-sorted points into maximal runs of consecutive
// points collinear with the anchor. Membership is checked against the
// run's first point: on a shared ray through the anchor, collinearity is
// transitive, so one boundary comparison per point suffices.
//
// Because the anchor is the lowest-then-leftmost point, every other point
// lies at a polar angle in [0°, 180°); no two points can sit on opposite
// rays of the same line, so an orientation of zero always means "same
// ray". Within each run the sort guarantees nearer-to-anchor points come
// first.
func rayRuns[T geom.Coord](anchor geom.Point[T], sorted []geom.Point[T]) [][]geom.Point[T] {
	var runs [][]geom.Point[T]
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && geom.Orientation(anchor, sorted[start], sorted[i]) == geom.Collinear {
			continue
		}
		runs = append(runs, sorted[start:i])
		start = i
	}
	return runs
}

// collapseRuns flattens ray runs into the sequence handed to the scan.
//
// Under [ExtremeOnly] each run collapses to its farthest point, which is
// the only member that can be a hull vertex. Under [KeepEdgePoints] all
// run members survive; the final run is reversed so its points appear
// farthest-first, matching the travel direction of the closing hull edge
// back toward the anchor.
func collapseRuns[T geom.Coord](runs [][]geom.Point[T], policy Policy) []geom.Point[T] {
	if policy != KeepEdgePoints {
		out := make([]geom.Point[T], len(runs))
		for i, run := range runs {
			out[i] = run[len(run)-1]
		}
		return out
	}

	var out []geom.Point[T]
	for i, run := range runs {
		if i == len(runs)-1 {
			for j := len(run) - 1; j >= 0; j-- {
				out = append(out, run[j])
			}
			break
		}
		out = append(out, run...)
	}
	return out
}
