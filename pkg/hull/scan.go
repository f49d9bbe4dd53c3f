package hull

import "github.com/matzehuels/hullscan/pkg/geom"

// scan runs the monotonic-stack pass of Graham's scan over seq, which
// must start with the anchor followed by at least two pruned points in
// polar order. It returns the stack bottom-to-top: the hull vertices in
// counter-clockwise order starting at the anchor.
//
// For each candidate p the stack top b is popped while the turn
// a → b → p fails the policy's convexity requirement: under [ExtremeOnly]
// b goes whenever the turn is not strictly left (collinear points are
// interior to an edge and therefore not extreme); under [KeepEdgePoints]
// only strict right turns pop, so edge-collinear points survive.
func scan[T geom.Coord](seq []geom.Point[T], policy Policy) []geom.Point[T] {
	stack := make([]geom.Point[T], 0, len(seq))
	stack = append(stack, seq[0], seq[1])

	for _, p := range seq[2:] {
		for len(stack) >= 2 {
			a := stack[len(stack)-2]
			b := stack[len(stack)-1]
			o := geom.Orientation(a, b, p)
			if o == geom.Clockwise || (policy == ExtremeOnly && o == geom.Collinear) {
				stack = stack[:len(stack)-1]
				continue
			}
			break
		}
		stack = append(stack, p)
	}
	return stack
}
