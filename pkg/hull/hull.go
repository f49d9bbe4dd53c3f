package hull

import (
	"errors"
	"fmt"

	"github.com/matzehuels/hullscan/pkg/geom"
	"github.com/matzehuels/hullscan/pkg/order"
)

// ErrUnknownPolicy is returned by [ParsePolicy] for strings that do not
// name a collinearity policy.
var ErrUnknownPolicy = errors.New("unknown collinearity policy")

// Policy selects how collinear boundary points are treated. It is a plain
// tagged choice fixed for the duration of one Build; no dynamic dispatch
// is involved.
type Policy int

const (
	// ExtremeOnly keeps only the two extreme points of any collinear run
	// on the boundary. Every triple of consecutive hull vertices is a
	// strict left turn. This is the default.
	ExtremeOnly Policy = iota

	// KeepEdgePoints retains all points lying on hull edges and removes
	// only strictly interior points. Consecutive hull vertices may be
	// collinear, but the boundary never turns clockwise.
	KeepEdgePoints
)

// String returns the policy name accepted by [ParsePolicy].
func (p Policy) String() string {
	switch p {
	case ExtremeOnly:
		return "extreme"
	case KeepEdgePoints:
		return "edges"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name ("extreme" or "edges") into a
// [Policy]. The empty string parses as [ExtremeOnly].
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "extreme":
		return ExtremeOnly, nil
	case "edges":
		return KeepEdgePoints, nil
	default:
		return ExtremeOnly, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Builder owns the working point set and result buffer for hull
// computations. The zero value is usable and equivalent to
// New[T](ExtremeOnly).
//
// Builder is not safe for concurrent use. Every Build call recomputes
// from the stored point set and replaces the previous result; no state
// carries over between calls beyond the stored input copy.
type Builder[T geom.Coord] struct {
	policy Policy
	points []geom.Point[T]
	result []geom.Point[T]
}

// New creates a Builder with the given collinearity policy.
func New[T geom.Coord](policy Policy) *Builder[T] {
	return &Builder[T]{policy: policy}
}

// SetPoints stores an owned copy of pts as the Builder's input. The
// caller's slice is never mutated and may be reused freely afterwards.
// Any finite sequence is valid, including an empty one; duplicates and
// collinear points are handled during Build.
func (b *Builder[T]) SetPoints(pts []geom.Point[T]) {
	b.points = append(b.points[:0:0], pts...)
}

// Build computes the convex hull of the stored point set and returns it
// as a counter-clockwise vertex sequence starting at the anchor (lowest
// y, then lowest x). Build always recomputes from the stored input, so
// calling it twice yields identical results; the previous result is
// discarded.
//
// The returned slice is owned by the Builder and remains valid until the
// next Build call.
func (b *Builder[T]) Build() []geom.Point[T] {
	b.result = nil

	if len(b.points) == 0 {
		return b.result
	}

	// Working copy: dedup and sorting mutate it in place, the stored
	// input stays untouched so Build stays idempotent.
	work := append([]geom.Point[T](nil), b.points...)
	work = dedupe(work)

	if len(work) == 1 {
		b.result = work
		return b.result
	}

	moveAnchorFirst(work)
	anchor := work[0]
	rest := work[1:]
	order.Stable(rest, polarLess(anchor))

	runs := rayRuns(anchor, rest)
	if len(runs) == 1 {
		// Every input point shares one ray through the anchor: the hull
		// degenerates to the segment between the two extremes.
		far := runs[0][len(runs[0])-1]
		b.result = []geom.Point[T]{anchor, far}
		return b.result
	}

	pruned := collapseRuns(runs, b.policy)
	seq := make([]geom.Point[T], 0, len(pruned)+1)
	seq = append(seq, anchor)
	seq = append(seq, pruned...)
	b.result = scan(seq, b.policy)
	return b.result
}

// Hull returns the most recent Build result. It is empty before the
// first Build call.
func (b *Builder[T]) Hull() []geom.Point[T] { return b.result }

// Len returns the number of vertices in the most recent result.
func (b *Builder[T]) Len() int { return len(b.result) }

// Compute is a one-shot convenience wrapper around [Builder].
func Compute[T geom.Coord](pts []geom.Point[T], policy Policy) []geom.Point[T] {
	b := New[T](policy)
	b.SetPoints(pts)
	return b.Build()
}

// dedupe removes coordinate-identical points (tolerance-identical for
// float coordinates) in O(n log n): lexicographic sort, then a single
// adjacent-equality pass. Which survivor a duplicate group keeps is
// irrelevant since its members are coordinate-identical.
func dedupe[T geom.Coord](pts []geom.Point[T]) []geom.Point[T] {
	order.Stable(pts, geom.Less[T])
	out := pts[:1]
	for _, p := range pts[1:] {
		if !geom.Equal(out[len(out)-1], p) {
			out = append(out, p)
		}
	}
	return out
}

// moveAnchorFirst swaps the point with minimum y (ties: minimum x) into
// position 0. The order of the remaining points is left unspecified;
// the polar sort rearranges them anyway.
func moveAnchorFirst[T geom.Coord](pts []geom.Point[T]) {
	min := 0
	for i, p := range pts {
		if p.Y < pts[min].Y || (p.Y == pts[min].Y && p.X < pts[min].X) {
			min = i
		}
	}
	pts[0], pts[min] = pts[min], pts[0]
}

// polarLess returns the polar-angle comparator around anchor: a precedes
// b when the anchor sees a counter-clockwise turn from a to b, with
// nearer-to-anchor winning among collinear points. Combined with a stable
// sort this is a strict weak ordering over all points except the anchor
// itself.
func polarLess[T geom.Coord](anchor geom.Point[T]) func(a, b geom.Point[T]) bool {
	return func(a, b geom.Point[T]) bool {
		switch geom.Orientation(anchor, a, b) {
		case geom.CounterClockwise:
			return true
		case geom.Clockwise:
			return false
		default:
			return geom.DistSqLess(anchor, a, b)
		}
	}
}
