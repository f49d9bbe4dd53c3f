package geom

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Coord is the set of coordinate types supported by the geometry primitives.
// Integer types get exact arithmetic; float types get epsilon-based equality
// and adaptive-precision orientation tests.
type Coord interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Epsilon is the absolute tolerance used by [Equal] for floating-point
// coordinates. Two float coordinates within Epsilon of each other on both
// axes are considered the same point.
const Epsilon = 1e-9

// Point is an immutable pair of coordinates. It is a plain value type and
// is freely copyable; none of the functions in this package mutate their
// arguments.
type Point[T Coord] struct {
	X T
	Y T
}

// Pt is a shorthand constructor for [Point].
func Pt[T Coord](x, y T) Point[T] { return Point[T]{X: x, Y: y} }

// String formats the point as "(x, y)".
func (p Point[T]) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }

// Orientation values returned by [Orientation].
const (
	// Clockwise means c lies to the right of the directed line a→b.
	Clockwise = -1
	// Collinear means a, b and c lie on a single line.
	Collinear = 0
	// CounterClockwise means c lies to the left of the directed line a→b.
	CounterClockwise = 1
)

// Orientation returns the sign of the cross product of (b−a) and (c−a):
// [CounterClockwise] for a left turn, [Clockwise] for a right turn, and
// [Collinear] when the three points lie on one line.
//
// The determinant is evaluated in a precision wider than the coordinate
// type: 128-bit integer arithmetic for integer coordinates, float64 with
// an adaptive fallback to math/big for float coordinates. The function is
// pure and total; it cannot fail for finite inputs.
func Orientation[T Coord](a, b, c Point[T]) int {
	switch any(a.X).(type) {
	case float32, float64:
		return orientFloat(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y), float64(c.X), float64(c.Y))
	default:
		return orientInt(int64(a.X), int64(a.Y), int64(b.X), int64(b.Y), int64(c.X), int64(c.Y))
	}
}

// DistSq returns the squared Euclidean distance between a and b as a
// float64. It is a convenience accessor; ordering decisions inside the
// hull pipeline use [DistSqLess], which stays exact for integers.
func DistSq[T Coord](a, b Point[T]) float64 {
	dx := float64(b.X) - float64(a.X)
	dy := float64(b.Y) - float64(a.Y)
	return dx*dx + dy*dy
}

// DistSqLess reports whether a is strictly nearer to anchor than b.
// For integer coordinates the squared distances are compared in 128-bit
// precision, so the result is exact within the documented coordinate
// range. For float coordinates the comparison is done in float64, which
// is sufficient for its only use: tie-breaking points that share a polar
// angle from the anchor.
func DistSqLess[T Coord](anchor, a, b Point[T]) bool {
	switch any(anchor.X).(type) {
	case float32, float64:
		return DistSq(anchor, a) < DistSq(anchor, b)
	default:
		ahi, alo := distSq128(int64(anchor.X), int64(anchor.Y), int64(a.X), int64(a.Y))
		bhi, blo := distSq128(int64(anchor.X), int64(anchor.Y), int64(b.X), int64(b.Y))
		if ahi != bhi {
			return ahi < bhi
		}
		return alo < blo
	}
}

// Equal reports whether a and b are the same point: exact comparison for
// integer coordinates, per-axis [Epsilon] tolerance for float coordinates.
// The relation is symmetric and reflexive; for float coordinates it is
// transitive in practice because deduplication only ever compares points
// that sort adjacently.
func Equal[T Coord](a, b Point[T]) bool {
	switch any(a.X).(type) {
	case float32, float64:
		return math.Abs(float64(a.X)-float64(b.X)) <= Epsilon &&
			math.Abs(float64(a.Y)-float64(b.Y)) <= Epsilon
	default:
		return a.X == b.X && a.Y == b.Y
	}
}

// Less orders points lexicographically by (x, y). It is used as the
// deduplication sort key and has no geometric meaning.
func Less[T Coord](a, b Point[T]) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// orientInt evaluates the orientation determinant exactly.
// The two products (bx−ax)(cy−ay) and (by−ay)(cx−ax) are formed in
// 128-bit two's-complement and compared; no overflow is possible as long
// as the coordinate differences fit in an int64.
func orientInt(ax, ay, bx, by, cx, cy int64) int {
	lhi, llo := mul128(bx-ax, cy-ay)
	rhi, rlo := mul128(by-ay, cx-ax)
	switch {
	case lhi == rhi && llo == rlo:
		return Collinear
	case lhi > rhi || (lhi == rhi && llo > rlo):
		return CounterClockwise
	default:
		return Clockwise
	}
}

// mul128 returns the signed 128-bit product of x and y as a two's
// complement (hi, lo) pair. The standard correction terms turn the
// unsigned bits.Mul64 result into a signed product.
func mul128(x, y int64) (int64, uint64) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if x < 0 {
		hi -= uint64(y)
	}
	if y < 0 {
		hi -= uint64(x)
	}
	return int64(hi), lo
}

// distSq128 returns dx²+dy² as an unsigned 128-bit (hi, lo) pair.
func distSq128(ax, ay, bx, by int64) (uint64, uint64) {
	dx := uint64(abs64(bx - ax))
	dy := uint64(abs64(by - ay))
	xhi, xlo := bits.Mul64(dx, dx)
	yhi, ylo := bits.Mul64(dy, dy)
	lo, carry := bits.Add64(xlo, ylo, 0)
	hi, _ := bits.Add64(xhi, yhi, carry)
	return hi, lo
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// orientErrBound is the relative rounding-error bound for the float64
// determinant, (3+16u)·u with u = 2⁻⁵³. If the determinant's magnitude
// exceeds errBound·(|p1|+|p2|) its float64 sign is already correct.
const orientErrBound = 3.3306690738754716e-16

// orientFloat evaluates the determinant in float64 and falls back to
// arbitrary precision when the result is within the rounding-error window.
func orientFloat(ax, ay, bx, by, cx, cy float64) int {
	p1 := (bx - ax) * (cy - ay)
	p2 := (by - ay) * (cx - ax)
	det := p1 - p2
	bound := orientErrBound * (math.Abs(p1) + math.Abs(p2))
	if det > bound {
		return CounterClockwise
	}
	if det < -bound {
		return Clockwise
	}
	return orientBig(ax, ay, bx, by, cx, cy)
}

// orientBig recomputes the determinant from the original coordinates in
// math/big. float64 values convert to big.Float exactly, and at this
// precision the subtractions and multiplications are exact for every
// magnitude that can reach this path, so the returned sign is reliable.
func orientBig(ax, ay, bx, by, cx, cy float64) int {
	const prec = 200

	f := func(v float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(v) }
	sub := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sub(x, y) }

	p1 := new(big.Float).SetPrec(prec).Mul(sub(f(bx), f(ax)), sub(f(cy), f(ay)))
	p2 := new(big.Float).SetPrec(prec).Mul(sub(f(by), f(ay)), sub(f(cx), f(ax)))
	return p1.Cmp(p2)
}
