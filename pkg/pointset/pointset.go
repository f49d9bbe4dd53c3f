package pointset

import (
	"math"

	"github.com/matzehuels/hullscan/pkg/geom"
)

// maxExactInt is the largest magnitude float64 represents exactly for
// every integer below it (2^53). Coordinates beyond it stay on the float
// path even when they look whole.
const maxExactInt = 1 << 53

// Set is an immutable point set decoded from one of the supported
// formats. It keeps float64 coordinates and remembers whether every
// coordinate is a whole number, so callers can pick the exact integer
// hull path when possible.
type Set struct {
	points   []geom.Point[float64]
	integral bool
}

// FromFloats builds a Set from float coordinates, detecting integrality.
func FromFloats(pts []geom.Point[float64]) *Set {
	s := &Set{
		points:   append([]geom.Point[float64](nil), pts...),
		integral: true,
	}
	for _, p := range s.points {
		if !isExactInt(p.X) || !isExactInt(p.Y) {
			s.integral = false
			break
		}
	}
	return s
}

// FromInts builds a Set from integer coordinates. The set is integral by
// construction as long as every coordinate fits float64 exactly;
// otherwise it degrades to a float set.
func FromInts(pts []geom.Point[int64]) *Set {
	fl := make([]geom.Point[float64], len(pts))
	for i, p := range pts {
		fl[i] = geom.Pt(float64(p.X), float64(p.Y))
	}
	return FromFloats(fl)
}

// Len returns the number of points in the set.
func (s *Set) Len() int { return len(s.points) }

// Integral reports whether every coordinate is a whole number exactly
// representable in both float64 and int64.
func (s *Set) Integral() bool { return s.integral }

// Floats returns the points as float64 coordinates. The returned slice
// is a copy and may be modified freely.
func (s *Set) Floats() []geom.Point[float64] {
	return append([]geom.Point[float64](nil), s.points...)
}

// Ints returns the points as int64 coordinates. It must only be called
// when [Set.Integral] reports true; the conversion is exact in that case.
func (s *Set) Ints() []geom.Point[int64] {
	out := make([]geom.Point[int64], len(s.points))
	for i, p := range s.points {
		out[i] = geom.Pt(int64(p.X), int64(p.Y))
	}
	return out
}

func isExactInt(v float64) bool {
	return v == math.Trunc(v) && math.Abs(v) < maxExactInt
}
