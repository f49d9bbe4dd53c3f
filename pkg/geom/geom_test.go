package geom

import (
	"math"
	"testing"
)

func TestOrientation_Int(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point[int64]
		want    int
	}{
		{"left turn", Pt[int64](0, 0), Pt[int64](4, 0), Pt[int64](4, 4), CounterClockwise},
		{"right turn", Pt[int64](0, 0), Pt[int64](0, 4), Pt[int64](4, 4), Clockwise},
		{"collinear", Pt[int64](0, 0), Pt[int64](1, 1), Pt[int64](2, 2), Collinear},
		{"collinear reversed", Pt[int64](2, 2), Pt[int64](1, 1), Pt[int64](0, 0), Collinear},
		{"degenerate identical", Pt[int64](3, 3), Pt[int64](3, 3), Pt[int64](3, 3), Collinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("Orientation(%v, %v, %v) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestOrientation_Antisymmetric(t *testing.T) {
	a, b := Pt[int64](1, 2), Pt[int64](7, 3)
	c, d := Pt[int64](4, 9), Pt[int64](-2, 5)
	for _, p := range []Point[int64]{c, d} {
		if Orientation(a, b, p) != -Orientation(b, a, p) {
			t.Errorf("Orientation(a, b, %v) should negate when a and b swap", p)
		}
	}
}

func TestOrientation_IntLargeCoordinates(t *testing.T) {
	// Products of these differences overflow int64; the 128-bit path must
	// still produce the right sign.
	const m = int64(1) << 60
	a := Pt(-m, -m)
	b := Pt(m, -m)
	c := Pt(m, m)
	if got := Orientation(a, b, c); got != CounterClockwise {
		t.Errorf("Orientation with ±2^60 coordinates = %d, want %d", got, CounterClockwise)
	}
	if got := Orientation(a, c, b); got != Clockwise {
		t.Errorf("Orientation with ±2^60 coordinates = %d, want %d", got, Clockwise)
	}

	// One unit off the diagonal at large magnitude: a float64 evaluation
	// would round this to zero area, the exact path must not.
	d := Pt(m-1, m)
	if got := Orientation(a, c, d); got == Collinear {
		t.Error("Orientation = Collinear for a point one unit off the diagonal")
	}
}

func TestOrientation_Float(t *testing.T) {
	a := Pt(0.0, 0.0)
	b := Pt(1.0, 0.0)
	if got := Orientation(a, b, Pt(0.5, 0.5)); got != CounterClockwise {
		t.Errorf("float left turn = %d, want %d", got, CounterClockwise)
	}
	if got := Orientation(a, b, Pt(0.5, -0.5)); got != Clockwise {
		t.Errorf("float right turn = %d, want %d", got, Clockwise)
	}
	if got := Orientation(a, b, Pt(2.0, 0.0)); got != Collinear {
		t.Errorf("float collinear = %d, want %d", got, Collinear)
	}
}

func TestOrientation_FloatNearDegenerate(t *testing.T) {
	// A point one ULP-scale unit above the line through a and b. The naive
	// float64 determinant is deep in rounding noise; the big.Float
	// fallback must still classify it as a left turn.
	a := Pt(0.0, 0.0)
	b := Pt(1e16, 1e16)
	c := Pt(0.5e16, 0.5e16+1)
	if got := Orientation(a, b, c); got != CounterClockwise {
		t.Errorf("near-degenerate left turn = %d, want %d", got, CounterClockwise)
	}
	if got := Orientation(a, b, Pt(0.5e16, 0.5e16)); got != Collinear {
		t.Errorf("exact midpoint = %d, want %d", got, Collinear)
	}
}

func TestDistSq(t *testing.T) {
	if got := DistSq(Pt[int64](0, 0), Pt[int64](3, 4)); got != 25 {
		t.Errorf("DistSq = %v, want 25", got)
	}
	if got := DistSq(Pt(1.0, 1.0), Pt(1.0, 1.0)); got != 0 {
		t.Errorf("DistSq of identical points = %v, want 0", got)
	}
}

func TestDistSqLess(t *testing.T) {
	anchor := Pt[int64](0, 0)
	if !DistSqLess(anchor, Pt[int64](1, 1), Pt[int64](2, 2)) {
		t.Error("nearer point should compare less")
	}
	if DistSqLess(anchor, Pt[int64](2, 2), Pt[int64](1, 1)) {
		t.Error("farther point should not compare less")
	}
	if DistSqLess(anchor, Pt[int64](1, 1), Pt[int64](1, 1)) {
		t.Error("equal distances should not compare less")
	}

	// Exact at magnitudes where float64 squared distances collide.
	const m = int64(1) << 40
	if !DistSqLess(anchor, Pt(m, m), Pt(m, m+1)) {
		t.Error("128-bit comparison should separate adjacent large points")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Pt[int64](2, 3), Pt[int64](2, 3)) {
		t.Error("identical integer points should be equal")
	}
	if Equal(Pt[int64](2, 3), Pt[int64](2, 4)) {
		t.Error("distinct integer points should not be equal")
	}
	if !Equal(Pt(1.0, 1.0), Pt(1.0+Epsilon/2, 1.0-Epsilon/2)) {
		t.Error("float points within Epsilon should be equal")
	}
	if Equal(Pt(1.0, 1.0), Pt(1.0+2*Epsilon, 1.0)) {
		t.Error("float points beyond Epsilon should not be equal")
	}
}

func TestLess_Lexicographic(t *testing.T) {
	if !Less(Pt[int64](1, 9), Pt[int64](2, 0)) {
		t.Error("smaller x should compare less regardless of y")
	}
	if !Less(Pt[int64](1, 1), Pt[int64](1, 2)) {
		t.Error("equal x should fall back to y")
	}
	if Less(Pt[int64](1, 1), Pt[int64](1, 1)) {
		t.Error("identical points should not compare less")
	}
}

func TestOrientation_FloatExtremes(t *testing.T) {
	// Orientation is total over finite input; odd but finite magnitudes
	// must stay in range and terminate.
	vals := []float64{0, math.SmallestNonzeroFloat64, 1e-300, 1e300}
	for _, v := range vals {
		got := Orientation(Pt(0.0, 0.0), Pt(v, 0.0), Pt(v, v))
		if got < Clockwise || got > CounterClockwise {
			t.Errorf("Orientation sign out of range for %v: %d", v, got)
		}
	}
}
