package hull_test

import (
	"fmt"

	"github.com/matzehuels/hullscan/pkg/geom"
	"github.com/matzehuels/hullscan/pkg/hull"
)

func ExampleBuilder() {
	b := hull.New[int64](hull.ExtremeOnly)
	b.SetPoints([]geom.Point[int64]{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2},
	})
	for _, v := range b.Build() {
		fmt.Println(v)
	}
	// Output:
	// (0, 0)
	// (4, 0)
	// (4, 4)
	// (0, 4)
}

func ExampleCompute_keepEdgePoints() {
	points := []geom.Point[int64]{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 0},
	}
	fmt.Println("extreme:", len(hull.Compute(points, hull.ExtremeOnly)))
	fmt.Println("edges:  ", len(hull.Compute(points, hull.KeepEdgePoints)))
	// Output:
	// extreme: 4
	// edges:   5
}

func ExampleCompute_collinear() {
	points := []geom.Point[int64]{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	fmt.Println(hull.Compute(points, hull.ExtremeOnly))
	// Output: [(0, 0) (2, 2)]
}
