package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/hullscan/pkg/geom"
)

func square() ([]geom.Point[int64], []geom.Point[int64]) {
	points := []geom.Point[int64]{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}}
	hull := points[:4]
	return points, hull
}

func TestRenderSVG_Polygon(t *testing.T) {
	points, hull := square()
	out := string(RenderSVG(points, hull))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output should start with an svg element")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output should end with a closing svg tag")
	}
	if !strings.Contains(out, "<polygon points=") {
		t.Error("a 4-vertex hull should render as a polygon")
	}
	if strings.Count(out, "<circle") != 4 {
		t.Errorf("expected one vertex marker per hull vertex, got %d circles", strings.Count(out, "<circle"))
	}
}

func TestRenderSVG_WithPoints(t *testing.T) {
	points, hull := square()
	out := string(RenderSVG(points, hull, WithPoints()))

	// 4 vertex markers plus 5 input dots
	if got := strings.Count(out, "<circle"); got != 9 {
		t.Errorf("expected 9 circles with input points shown, got %d", got)
	}
}

func TestRenderSVG_Size(t *testing.T) {
	points, hull := square()
	out := string(RenderSVG(points, hull, WithSize(400, 300)))
	if !strings.Contains(out, `width="400" height="300"`) {
		t.Errorf("custom size not applied: %s", out[:120])
	}
}

func TestRenderSVG_Degenerate(t *testing.T) {
	if out := string(RenderSVG[int64](nil, nil)); !strings.Contains(out, "<svg") {
		t.Error("empty input should still produce a valid document")
	}

	single := []geom.Point[int64]{{X: 1, Y: 1}}
	if out := string(RenderSVG(single, single)); strings.Count(out, "<circle") != 1 {
		t.Error("single-point hull should render one dot")
	}

	seg := []geom.Point[int64]{{X: 0, Y: 0}, {X: 5, Y: 5}}
	if out := string(RenderSVG(seg, seg)); !strings.Contains(out, "<line") {
		t.Error("two-point hull should render a line")
	}
}

func TestRenderSVG_Colors(t *testing.T) {
	points, hull := square()
	out := string(RenderSVG(points, hull, WithColors("#000000", "#ff0000")))
	if !strings.Contains(out, `fill="#000000"`) || !strings.Contains(out, `stroke="#ff0000"`) {
		t.Error("custom colors not applied")
	}
}
