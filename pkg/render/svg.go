// Package render produces SVG artifacts from point sets and hulls.
//
// The renderer scales the scene into a fixed viewport, draws the hull as
// a closed polygon and the input points as dots, and marks hull vertices.
// Output is a self-contained SVG document suitable for browsers and
// editors.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/hullscan/pkg/geom"
)

// Default viewport dimensions in SVG user units.
const (
	DefaultWidth  = 800
	DefaultHeight = 600

	margin       = 40.0
	pointRadius  = 3.0
	vertexRadius = 5.0
)

// SVGOption configures the renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width      int
	height     int
	showPoints bool
	fill       string
	stroke     string
}

// WithSize overrides the viewport dimensions.
func WithSize(width, height int) SVGOption {
	return func(r *svgRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithPoints draws the input points in addition to the hull.
func WithPoints() SVGOption { return func(r *svgRenderer) { r.showPoints = true } }

// WithColors overrides the hull fill and stroke colors.
func WithColors(fill, stroke string) SVGOption {
	return func(r *svgRenderer) {
		r.fill = fill
		r.stroke = stroke
	}
}

// RenderSVG renders the hull polygon, and optionally the input points,
// as an SVG document. Degenerate hulls render sensibly: a segment for
// two vertices, a single dot for one, an empty frame for none.
func RenderSVG[T geom.Coord](points, hull []geom.Point[T], opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	sc := fitScene(points, hull, float64(r.width), float64(r.height))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#ffffff"/>`+"\n", r.width, r.height)

	renderHull(&buf, &r, sc, hull)
	if r.showPoints {
		renderPoints(&buf, sc, points)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		fill:   "#dbeafe",
		stroke: "#1d4ed8",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// scene maps data coordinates into the viewport, preserving aspect ratio
// and flipping y so larger y values render higher.
type scene struct {
	minX, minY float64
	scale      float64
	offX, offY float64
}

func (s scene) x(v float64) float64 { return s.offX + (v-s.minX)*s.scale }
func (s scene) y(v float64) float64 { return s.offY - (v-s.minY)*s.scale }

func fitScene[T geom.Coord](points, hull []geom.Point[T], width, height float64) scene {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, set := range [][]geom.Point[T]{points, hull} {
		for _, p := range set {
			minX = math.Min(minX, float64(p.X))
			maxX = math.Max(maxX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}
	if math.IsInf(minX, 1) {
		return scene{scale: 1, offX: width / 2, offY: height / 2}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	scale := 1.0
	if spanX > 0 || spanY > 0 {
		scale = math.Min((width-2*margin)/math.Max(spanX, 1e-12), (height-2*margin)/math.Max(spanY, 1e-12))
	}

	// Center the scaled scene in the viewport.
	offX := (width - spanX*scale) / 2
	offY := height - (height-spanY*scale)/2
	return scene{minX: minX, minY: minY, scale: scale, offX: offX, offY: offY}
}

func renderHull[T geom.Coord](buf *bytes.Buffer, r *svgRenderer, sc scene, hull []geom.Point[T]) {
	switch len(hull) {
	case 0:
		return
	case 1:
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			sc.x(float64(hull[0].X)), sc.y(float64(hull[0].Y)), vertexRadius, r.stroke)
		return
	case 2:
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
			sc.x(float64(hull[0].X)), sc.y(float64(hull[0].Y)),
			sc.x(float64(hull[1].X)), sc.y(float64(hull[1].Y)), r.stroke)
	default:
		buf.WriteString(`  <polygon points="`)
		for i, p := range hull {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.1f,%.1f", sc.x(float64(p.X)), sc.y(float64(p.Y)))
		}
		fmt.Fprintf(buf, `" fill="%s" stroke="%s" stroke-width="2"/>`+"\n", r.fill, r.stroke)
	}

	for _, p := range hull {
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			sc.x(float64(p.X)), sc.y(float64(p.Y)), vertexRadius, r.stroke)
	}
}

func renderPoints[T geom.Coord](buf *bytes.Buffer, sc scene, points []geom.Point[T]) {
	for _, p := range points {
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="#6b7280"/>`+"\n",
			sc.x(float64(p.X)), sc.y(float64(p.Y)), pointRadius)
	}
}
