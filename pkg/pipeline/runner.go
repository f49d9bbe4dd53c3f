package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hullscan/pkg/cache"
	"github.com/matzehuels/hullscan/pkg/geom"
	"github.com/matzehuels/hullscan/pkg/hull"
	"github.com/matzehuels/hullscan/pkg/pointset"
	"github.com/matzehuels/hullscan/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → compute → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	set, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Points = set
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PointCount = set.Len()
	result.PointsHash = pointsHash(set)

	r.Logger.Info("loaded points",
		"count", set.Len(),
		"integral", set.Integral(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Compute
	computeStart := time.Now()
	vertices, hullHit, err := r.ComputeWithCacheInfo(ctx, set, opts)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Hull = vertices
	result.Stats.ComputeTime = time.Since(computeStart)
	result.Stats.VertexCount = len(vertices)
	result.CacheInfo.HullHit = hullHit

	r.Logger.Info("computed hull",
		"vertices", len(vertices),
		"policy", opts.Policy,
		"duration", result.Stats.ComputeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, set, vertices, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the input point set: from the file at opts.Input when set,
// otherwise from the inline opts.Points.
func (r *Runner) Load(opts Options) (*pointset.Set, error) {
	if opts.Input != "" {
		return pointset.ReadFile(opts.Input)
	}
	pts := make([]geom.Point[float64], len(opts.Points))
	for i, p := range opts.Points {
		pts[i] = geom.Pt(p.X, p.Y)
	}
	return pointset.FromFloats(pts), nil
}

// ComputeWithCacheInfo computes the hull with caching and returns cache
// hit info. Integral sets run on the exact integer path; the result is
// converted back to float64 coordinates, which is exact for integral
// inputs.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, set *pointset.Set, opts Options) ([]geom.Point[float64], bool, error) {
	if err := opts.ValidateForCompute(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.HullKey(pointsHash(set), opts.HullKeyOpts(set.Integral()))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := pointset.ReadJSON(bytes.NewReader(data))
			if err == nil {
				return cached.Floats(), true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	vertices := computeHull(set, opts.ParsedPolicy())

	// Cache the result
	var buf bytes.Buffer
	if err := pointset.WriteJSON(&buf, vertices); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLHull)
	}

	return vertices, false, nil // Cache miss
}

// Compute is a convenience wrapper that calls ComputeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Compute(ctx context.Context, set *pointset.Set, opts Options) ([]geom.Point[float64], error) {
	vertices, _, err := r.ComputeWithCacheInfo(ctx, set, opts)
	return vertices, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, set *pointset.Set, vertices []geom.Point[float64], opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := pointset.WriteJSON(&buf, vertices); err != nil {
		return nil, false, fmt.Errorf("serialize hull for cache key: %w", err)
	}
	hullHash := cache.Hash(buf.Bytes())

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(hullHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := renderFormats(set, vertices, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(hullHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, set *pointset.Set, vertices []geom.Point[float64], opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, set, vertices, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// computeHull dispatches on integrality: integer sets use exact 128-bit
// arithmetic, everything else the adaptive float path.
func computeHull(set *pointset.Set, policy hull.Policy) []geom.Point[float64] {
	if set.Integral() {
		ints := hull.Compute(set.Ints(), policy)
		out := make([]geom.Point[float64], len(ints))
		for i, p := range ints {
			out[i] = geom.Pt(float64(p.X), float64(p.Y))
		}
		return out
	}
	return hull.Compute(set.Floats(), policy)
}

// pointsHash returns the content hash of a point set in its canonical
// JSON encoding.
func pointsHash(set *pointset.Set) string {
	var buf bytes.Buffer
	if err := pointset.WriteJSON(&buf, set.Floats()); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}

// renderFormats produces every requested artifact.
func renderFormats(set *pointset.Set, vertices []geom.Point[float64], opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatText:
			var buf bytes.Buffer
			if err := pointset.WriteText(&buf, vertices); err != nil {
				return nil, err
			}
			out[format] = buf.Bytes()
		case FormatJSON:
			var buf bytes.Buffer
			if err := pointset.WriteJSON(&buf, vertices); err != nil {
				return nil, err
			}
			out[format] = buf.Bytes()
		case FormatSVG:
			svgOpts := []render.SVGOption{render.WithSize(opts.Width, opts.Height)}
			if opts.ShowPoints {
				svgOpts = append(svgOpts, render.WithPoints())
			}
			out[format] = render.RenderSVG(set.Floats(), vertices, svgOpts...)
		default:
			return nil, ValidateFormat(format)
		}
	}
	return out, nil
}
