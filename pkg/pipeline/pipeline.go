// Package pipeline provides the core hull pipeline for Hullscan.
//
// This package implements the complete load → compute → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the point set from a file or inline request data
//  2. Compute: Run the convex hull computation
//  3. Render: Generate output in various formats (text, JSON, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "points.txt",
//	    Policy:  "extreme",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hullscan/pkg/cache"
	"github.com/matzehuels/hullscan/pkg/errors"
	"github.com/matzehuels/hullscan/pkg/geom"
	"github.com/matzehuels/hullscan/pkg/hull"
	"github.com/matzehuels/hullscan/pkg/pointset"
)

// Default values shared by CLI and API.
const (
	// DefaultPolicy is the default collinearity policy name.
	DefaultPolicy = "extreme"

	// DefaultWidth is the default SVG frame width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default SVG frame height in pixels.
	DefaultHeight = 600
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatSVG:  true,
}

// PointSpec is one inline input point. It mirrors the JSON point-set
// format so API requests and point files share a shape.
type PointSpec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Options contains all configuration for the hull pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options: a file path or inline points. When Input is set it
	// wins over Points.
	Input  string      `json:"input,omitempty"`
	Points []PointSpec `json:"points,omitempty"`

	// Compute options
	Policy  string `json:"policy,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	ShowPoints bool     `json:"show_points,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Points is the loaded input set.
	Points *pointset.Set

	// PointsHash is the content hash of the input set.
	PointsHash string

	// Hull is the computed vertex sequence, counter-clockwise from the
	// anchor. Integral inputs are computed exactly; the float64
	// coordinates here are exact conversions in that case.
	Hull []geom.Point[float64]

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount  int
	VertexCount int
	LoadTime    time.Duration
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	HullHit   bool // Whether the hull came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, json, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple
// times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCompute(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCompute validates and sets defaults for the compute stage.
func (o *Options) ValidateForCompute() error {
	if o.Policy == "" {
		o.Policy = DefaultPolicy
	}
	if _, err := hull.ParsePolicy(o.Policy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPolicy, err, "policy %q", o.Policy)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateFormats(o.Formats)
}

// ParsedPolicy returns the policy selected by the options. It assumes
// validation has run; unknown names fall back to the default policy.
func (o *Options) ParsedPolicy() hull.Policy {
	p, _ := hull.ParsePolicy(o.Policy)
	return p
}

// HullKeyOpts returns cache key options for the compute stage.
func (o *Options) HullKeyOpts(integral bool) cache.HullKeyOpts {
	return cache.HullKeyOpts{
		Policy:   o.Policy,
		Integral: integral,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if format == FormatSVG {
		opts.Width = o.Width
		opts.Height = o.Height
		opts.ShowPoints = o.ShowPoints
	}
	return opts
}
