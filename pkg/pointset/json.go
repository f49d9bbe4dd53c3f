package pointset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/hullscan/pkg/errors"
	"github.com/matzehuels/hullscan/pkg/geom"
)

type document struct {
	Points []coordinate `json:"points"`
}

type coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ReadJSON decodes the JSON point-set format from r.
//
// The input must be a JSON object with a "points" array; each element
// needs "x" and "y" fields. An empty or missing array yields an empty
// set. Malformed JSON is reported as an INVALID_POINTS error.
//
// The returned Set is independent of r and may be used freely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Set, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPoints, err, "decode points")
	}

	pts := make([]geom.Point[float64], len(doc.Points))
	for i, c := range doc.Points {
		pts[i] = geom.Pt(c.X, c.Y)
	}
	return FromFloats(pts), nil
}

// WriteJSON encodes a vertex sequence as a JSON points document and
// writes it to w. The output can be re-imported with [ReadJSON].
func WriteJSON[T geom.Coord](w io.Writer, pts []geom.Point[T]) error {
	doc := document{Points: make([]coordinate, len(pts))}
	for i, p := range pts {
		doc.Points[i] = coordinate{X: float64(p.X), Y: float64(p.Y)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode points: %w", err)
	}
	return nil
}

// ReadFile reads a point set from the file at path, dispatching on the
// extension: ".json" selects the JSON format, everything else the text
// format. The error wraps the underlying cause with the file path for
// context.
func ReadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(f)
	}
	return ReadText(f)
}
