package pointset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/hullscan/pkg/errors"
	"github.com/matzehuels/hullscan/pkg/geom"
)

// ReadText decodes the token-stream text format from r: a point count
// followed by that many x y pairs. A count of zero or less yields an
// empty set. Malformed tokens, a short stream, and trailing tokens are
// reported as INVALID_POINTS errors.
func ReadText(r io.Reader) (*Set, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	tok, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoints, err, "read point count")
		}
		return nil, errors.New(errors.ErrCodeInvalidPoints, "empty input: expected a point count")
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidPoints, "invalid point count %q", tok)
	}
	if n <= 0 {
		return FromFloats(nil), nil
	}

	pts := make([]geom.Point[float64], 0, n)
	for i := 0; i < n; i++ {
		x, err := readCoord(next, fmt.Sprintf("point %d x", i))
		if err != nil {
			return nil, err
		}
		y, err := readCoord(next, fmt.Sprintf("point %d y", i))
		if err != nil {
			return nil, err
		}
		pts = append(pts, geom.Pt(x, y))
	}

	if tok, ok := next(); ok {
		return nil, errors.New(errors.ErrCodeInvalidPoints, "trailing token %q after %d points", tok, n)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPoints, err, "read points")
	}
	return FromFloats(pts), nil
}

func readCoord(next func() (string, bool), what string) (float64, error) {
	tok, ok := next()
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidPoints, "unexpected end of input: missing %s", what)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidPoints, "invalid %s: %q", what, tok)
	}
	return v, nil
}

// WriteText encodes a vertex sequence in the text format: the vertex
// count on the first line, then one "x y" pair per line. The output
// round-trips through [ReadText].
func WriteText[T geom.Coord](w io.Writer, pts []geom.Point[T]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(pts))
	for _, p := range pts {
		fmt.Fprintf(bw, "%v %v\n", p.X, p.Y)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write points: %w", err)
	}
	return nil
}
